package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/khatapana/khata_backend/internal/core/domain"
)

// CreateTransactionRequest defines the payload for recording a ledger entry.
type CreateTransactionRequest struct {
	SupplierID      string           `json:"supplierId" binding:"required"`
	Type            string           `json:"type" binding:"required"`
	Amount          decimal.Decimal  `json:"amount" binding:"required"`
	ItemName        string           `json:"itemName"`
	Quantity        *decimal.Decimal `json:"quantity"`
	PricePerUnit    *decimal.Decimal `json:"pricePerUnit"`
	Description     string           `json:"description"`
	TransactionDate *time.Time       `json:"transactionDate"`
}

// TransactionResponse is the API representation of a ledger entry.
type TransactionResponse struct {
	ID              string           `json:"id"`
	SupplierID      string           `json:"supplierId"`
	Type            string           `json:"type"`
	Amount          decimal.Decimal  `json:"amount"`
	ItemName        string           `json:"itemName,omitempty"`
	Quantity        *decimal.Decimal `json:"quantity,omitempty"`
	PricePerUnit    *decimal.Decimal `json:"pricePerUnit,omitempty"`
	Description     string           `json:"description,omitempty"`
	TransactionDate time.Time        `json:"transactionDate"`
}

// ToTransactionResponse converts a domain.Transaction to its API representation.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:              t.TransactionID,
		SupplierID:      t.SupplierID,
		Type:            string(t.Type),
		Amount:          t.Amount,
		ItemName:        t.ItemName,
		Quantity:        t.Quantity,
		PricePerUnit:    t.PricePerUnit,
		Description:     t.Description,
		TransactionDate: t.TransactionDate,
	}
}

// TransactionWithSupplierResponse is a listed transaction joined with its
// supplier summary.
type TransactionWithSupplierResponse struct {
	TransactionResponse
	Supplier SupplierRefResponse `json:"supplier"`
}

// SupplierRefResponse mirrors domain.SupplierRef.
type SupplierRefResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
}

// ToTransactionWithSupplierResponse converts a joined listing row.
func ToTransactionWithSupplierResponse(t *domain.TransactionWithSupplier) TransactionWithSupplierResponse {
	return TransactionWithSupplierResponse{
		TransactionResponse: ToTransactionResponse(&t.Transaction),
		Supplier: SupplierRefResponse{
			ID:    t.Supplier.SupplierID,
			Name:  t.Supplier.Name,
			Phone: t.Supplier.Phone,
		},
	}
}

// ListTransactionsParams defines query parameters for the filtered listing.
type ListTransactionsParams struct {
	Page       int    `form:"page,default=1"`
	Limit      int    `form:"limit,default=20"`
	Type       string `form:"type"`
	SupplierID string `form:"supplierId"`
	Search     string `form:"search"`
	Sort       string `form:"sort"`
	From       string `form:"from"` // YYYY-MM-DD
	To         string `form:"to"`   // YYYY-MM-DD, inclusive
}

// ListTransactionsResponse wraps a page of transactions.
type ListTransactionsResponse struct {
	Data       []TransactionWithSupplierResponse `json:"data"`
	Total      int64                             `json:"total"`
	Page       int                               `json:"page"`
	TotalPages int64                             `json:"totalPages"`
}
