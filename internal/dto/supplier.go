package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/khatapana/khata_backend/internal/core/domain"
)

// CreateSupplierRequest defines the payload for creating a supplier.
type CreateSupplierRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
	Note  string `json:"note"`
}

// UpdateSupplierRequest defines the data allowed for updating a supplier.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateSupplierRequest struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
	Note  *string `json:"note"`
}

// SupplierResponse is the API representation of a supplier.
type SupplierResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Phone     string          `json:"phone,omitempty"`
	Note      string          `json:"note,omitempty"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// SupplierNameResponse is the slim shape used for dropdowns.
type SupplierNameResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ToSupplierResponse converts a domain.Supplier to its API representation.
func ToSupplierResponse(s *domain.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:        s.SupplierID,
		Name:      s.Name,
		Phone:     s.Phone,
		Note:      s.Note,
		Balance:   s.Balance,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// ToSupplierResponseList converts a slice of suppliers.
func ToSupplierResponseList(suppliers []domain.Supplier) []SupplierResponse {
	out := make([]SupplierResponse, len(suppliers))
	for i := range suppliers {
		out[i] = ToSupplierResponse(&suppliers[i])
	}
	return out
}

// SupplierLedgerResponse is the ledger view: supplier, stored balance and the
// chronological entries.
type SupplierLedgerResponse struct {
	Supplier          SupplierResponse      `json:"supplier"`
	TotalTransactions int                   `json:"totalTransactions"`
	CurrentBalance    decimal.Decimal       `json:"currentBalance"`
	Ledger            []TransactionResponse `json:"ledger"`
}

// ToSupplierLedgerResponse converts the domain ledger view.
func ToSupplierLedgerResponse(l *domain.SupplierLedger) SupplierLedgerResponse {
	entries := make([]TransactionResponse, len(l.Entries))
	for i := range l.Entries {
		entries[i] = ToTransactionResponse(&l.Entries[i])
	}
	return SupplierLedgerResponse{
		Supplier:          ToSupplierResponse(&l.Supplier),
		TotalTransactions: l.TotalTransactions,
		CurrentBalance:    l.CurrentBalance,
		Ledger:            entries,
	}
}
