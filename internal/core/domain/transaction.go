package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates the kind of ledger entry recorded against a supplier.
type TransactionType string

const (
	Purchase TransactionType = "PURCHASE"
	Payment  TransactionType = "PAYMENT"
)

// IsValid reports whether t is a known transaction type.
func (t TransactionType) IsValid() bool {
	return t == Purchase || t == Payment
}

// Transaction is one immutable line of a supplier's append-only ledger.
type Transaction struct {
	TransactionID string          `json:"transactionID"` // Primary Key (UUID)
	SupplierID    string          `json:"supplierID"`    // FK -> Supplier.supplierID
	Type          TransactionType `json:"type"`
	Amount        decimal.Decimal `json:"amount"` // Always positive; sign lives in BalanceEffect

	// Optional item detail
	ItemName     string           `json:"itemName,omitempty"`
	Quantity     *decimal.Decimal `json:"quantity,omitempty"`
	PricePerUnit *decimal.Decimal `json:"pricePerUnit,omitempty"`
	Description  string           `json:"description,omitempty"`

	TransactionDate time.Time `json:"transactionDate"`
	CreatedAt       time.Time `json:"createdAt"`
}

// BalanceEffect returns the signed contribution of this transaction to the
// supplier's running balance: a purchase increases what is owed, a payment
// reduces it. This is the single source of truth for the sign convention.
func (t Transaction) BalanceEffect() decimal.Decimal {
	if t.Type == Payment {
		return t.Amount.Neg()
	}
	return t.Amount
}
