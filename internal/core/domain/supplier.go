package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Supplier represents a trading party whose ledger the application keeps.
type Supplier struct {
	SupplierID string `json:"supplierID"` // Primary Key (UUID)
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Note       string `json:"note"`

	// Balance is the running sum of BalanceEffect over every transaction of
	// this supplier. It is only ever moved by the atomic ledger write; read
	// paths report it as-is and never recompute it from history.
	Balance decimal.Decimal `json:"balance"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
