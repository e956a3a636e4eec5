package domain

import "github.com/shopspring/decimal"

// SupplierRef is the slim supplier summary attached to listed transactions.
type SupplierRef struct {
	SupplierID string `json:"supplierID"`
	Name       string `json:"name"`
	Phone      string `json:"phone,omitempty"`
}

// TransactionWithSupplier is a ledger line joined with its supplier summary,
// as produced by the filtered transaction listing and the dashboard feed.
type TransactionWithSupplier struct {
	Transaction
	Supplier SupplierRef `json:"supplier"`
}

// SupplierLedger is the read-side view of one supplier's ledger: the stored
// balance alongside the full chronological history. The balance is reported
// as stored, never recomputed from the entries.
type SupplierLedger struct {
	Supplier          Supplier        `json:"supplier"`
	TotalTransactions int             `json:"totalTransactions"`
	CurrentBalance    decimal.Decimal `json:"currentBalance"`
	Entries           []Transaction   `json:"ledger"`
}
