package domain

import "github.com/shopspring/decimal"

// DashboardSummary aggregates the fast-path numbers shown on the home screen.
// All balance figures come from the stored supplier balances.
type DashboardSummary struct {
	SupplierCount      int64                     `json:"supplierCount"`
	TransactionCount   int64                     `json:"transactionCount"`
	TotalBalance       decimal.Decimal           `json:"totalBalance"`
	TopSuppliers       []Supplier                `json:"topSuppliers"`
	LatestTransactions []TransactionWithSupplier `json:"latestTransactions"`
}
