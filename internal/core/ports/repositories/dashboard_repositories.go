package repositories

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/khatapana/khata_backend/internal/core/domain"
)

// DashboardReader defines the aggregate queries behind the dashboard.
type DashboardReader interface {
	CountSuppliers(ctx context.Context) (int64, error)
	CountTransactions(ctx context.Context) (int64, error)

	// SumSupplierBalances totals the stored balances across all suppliers.
	SumSupplierBalances(ctx context.Context) (decimal.Decimal, error)

	// FindTopOwedSuppliers returns up to limit suppliers with a positive
	// balance, largest first.
	FindTopOwedSuppliers(ctx context.Context, limit int) ([]domain.Supplier, error)

	// FindLatestTransactions returns up to limit transactions, newest first,
	// joined with supplier summaries.
	FindLatestTransactions(ctx context.Context, limit int) ([]domain.TransactionWithSupplier, error)
}
