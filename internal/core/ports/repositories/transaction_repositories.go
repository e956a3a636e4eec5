package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/khatapana/khata_backend/internal/core/domain"
)

// TransactionFilter narrows and pages the transaction listing.
type TransactionFilter struct {
	Type       *domain.TransactionType // nil means all types
	SupplierID *string
	Search     string // case-insensitive substring match on item name
	From       *time.Time
	To         *time.Time // inclusive
	SortAmount string     // "asc" or "desc" on amount; empty sorts by date desc
	Limit      int
	Offset     int
}

// TransactionWriter performs the atomic ledger write.
type TransactionWriter interface {
	// SaveTransaction inserts the transaction row and applies balanceEffect
	// as a relative increment to the supplier's stored balance within one
	// database transaction. Both changes commit together or not at all.
	SaveTransaction(ctx context.Context, txn domain.Transaction, balanceEffect decimal.Decimal) error
}

// TransactionReader defines read operations over the append-only ledger.
type TransactionReader interface {
	// FindTransactionsBySupplierID retrieves a supplier's full history in
	// chronological ascending order.
	FindTransactionsBySupplierID(ctx context.Context, supplierID string) ([]domain.Transaction, error)

	// ListTransactions retrieves a filtered page of transactions joined with
	// their supplier summaries, plus the total match count.
	ListTransactions(ctx context.Context, filter TransactionFilter) ([]domain.TransactionWithSupplier, int64, error)
}

// TransactionRepositoryFacade combines the ledger repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionWriter
	TransactionReader
}
