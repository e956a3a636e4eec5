package repositories

import (
	"context"

	"github.com/khatapana/khata_backend/internal/core/domain"
)

// SupplierReader defines read operations for supplier data.
type SupplierReader interface {
	// FindSupplierByID retrieves a supplier by ID, including the stored balance.
	// Returns apperrors.ErrNotFound if no such supplier exists.
	FindSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error)

	// FindSuppliers retrieves all suppliers, newest first.
	FindSuppliers(ctx context.Context) ([]domain.Supplier, error)

	// FindSupplierSummaries retrieves all suppliers ordered by name ascending.
	FindSupplierSummaries(ctx context.Context) ([]domain.Supplier, error)
}

// SupplierWriter defines write operations for supplier data. The running
// balance is deliberately absent here: it is only ever moved by the atomic
// ledger write in TransactionWriter.
type SupplierWriter interface {
	// SaveSupplier persists a new supplier.
	SaveSupplier(ctx context.Context, supplier domain.Supplier) error

	// UpdateSupplier updates name, phone and note of an existing supplier.
	// Returns apperrors.ErrNotFound if no such supplier exists.
	UpdateSupplier(ctx context.Context, supplier domain.Supplier) error
}

// SupplierRepositoryFacade combines all supplier-related repository interfaces.
type SupplierRepositoryFacade interface {
	SupplierReader
	SupplierWriter
}
