package services

import (
	"context"

	"github.com/khatapana/khata_backend/internal/core/domain"
	"github.com/khatapana/khata_backend/internal/dto"
)

// SupplierSvcFacade defines supplier CRUD and the ledger read view.
type SupplierSvcFacade interface {
	CreateSupplier(ctx context.Context, req dto.CreateSupplierRequest) (*domain.Supplier, error)
	UpdateSupplier(ctx context.Context, supplierID string, req dto.UpdateSupplierRequest) (*domain.Supplier, error)

	// ListSuppliers returns all suppliers, newest first.
	ListSuppliers(ctx context.Context) ([]domain.Supplier, error)

	// ListSupplierSummaries returns all suppliers ordered by name.
	ListSupplierSummaries(ctx context.Context) ([]domain.Supplier, error)

	// GetSupplierLedger returns the supplier, its stored balance and its
	// full transaction history in chronological ascending order.
	GetSupplierLedger(ctx context.Context, supplierID string) (*domain.SupplierLedger, error)
}
