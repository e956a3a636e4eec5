package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/khatapana/khata_backend/internal/core/domain"
	portsrepo "github.com/khatapana/khata_backend/internal/core/ports/repositories"
	portssvc "github.com/khatapana/khata_backend/internal/core/ports/services"
	"github.com/khatapana/khata_backend/internal/dto"
)

type supplierService struct {
	supplierRepo    portsrepo.SupplierRepositoryFacade
	transactionRepo portsrepo.TransactionReader
}

// NewSupplierService creates a new supplierService.
func NewSupplierService(supplierRepo portsrepo.SupplierRepositoryFacade, transactionRepo portsrepo.TransactionReader) portssvc.SupplierSvcFacade {
	return &supplierService{
		supplierRepo:    supplierRepo,
		transactionRepo: transactionRepo,
	}
}

var _ portssvc.SupplierSvcFacade = (*supplierService)(nil)

func (s *supplierService) CreateSupplier(ctx context.Context, req dto.CreateSupplierRequest) (*domain.Supplier, error) {
	now := time.Now()
	supplier := domain.Supplier{
		SupplierID: uuid.NewString(),
		Name:       req.Name,
		Phone:      req.Phone,
		Note:       req.Note,
		Balance:    decimal.Zero,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.supplierRepo.SaveSupplier(ctx, supplier); err != nil {
		return nil, fmt.Errorf("failed to create supplier: %w", err)
	}
	return &supplier, nil
}

// UpdateSupplier changes contact details only; the balance is untouchable here.
func (s *supplierService) UpdateSupplier(ctx context.Context, supplierID string, req dto.UpdateSupplierRequest) (*domain.Supplier, error) {
	supplier, err := s.supplierRepo.FindSupplierByID(ctx, supplierID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		supplier.Name = *req.Name
	}
	if req.Phone != nil {
		supplier.Phone = *req.Phone
	}
	if req.Note != nil {
		supplier.Note = *req.Note
	}
	supplier.UpdatedAt = time.Now()

	if err := s.supplierRepo.UpdateSupplier(ctx, *supplier); err != nil {
		return nil, fmt.Errorf("failed to update supplier %s: %w", supplierID, err)
	}
	return supplier, nil
}

func (s *supplierService) ListSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	suppliers, err := s.supplierRepo.FindSuppliers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list suppliers: %w", err)
	}
	return suppliers, nil
}

func (s *supplierService) ListSupplierSummaries(ctx context.Context) ([]domain.Supplier, error) {
	suppliers, err := s.supplierRepo.FindSupplierSummaries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list supplier summaries: %w", err)
	}
	return suppliers, nil
}

// GetSupplierLedger reconstructs the ordered history and reports it next to
// the stored balance. The balance is not recomputed from the entries; every
// write goes through the ledger service, which keeps the two consistent.
func (s *supplierService) GetSupplierLedger(ctx context.Context, supplierID string) (*domain.SupplierLedger, error) {
	supplier, err := s.supplierRepo.FindSupplierByID(ctx, supplierID)
	if err != nil {
		return nil, err
	}

	entries, err := s.transactionRepo.FindTransactionsBySupplierID(ctx, supplierID)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger for supplier %s: %w", supplierID, err)
	}

	return &domain.SupplierLedger{
		Supplier:          *supplier,
		TotalTransactions: len(entries),
		CurrentBalance:    supplier.Balance,
		Entries:           entries,
	}, nil
}
