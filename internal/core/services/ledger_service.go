package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/khatapana/khata_backend/internal/apperrors"
	"github.com/khatapana/khata_backend/internal/core/domain"
	portsrepo "github.com/khatapana/khata_backend/internal/core/ports/repositories"
	portssvc "github.com/khatapana/khata_backend/internal/core/ports/services"
	"github.com/khatapana/khata_backend/internal/dto"
)

// ledgerService performs the atomic transaction-and-balance update. Every
// balance mutation in the system funnels through RecordTransaction; no other
// code path touches a supplier's balance.
type ledgerService struct {
	supplierRepo    portsrepo.SupplierReader
	transactionRepo portsrepo.TransactionRepositoryFacade
}

// NewLedgerService creates a new ledgerService.
func NewLedgerService(transactionRepo portsrepo.TransactionRepositoryFacade, supplierRepo portsrepo.SupplierReader) portssvc.LedgerSvcFacade {
	return &ledgerService{
		supplierRepo:    supplierRepo,
		transactionRepo: transactionRepo,
	}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// RecordTransaction validates the request and commits the entry together
// with the supplier balance increment in one unit of work.
func (s *ledgerService) RecordTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	txnType := domain.TransactionType(req.Type)
	if !txnType.IsValid() {
		return nil, fmt.Errorf("%w: unknown transaction type %q", apperrors.ErrValidation, req.Type)
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	if req.SupplierID == "" {
		return nil, fmt.Errorf("%w: supplier id is required", apperrors.ErrValidation)
	}
	if req.Quantity != nil && req.Quantity.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: quantity must be positive", apperrors.ErrValidation)
	}

	if _, err := s.supplierRepo.FindSupplierByID(ctx, req.SupplierID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: supplier %s", apperrors.ErrNotFound, req.SupplierID)
		}
		return nil, fmt.Errorf("failed to verify supplier %s: %w", req.SupplierID, err)
	}

	now := time.Now()
	txnDate := now
	if req.TransactionDate != nil {
		txnDate = *req.TransactionDate
	}

	txn := domain.Transaction{
		TransactionID:   uuid.NewString(),
		SupplierID:      req.SupplierID,
		Type:            txnType,
		Amount:          req.Amount,
		ItemName:        req.ItemName,
		Quantity:        req.Quantity,
		PricePerUnit:    req.PricePerUnit,
		Description:     req.Description,
		TransactionDate: txnDate,
		CreatedAt:       now,
	}

	// BalanceEffect is the only place the sign convention lives.
	if err := s.transactionRepo.SaveTransaction(ctx, txn, txn.BalanceEffect()); err != nil {
		return nil, fmt.Errorf("failed to record transaction for supplier %s: %w", req.SupplierID, err)
	}

	return &txn, nil
}

// ListTransactions returns a filtered page of history plus the total count.
func (s *ledgerService) ListTransactions(ctx context.Context, filter portsrepo.TransactionFilter) ([]domain.TransactionWithSupplier, int64, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	txns, total, err := s.transactionRepo.ListTransactions(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txns, total, nil
}
