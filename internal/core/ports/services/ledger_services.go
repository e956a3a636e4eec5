package services

import (
	"context"

	"github.com/khatapana/khata_backend/internal/core/domain"
	portsrepo "github.com/khatapana/khata_backend/internal/core/ports/repositories"
	"github.com/khatapana/khata_backend/internal/dto"
)

// LedgerSvcFacade performs the atomic transaction-and-balance update and the
// filtered listing over the append-only history.
type LedgerSvcFacade interface {
	// RecordTransaction validates the request, computes the balance effect
	// and persists entry plus balance increment atomically. It fails with
	// apperrors.ErrNotFound for an unknown supplier and
	// apperrors.ErrValidation for a non-positive amount or unknown type.
	RecordTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// ListTransactions returns a filtered page plus the total match count.
	ListTransactions(ctx context.Context, filter portsrepo.TransactionFilter) ([]domain.TransactionWithSupplier, int64, error)
}
