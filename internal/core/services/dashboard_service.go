package services

import (
	"context"
	"fmt"

	"github.com/khatapana/khata_backend/internal/core/domain"
	portsrepo "github.com/khatapana/khata_backend/internal/core/ports/repositories"
	portssvc "github.com/khatapana/khata_backend/internal/core/ports/services"
)

const (
	topSuppliersLimit       = 3
	latestTransactionsLimit = 5
)

type dashboardService struct {
	dashboardRepo portsrepo.DashboardReader
}

// NewDashboardService creates a new dashboardService.
func NewDashboardService(dashboardRepo portsrepo.DashboardReader) portssvc.DashboardSvcFacade {
	return &dashboardService{dashboardRepo: dashboardRepo}
}

var _ portssvc.DashboardSvcFacade = (*dashboardService)(nil)

// GetSummary assembles the dashboard from stored aggregates; no transaction
// history is replayed here.
func (s *dashboardService) GetSummary(ctx context.Context) (*domain.DashboardSummary, error) {
	supplierCount, err := s.dashboardRepo.CountSuppliers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count suppliers: %w", err)
	}
	transactionCount, err := s.dashboardRepo.CountTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count transactions: %w", err)
	}
	totalBalance, err := s.dashboardRepo.SumSupplierBalances(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to sum balances: %w", err)
	}
	topSuppliers, err := s.dashboardRepo.FindTopOwedSuppliers(ctx, topSuppliersLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load top suppliers: %w", err)
	}
	latest, err := s.dashboardRepo.FindLatestTransactions(ctx, latestTransactionsLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load latest transactions: %w", err)
	}

	return &domain.DashboardSummary{
		SupplierCount:      supplierCount,
		TransactionCount:   transactionCount,
		TotalBalance:       totalBalance,
		TopSuppliers:       topSuppliers,
		LatestTransactions: latest,
	}, nil
}
