package services

import (
	"context"

	"github.com/khatapana/khata_backend/internal/core/domain"
)

// DashboardSvcFacade assembles the aggregate home-screen summary.
type DashboardSvcFacade interface {
	GetSummary(ctx context.Context) (*domain.DashboardSummary, error)
}
