package services

import (
	portsrepo "github.com/khatapana/khata_backend/internal/core/ports/repositories"
	portssvc "github.com/khatapana/khata_backend/internal/core/ports/services"
	"github.com/khatapana/khata_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Auth:      NewAuthService(cfg, repos.UserRepo),
		Supplier:  NewSupplierService(repos.SupplierRepo, repos.TransactionRepo),
		Ledger:    NewLedgerService(repos.TransactionRepo, repos.SupplierRepo),
		Dashboard: NewDashboardService(repos.DashboardRepo),
	}
}
