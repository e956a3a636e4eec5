package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/khatapana/khata_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires all pgsql repositories over one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:        newPgxUserRepository(dbPool),
		SupplierRepo:    newPgxSupplierRepository(dbPool),
		TransactionRepo: newPgxTransactionRepository(dbPool),
		DashboardRepo:   newPgxDashboardRepository(dbPool),
	}
}
