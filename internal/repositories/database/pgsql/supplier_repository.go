package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khatapana/khata_backend/internal/apperrors"
	"github.com/khatapana/khata_backend/internal/core/domain"
	portsrepo "github.com/khatapana/khata_backend/internal/core/ports/repositories"
)

type PgxSupplierRepository struct {
	BaseRepository
}

// newPgxSupplierRepository creates a new repository over the suppliers table.
func newPgxSupplierRepository(pool *pgxpool.Pool) portsrepo.SupplierRepositoryFacade {
	return &PgxSupplierRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SupplierRepositoryFacade = (*PgxSupplierRepository)(nil)

const supplierColumns = `supplier_id, name, phone, note, balance, created_at, updated_at`

func scanSupplier(row pgx.Row) (*domain.Supplier, error) {
	var s domain.Supplier
	err := row.Scan(
		&s.SupplierID,
		&s.Name,
		&s.Phone,
		&s.Note,
		&s.Balance,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan supplier row: %w", err)
	}
	return &s, nil
}

func (r *PgxSupplierRepository) FindSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE supplier_id = $1;`
	return scanSupplier(r.Pool.QueryRow(ctx, query, supplierID))
}

func (r *PgxSupplierRepository) querySuppliers(ctx context.Context, query string) ([]domain.Supplier, error) {
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query suppliers: %w", err)
	}
	defer rows.Close()

	suppliers := []domain.Supplier{}
	for rows.Next() {
		supplier, err := scanSupplier(rows)
		if err != nil {
			return nil, err
		}
		suppliers = append(suppliers, *supplier)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating supplier rows: %w", err)
	}
	return suppliers, nil
}

func (r *PgxSupplierRepository) FindSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	return r.querySuppliers(ctx, `SELECT `+supplierColumns+` FROM suppliers ORDER BY created_at DESC;`)
}

func (r *PgxSupplierRepository) FindSupplierSummaries(ctx context.Context) ([]domain.Supplier, error) {
	return r.querySuppliers(ctx, `SELECT `+supplierColumns+` FROM suppliers ORDER BY name ASC;`)
}

func (r *PgxSupplierRepository) SaveSupplier(ctx context.Context, supplier domain.Supplier) error {
	query := `
        INSERT INTO suppliers (supplier_id, name, phone, note, balance, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7);
    `
	_, err := r.Pool.Exec(ctx, query,
		supplier.SupplierID,
		supplier.Name,
		supplier.Phone,
		supplier.Note,
		supplier.Balance,
		supplier.CreatedAt,
		supplier.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save supplier: %w", err)
	}
	return nil
}

// UpdateSupplier changes contact details only. The balance column is owned by
// the ledger write and is deliberately not listed here.
func (r *PgxSupplierRepository) UpdateSupplier(ctx context.Context, supplier domain.Supplier) error {
	query := `
        UPDATE suppliers
        SET name = $1, phone = $2, note = $3, updated_at = $4
        WHERE supplier_id = $5;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		supplier.Name,
		supplier.Phone,
		supplier.Note,
		supplier.UpdatedAt,
		supplier.SupplierID,
	)
	if err != nil {
		return fmt.Errorf("failed to update supplier %s: %w", supplier.SupplierID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
