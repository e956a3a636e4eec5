package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/khatapana/khata_backend/internal/core/domain"
	portsrepo "github.com/khatapana/khata_backend/internal/core/ports/repositories"
)

type PgxDashboardRepository struct {
	BaseRepository
}

// newPgxDashboardRepository creates a repository for dashboard aggregates.
func newPgxDashboardRepository(pool *pgxpool.Pool) portsrepo.DashboardReader {
	return &PgxDashboardRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.DashboardReader = (*PgxDashboardRepository)(nil)

func (r *PgxDashboardRepository) CountSuppliers(ctx context.Context) (int64, error) {
	var count int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM suppliers;`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count suppliers: %w", err)
	}
	return count, nil
}

func (r *PgxDashboardRepository) CountTransactions(ctx context.Context) (int64, error) {
	var count int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM transactions;`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return count, nil
}

// SumSupplierBalances totals the stored balances; the transaction history is
// never replayed for this figure.
func (r *PgxDashboardRepository) SumSupplierBalances(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	query := `SELECT COALESCE(SUM(balance), 0) FROM suppliers;`
	if err := r.Pool.QueryRow(ctx, query).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum supplier balances: %w", err)
	}
	return total, nil
}

func (r *PgxDashboardRepository) FindTopOwedSuppliers(ctx context.Context, limit int) ([]domain.Supplier, error) {
	query := `
		SELECT ` + supplierColumns + `
		FROM suppliers
		WHERE balance > 0
		ORDER BY balance DESC
		LIMIT $1;
	`
	rows, err := r.Pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query top owed suppliers: %w", err)
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
		return nil, fmt.Errorf("error iterating top supplier rows: %w", err)
	}
	return suppliers, nil
}

func (r *PgxDashboardRepository) FindLatestTransactions(ctx context.Context, limit int) ([]domain.TransactionWithSupplier, error) {
	query := `
		SELECT t.transaction_id, t.supplier_id, t.type, t.amount, t.item_name, t.quantity, t.price_per_unit, t.description, t.transaction_date, t.created_at,
		       s.supplier_id, s.name, s.phone
		FROM transactions t
		JOIN suppliers s ON t.supplier_id = s.supplier_id
		ORDER BY t.transaction_date DESC
		LIMIT $1;
	`
	rows, err := r.Pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query latest transactions: %w", err)
	}
	defer rows.Close()

	results := []domain.TransactionWithSupplier{}
	for rows.Next() {
		var row domain.TransactionWithSupplier
		var quantity, pricePerUnit decimal.NullDecimal
		err := rows.Scan(
			&row.TransactionID,
			&row.SupplierID,
			&row.Type,
			&row.Amount,
			&row.ItemName,
			&quantity,
			&pricePerUnit,
			&row.Description,
			&row.TransactionDate,
			&row.CreatedAt,
			&row.Supplier.SupplierID,
			&row.Supplier.Name,
			&row.Supplier.Phone,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan latest transaction row: %w", err)
		}
		if quantity.Valid {
			row.Quantity = &quantity.Decimal
		}
		if pricePerUnit.Valid {
			row.PricePerUnit = &pricePerUnit.Decimal
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating latest transaction rows: %w", err)
	}
	return results, nil
}
