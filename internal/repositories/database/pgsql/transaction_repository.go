package pgsql

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/khatapana/khata_backend/internal/apperrors"
	"github.com/khatapana/khata_backend/internal/core/domain"
	portsrepo "github.com/khatapana/khata_backend/internal/core/ports/repositories"
)

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for ledger entries.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

// SaveTransaction inserts the ledger entry and applies the balance effect as
// a relative increment on the supplier row inside one database transaction.
// The relative UPDATE takes the row lock, so concurrent writers against the
// same supplier serialize and no increment is lost; a failure on either
// statement rolls the whole unit back.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction, balanceEffect decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	insertQuery := `
		INSERT INTO transactions (transaction_id, supplier_id, type, amount, item_name, quantity, price_per_unit, description, transaction_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err = tx.Exec(ctx, insertQuery,
		txn.TransactionID,
		txn.SupplierID,
		txn.Type,
		txn.Amount,
		txn.ItemName,
		nullDecimal(txn.Quantity),
		nullDecimal(txn.PricePerUnit),
		txn.Description,
		txn.TransactionDate,
		txn.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction %s: %w", txn.TransactionID, err)
	}

	updateQuery := `
		UPDATE suppliers
		SET balance = balance + $1, updated_at = $2
		WHERE supplier_id = $3;
	`
	cmdTag, err := tx.Exec(ctx, updateQuery, balanceEffect, txn.CreatedAt, txn.SupplierID)
	if err != nil {
		return fmt.Errorf("failed to apply balance effect for supplier %s: %w", txn.SupplierID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		// Supplier vanished between validation and write; roll everything back.
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}

const transactionColumns = `transaction_id, supplier_id, type, amount, item_name, quantity, price_per_unit, description, transaction_date, created_at`

func scanTransaction(row pgx.Rows, txn *domain.Transaction) error {
	var quantity, pricePerUnit decimal.NullDecimal
	err := row.Scan(
		&txn.TransactionID,
		&txn.SupplierID,
		&txn.Type,
		&txn.Amount,
		&txn.ItemName,
		&quantity,
		&pricePerUnit,
		&txn.Description,
		&txn.TransactionDate,
		&txn.CreatedAt,
	)
	if err != nil {
		return err
	}
	if quantity.Valid {
		txn.Quantity = &quantity.Decimal
	}
	if pricePerUnit.Valid {
		txn.PricePerUnit = &pricePerUnit.Decimal
	}
	return nil
}

// FindTransactionsBySupplierID retrieves a supplier's full history in
// chronological ascending order, the correct accounting order.
func (r *PgxTransactionRepository) FindTransactionsBySupplierID(ctx context.Context, supplierID string) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE supplier_id = $1
		ORDER BY transaction_date ASC, created_at ASC;
	`
	rows, err := r.Pool.Query(ctx, query, supplierID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for supplier %s: %w", supplierID, err)
	}
	defer rows.Close()

	transactions := []domain.Transaction{}
	for rows.Next() {
		var txn domain.Transaction
		if err := scanTransaction(rows, &txn); err != nil {
			return nil, fmt.Errorf("failed to scan transaction row for supplier %s: %w", supplierID, err)
		}
		transactions = append(transactions, txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows for supplier %s: %w", supplierID, err)
	}
	return transactions, nil
}

// buildFilterClause translates the filter into a WHERE clause plus args.
func buildFilterClause(filter portsrepo.TransactionFilter) (string, []interface{}) {
	conditions := []string{}
	args := []interface{}{}

	next := func() string { return "$" + strconv.Itoa(len(args)) }

	if filter.Type != nil {
		args = append(args, *filter.Type)
		conditions = append(conditions, "t.type = "+next())
	}
	if filter.SupplierID != nil {
		args = append(args, *filter.SupplierID)
		conditions = append(conditions, "t.supplier_id = "+next())
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		conditions = append(conditions, "t.item_name ILIKE "+next())
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		conditions = append(conditions, "t.transaction_date >= "+next())
	}
	if filter.To != nil {
		// Inclusive upper bound: extend to the end of the given day.
		endOfDay := filter.To.Truncate(24 * time.Hour).Add(24*time.Hour - time.Nanosecond)
		if filter.To.After(endOfDay) {
			endOfDay = *filter.To
		}
		args = append(args, endOfDay)
		conditions = append(conditions, "t.transaction_date <= "+next())
	}

	if len(conditions) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}

// ListTransactions retrieves a filtered page of transactions joined with
// their supplier summaries, plus the total match count.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, filter portsrepo.TransactionFilter) ([]domain.TransactionWithSupplier, int64, error) {
	whereClause, args := buildFilterClause(filter)

	countQuery := "SELECT COUNT(*) FROM transactions t " + whereClause + ";"
	var total int64
	if err := r.Pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	orderBy := "ORDER BY t.transaction_date DESC"
	switch filter.SortAmount {
	case "asc":
		orderBy = "ORDER BY t.amount ASC"
	case "desc":
		orderBy = "ORDER BY t.amount DESC"
	}

	dataQuery := `
		SELECT t.transaction_id, t.supplier_id, t.type, t.amount, t.item_name, t.quantity, t.price_per_unit, t.description, t.transaction_date, t.created_at,
		       s.supplier_id, s.name, s.phone
		FROM transactions t
		JOIN suppliers s ON t.supplier_id = s.supplier_id
		` + whereClause + `
		` + orderBy + `
		LIMIT $` + strconv.Itoa(len(args)+1) + ` OFFSET $` + strconv.Itoa(len(args)+2) + `;`
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.Pool.Query(ctx, dataQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query transactions: %w", err)
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
			return nil, 0, fmt.Errorf("failed to scan transaction listing row: %w", err)
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
		return nil, 0, fmt.Errorf("error iterating transaction listing rows: %w", err)
	}

	return results, total, nil
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}
