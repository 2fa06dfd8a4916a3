package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dexpay/treasuryd/internal/domain"
)

// TransactionRepository implements ledger transaction persistence.
type TransactionRepository struct {
	pool    *pgxpool.Pool
	retrier *Retrier
}

// NewTransactionRepository creates a new transaction repository.
func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{pool: pool, retrier: NewRetrier()}
}

// Create inserts a new transaction.
func (r *TransactionRepository) Create(ctx context.Context, tx *domain.Transaction) error {
	query := `
		INSERT INTO transactions (id, date, category, type, description, status, amount, source, dest, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	return r.retrier.Retry(ctx, func() error {
		_, err := r.pool.Exec(ctx, query,
			tx.ID,
			tx.Date,
			string(tx.Category),
			tx.Type,
			tx.Description,
			string(tx.Status),
			tx.Amount,
			tx.Source,
			tx.Dest,
			tx.CreatedAt,
		)
		return err
	})
}

// GetByID retrieves a transaction by ID.
func (r *TransactionRepository) GetByID(ctx context.Context, id string) (*domain.Transaction, error) {
	query := `
		SELECT id, date, category, type, description, status, amount, source, dest, created_at
		FROM transactions
		WHERE id = $1
	`

	tx, err := scanTransaction(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTransactionNotFound
		}

		return nil, err
	}

	return tx, nil
}

// List retrieves transactions newest first with pagination.
func (r *TransactionRepository) List(ctx context.Context, limit, offset int) ([]*domain.Transaction, error) {
	query := `
		SELECT id, date, category, type, description, status, amount, source, dest, created_at
		FROM transactions
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectTransactions(rows)
}

// ListAll retrieves every transaction newest first. The runway projector and
// period metrics scan the full ledger.
func (r *TransactionRepository) ListAll(ctx context.Context) ([]*domain.Transaction, error) {
	query := `
		SELECT id, date, category, type, description, status, amount, source, dest, created_at
		FROM transactions
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectTransactions(rows)
}

// UpdateStatus sets a transaction's approval status.
func (r *TransactionRepository) UpdateStatus(ctx context.Context, id string, status domain.Status) error {
	query := `UPDATE transactions SET status = $2 WHERE id = $1`

	return r.retrier.Retry(ctx, func() error {
		tag, err := r.pool.Exec(ctx, query, id, string(status))
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrTransactionNotFound
		}
		return nil
	})
}

// Delete removes a transaction.
func (r *TransactionRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM transactions WHERE id = $1`

	return r.retrier.Retry(ctx, func() error {
		tag, err := r.pool.Exec(ctx, query, id)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrTransactionNotFound
		}
		return nil
	})
}

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var tx domain.Transaction
	var category, status string

	err := row.Scan(
		&tx.ID,
		&tx.Date,
		&category,
		&tx.Type,
		&tx.Description,
		&status,
		&tx.Amount,
		&tx.Source,
		&tx.Dest,
		&tx.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	tx.Category = domain.Category(category)
	tx.Status = domain.Status(status)

	return &tx, nil
}

func collectTransactions(rows pgx.Rows) ([]*domain.Transaction, error) {
	var txs []*domain.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}

	return txs, rows.Err()
}
