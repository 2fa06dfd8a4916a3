package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dexpay/treasuryd/internal/usecase"
)

// BalanceRepository implements persisted balance overrides. Only mutated
// accounts have rows; the registry keeps seeded amounts for the rest.
type BalanceRepository struct {
	pool    *pgxpool.Pool
	retrier *Retrier
}

// NewBalanceRepository creates a new balance repository.
func NewBalanceRepository(pool *pgxpool.Pool) *BalanceRepository {
	return &BalanceRepository{pool: pool, retrier: NewRetrier()}
}

// Upsert writes a balance row, replacing any previous override for the account.
func (r *BalanceRepository) Upsert(ctx context.Context, row usecase.BalanceRow) error {
	query := `
		INSERT INTO asset_balances (id, amount, rate, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE
		SET amount = EXCLUDED.amount,
		    rate = EXCLUDED.rate,
		    updated_at = EXCLUDED.updated_at
	`

	return r.retrier.Retry(ctx, func() error {
		_, err := r.pool.Exec(ctx, query, row.ID, row.Amount, row.Rate, row.UpdatedAt)
		return err
	})
}

// List retrieves all persisted balance rows.
func (r *BalanceRepository) List(ctx context.Context) ([]usecase.BalanceRow, error) {
	query := `
		SELECT id, amount, rate, updated_at
		FROM asset_balances
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var balances []usecase.BalanceRow
	for rows.Next() {
		var row usecase.BalanceRow
		if err := rows.Scan(&row.ID, &row.Amount, &row.Rate, &row.UpdatedAt); err != nil {
			return nil, err
		}
		balances = append(balances, row)
	}

	return balances, rows.Err()
}
