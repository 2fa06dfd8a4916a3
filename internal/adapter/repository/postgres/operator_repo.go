package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dexpay/treasuryd/internal/domain"
)

// OperatorRepository implements operator persistence.
type OperatorRepository struct {
	pool    *pgxpool.Pool
	retrier *Retrier
}

// NewOperatorRepository creates a new operator repository.
func NewOperatorRepository(pool *pgxpool.Pool) *OperatorRepository {
	return &OperatorRepository{pool: pool, retrier: NewRetrier()}
}

// Create inserts a new operator. Re-creating an existing operator with the
// same name replaces its PIN hash, which is how the bootstrap rotates PINs.
func (r *OperatorRepository) Create(ctx context.Context, op *domain.Operator) error {
	query := `
		INSERT INTO operators (id, name, pin_hash, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (name) DO UPDATE
		SET pin_hash = EXCLUDED.pin_hash
	`

	return r.retrier.Retry(ctx, func() error {
		_, err := r.pool.Exec(ctx, query, op.ID, op.Name, op.PINHash, op.CreatedAt)
		return err
	})
}

// List retrieves all operators.
func (r *OperatorRepository) List(ctx context.Context) ([]*domain.Operator, error) {
	query := `
		SELECT id, name, pin_hash, created_at
		FROM operators
		ORDER BY created_at
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ops []*domain.Operator
	for rows.Next() {
		var op domain.Operator
		if err := rows.Scan(&op.ID, &op.Name, &op.PINHash, &op.CreatedAt); err != nil {
			return nil, err
		}
		ops = append(ops, &op)
	}

	return ops, rows.Err()
}
