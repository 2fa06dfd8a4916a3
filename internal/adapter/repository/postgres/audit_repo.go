package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dexpay/treasuryd/internal/domain"
)

// AuditRepository implements audit log persistence. Entries are append-only.
type AuditRepository struct {
	pool    *pgxpool.Pool
	retrier *Retrier
}

// NewAuditRepository creates a new audit repository.
func NewAuditRepository(pool *pgxpool.Pool) *AuditRepository {
	return &AuditRepository{pool: pool, retrier: NewRetrier()}
}

// Create inserts a new audit log entry.
func (r *AuditRepository) Create(ctx context.Context, log *domain.AuditLog) error {
	query := `
		INSERT INTO audit_logs (id, timestamp, action, user_name, details, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	return r.retrier.Retry(ctx, func() error {
		_, err := r.pool.Exec(ctx, query,
			log.ID,
			log.Timestamp,
			log.Action,
			log.UserName,
			log.Details,
			log.CreatedAt,
		)
		return err
	})
}

// List retrieves audit logs newest first with pagination.
func (r *AuditRepository) List(ctx context.Context, limit, offset int) ([]*domain.AuditLog, error) {
	query := `
		SELECT id, timestamp, action, user_name, details, created_at
		FROM audit_logs
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []*domain.AuditLog
	for rows.Next() {
		var log domain.AuditLog
		err := rows.Scan(
			&log.ID,
			&log.Timestamp,
			&log.Action,
			&log.UserName,
			&log.Details,
			&log.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		logs = append(logs, &log)
	}

	return logs, rows.Err()
}
