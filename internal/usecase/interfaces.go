package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dexpay/treasuryd/internal/domain"
)

// BalanceRow is a persisted balance override for one account. Rows exist only
// for accounts that have been mutated; accounts absent from storage keep their
// seeded amounts.
type BalanceRow struct {
	ID        string
	Amount    decimal.Decimal
	Rate      decimal.Decimal // zero for accounts without a local rate
	UpdatedAt time.Time
}

// BalanceRepository defines data access for persisted balances.
type BalanceRepository interface {
	Upsert(ctx context.Context, row BalanceRow) error
	List(ctx context.Context) ([]BalanceRow, error)
}

// TransactionRepository defines data access for ledger transactions.
type TransactionRepository interface {
	Create(ctx context.Context, tx *domain.Transaction) error
	GetByID(ctx context.Context, id string) (*domain.Transaction, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Transaction, error)
	ListAll(ctx context.Context) ([]*domain.Transaction, error)
	UpdateStatus(ctx context.Context, id string, status domain.Status) error
	Delete(ctx context.Context, id string) error
}

// AuditRepository defines data access for audit logs.
type AuditRepository interface {
	Create(ctx context.Context, log *domain.AuditLog) error
	List(ctx context.Context, limit, offset int) ([]*domain.AuditLog, error)
}

// OperatorRepository defines data access for PIN-holding operators.
type OperatorRepository interface {
	Create(ctx context.Context, op *domain.Operator) error
	List(ctx context.Context) ([]*domain.Operator, error)
}

// SessionStore holds live sessions with a sliding TTL.
type SessionStore interface {
	Create(ctx context.Context, token, userName string, ttl time.Duration) error
	// Touch refreshes the TTL and returns the session's user name, or
	// domain.ErrSessionExpired when the token is unknown or expired.
	Touch(ctx context.Context, token string, ttl time.Duration) (string, error)
	Delete(ctx context.Context, token string) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}
