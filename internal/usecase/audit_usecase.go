package usecase

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/dexpay/treasuryd/internal/domain"
	"github.com/dexpay/treasuryd/internal/infrastructure/metrics"
)

// auditTimestampLayout matches the dashboard's historical log rows.
const auditTimestampLayout = "Jan 02, 2006 15:04:05"

// AuditUseCase records operator actions. Audit writes are best-effort: a
// failed insert drops this one entry and logs the failure, it never blocks or
// rolls back the operation that produced it.
type AuditUseCase struct {
	auditRepo AuditRepository
	idGen     IDGenerator
	logger    zerolog.Logger
	metrics   *metrics.Metrics
}

// NewAuditUseCase creates a new AuditUseCase.
func NewAuditUseCase(auditRepo AuditRepository, idGen IDGenerator, logger zerolog.Logger, m *metrics.Metrics) *AuditUseCase {
	return &AuditUseCase{
		auditRepo: auditRepo,
		idGen:     idGen,
		logger:    logger,
		metrics:   m,
	}
}

// Record writes one audit entry under the fixed actor.
func (uc *AuditUseCase) Record(ctx context.Context, action, details string) {
	now := time.Now().UTC()

	entry := &domain.AuditLog{
		ID:        uc.idGen.Generate(),
		Timestamp: now.Format(auditTimestampLayout),
		Action:    action,
		UserName:  domain.AuditActor,
		Details:   details,
		CreatedAt: now,
	}

	if err := uc.auditRepo.Create(ctx, entry); err != nil {
		if uc.metrics != nil {
			uc.metrics.AuditEntriesDropped.Inc()
		}
		uc.logger.Error().Err(err).
			Str("action", action).
			Msg("audit entry dropped")

		return
	}

	if uc.metrics != nil {
		uc.metrics.AuditEntriesCreated.WithLabelValues(action).Inc()
	}
}

// List returns audit entries, newest first.
func (uc *AuditUseCase) List(ctx context.Context, limit, offset int) ([]*domain.AuditLog, error) {
	limit, offset = domain.ValidatePagination(limit, offset)

	return uc.auditRepo.List(ctx, limit, offset)
}
