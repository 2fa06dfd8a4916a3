package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/dexpay/treasuryd/internal/domain"
	"github.com/dexpay/treasuryd/internal/infrastructure/metrics"
)

// FiatField names the fiat account property a manual edit targets.
type FiatField string

const (
	FiatFieldLocalValue FiatField = "local_value"
	FiatFieldRate       FiatField = "rate"
)

// TreasuryUseCase owns the in-memory account registry and serializes every
// balance mutation behind one mutex. In-memory state mutates first; the new
// row is then upserted best-effort, so a storage failure is logged but never
// rolled back.
type TreasuryUseCase struct {
	mu          sync.Mutex
	registry    *domain.Registry
	balanceRepo BalanceRepository
	audit       *AuditUseCase
	logger      zerolog.Logger
	metrics     *metrics.Metrics
}

// NewTreasuryUseCase creates a TreasuryUseCase over a seeded registry.
func NewTreasuryUseCase(registry *domain.Registry, balanceRepo BalanceRepository, audit *AuditUseCase, logger zerolog.Logger, m *metrics.Metrics) *TreasuryUseCase {
	return &TreasuryUseCase{
		registry:    registry,
		balanceRepo: balanceRepo,
		audit:       audit,
		logger:      logger,
		metrics:     m,
	}
}

// LoadBalances overrides seeded amounts with persisted rows. Called once at
// startup; rows referencing accounts no longer configured are skipped.
func (uc *TreasuryUseCase) LoadBalances(ctx context.Context) error {
	rows, err := uc.balanceRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("load balances: %w", err)
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	for _, row := range rows {
		a := uc.registry.Resolve(row.ID)
		if a == nil {
			uc.logger.Warn().Str("account_id", row.ID).Msg("persisted balance for unknown account, skipping")
			continue
		}
		if !row.Rate.IsZero() {
			a.Rate = row.Rate
		}
		a.SetAmount(row.Amount)
	}
	uc.publishGauges()

	return nil
}

// TreasurySnapshot is a point-in-time copy of the registry for read endpoints.
type TreasurySnapshot struct {
	Accounts   []domain.Account
	PoolTotals map[domain.Pool]decimal.Decimal
	Global     decimal.Decimal
}

// Snapshot copies the current account state under the lock.
func (uc *TreasuryUseCase) Snapshot() TreasurySnapshot {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	accounts := uc.registry.Accounts()
	snap := TreasurySnapshot{
		Accounts: make([]domain.Account, 0, len(accounts)),
		PoolTotals: map[domain.Pool]decimal.Decimal{
			domain.PoolAds:  uc.registry.PoolTotal(domain.PoolAds),
			domain.PoolCold: uc.registry.PoolTotal(domain.PoolCold),
			domain.PoolFiat: uc.registry.PoolTotal(domain.PoolFiat),
		},
		Global: uc.registry.GlobalBalance(),
	}
	for _, a := range accounts {
		snap.Accounts = append(snap.Accounts, *a)
	}

	return snap
}

// GlobalBalance returns the derived all-pools total.
func (uc *TreasuryUseCase) GlobalBalance() decimal.Decimal {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	return uc.registry.GlobalBalance()
}

// SetBalance overwrites one account's USD amount (manual treasury edit).
func (uc *TreasuryUseCase) SetBalance(ctx context.Context, accountID string, amount decimal.Decimal) (domain.Account, error) {
	uc.mu.Lock()
	a := uc.registry.Resolve(accountID)
	if a == nil {
		uc.mu.Unlock()
		return domain.Account{}, domain.ErrAccountNotFound
	}

	a.SetAmount(amount)
	updated := *a
	uc.publishGauges()
	uc.mu.Unlock()

	if uc.metrics != nil {
		uc.metrics.ManualEdits.Inc()
	}

	uc.persist(ctx, &updated)
	uc.audit.Record(ctx, domain.AuditActionTreasuryUpdate,
		fmt.Sprintf("Manually set %s to %s", updated.LabelPrefix(), amount))

	return updated, nil
}

// SetFiatField overwrites a fiat account's local value or exchange rate; the
// USD amount is rederived so the pair never diverges. Accounts without an
// exchange rate are rejected before any state changes.
func (uc *TreasuryUseCase) SetFiatField(ctx context.Context, accountID string, field FiatField, value decimal.Decimal) (domain.Account, error) {
	uc.mu.Lock()
	a := uc.registry.Resolve(accountID)
	if a == nil {
		uc.mu.Unlock()
		return domain.Account{}, domain.ErrAccountNotFound
	}
	if !a.HasRate() {
		uc.mu.Unlock()
		return domain.Account{}, domain.ErrNotFiatAccount
	}

	var detail string
	switch field {
	case FiatFieldLocalValue:
		a.SetLocalValue(value)
		detail = fmt.Sprintf("Set %s local value to %s", a.LabelPrefix(), value)
	case FiatFieldRate:
		a.SetRate(value)
		detail = fmt.Sprintf("Set %s exchange rate to %s", a.LabelPrefix(), value)
	default:
		uc.mu.Unlock()
		return domain.Account{}, fmt.Errorf("%w: unknown fiat field %q", domain.ErrInvalidAmount, field)
	}

	updated := *a
	uc.publishGauges()
	uc.mu.Unlock()

	if uc.metrics != nil {
		uc.metrics.ManualEdits.Inc()
	}

	uc.persist(ctx, &updated)
	uc.audit.Record(ctx, domain.AuditActionTreasuryUpdate, detail)

	return updated, nil
}

// ApplyMovement applies (or reverses) a transaction's fund movement to the
// in-memory registry and syncs each touched account. References that resolve
// to no configured account are silently skipped.
func (uc *TreasuryUseCase) ApplyMovement(ctx context.Context, tx *domain.Transaction, reverse bool) {
	uc.mu.Lock()
	adjustments := domain.PlanMovements(uc.registry, tx, reverse)

	touched := make([]domain.Account, 0, len(adjustments))
	for _, adj := range adjustments {
		adj.Account.ApplyDelta(adj.Delta)
		touched = append(touched, *adj.Account)
	}
	uc.publishGauges()
	uc.mu.Unlock()

	for i := range touched {
		uc.persist(ctx, &touched[i])
	}
}

// publishGauges refreshes the pool and global balance gauges. Callers must
// hold the mutex.
func (uc *TreasuryUseCase) publishGauges() {
	if uc.metrics == nil {
		return
	}

	for _, pool := range domain.Pools() {
		uc.metrics.PoolBalance.WithLabelValues(string(pool)).Set(uc.registry.PoolTotal(pool).InexactFloat64())
	}
	uc.metrics.GlobalBalance.Set(uc.registry.GlobalBalance().InexactFloat64())
}

// persist upserts one account row, logging failures instead of propagating
// them. The in-memory registry is the authority for the running session.
func (uc *TreasuryUseCase) persist(ctx context.Context, a *domain.Account) {
	row := BalanceRow{
		ID:        a.ID(),
		Amount:    a.Amount,
		Rate:      a.Rate,
		UpdatedAt: time.Now().UTC(),
	}

	if err := uc.balanceRepo.Upsert(ctx, row); err != nil {
		uc.logger.Error().Err(err).
			Str("account_id", row.ID).
			Msg("balance sync failed, in-memory state retained")
	}
}
