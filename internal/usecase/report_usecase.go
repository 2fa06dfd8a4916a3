package usecase

import (
	"context"
	"time"

	"github.com/dexpay/treasuryd/internal/domain"
)

// ReportUseCase derives the dashboard's headline numbers and the runway
// projection. Reports are pure reads over the full ledger history and the
// current registry state.
type ReportUseCase struct {
	txRepo   TransactionRepository
	treasury *TreasuryUseCase
	now      func() time.Time
}

// NewReportUseCase creates a new ReportUseCase.
func NewReportUseCase(txRepo TransactionRepository, treasury *TreasuryUseCase) *ReportUseCase {
	return &ReportUseCase{
		txRepo:   txRepo,
		treasury: treasury,
		now:      time.Now,
	}
}

// PeriodMetrics aggregates revenue, burn and runway for one month/year
// selection.
func (uc *ReportUseCase) PeriodMetrics(ctx context.Context, month, year string) (domain.PeriodMetrics, error) {
	txs, err := uc.txRepo.ListAll(ctx)
	if err != nil {
		return domain.PeriodMetrics{}, err
	}

	subset := domain.FilterPeriod(txs, month, year)

	return domain.ComputePeriodMetrics(subset, uc.treasury.GlobalBalance()), nil
}

// Runway projects the balance decay from the current global balance using the
// trailing average burn.
func (uc *ReportUseCase) Runway(ctx context.Context) ([]domain.ProjectionPoint, error) {
	txs, err := uc.txRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	return domain.ProjectRunway(uc.treasury.GlobalBalance(), txs, uc.now().UTC()), nil
}
