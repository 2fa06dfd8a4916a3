package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/dexpay/treasuryd/internal/domain"
	"github.com/dexpay/treasuryd/internal/usecase"
	"github.com/dexpay/treasuryd/internal/usecase/mocks"
)

func TestReportUseCase_PeriodMetrics(t *testing.T) {
	f := newTreasuryFixture()
	txRepo := mocks.NewMockTransactionRepository()
	uc := usecase.NewReportUseCase(txRepo, f.treasury)

	seed := []*domain.Transaction{
		{ID: "t1", Date: "Dec 05, 2025", Category: domain.CategoryRevenue, Status: domain.StatusApproved, Amount: decimal.NewFromInt(300)},
		{ID: "t2", Date: "Dec 12, 2025", Category: domain.CategoryRevenue, Status: domain.StatusApproved, Amount: decimal.NewFromInt(450)},
		{ID: "t3", Date: "Dec 19, 2025", Category: domain.CategorySalary, Status: domain.StatusApproved, Amount: decimal.NewFromInt(-250)},
		{ID: "t4", Date: "Nov 02, 2025", Category: domain.CategoryRevenue, Status: domain.StatusApproved, Amount: decimal.NewFromInt(9000)},
		{ID: "t5", Date: "Dec 20, 2025", Category: domain.CategoryOpEx, Status: domain.StatusPending, Amount: decimal.NewFromInt(-9000)},
	}
	for _, tx := range seed {
		if err := txRepo.Create(context.Background(), tx); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	m, err := uc.PeriodMetrics(context.Background(), "Dec", "2025")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !m.Revenue.Equal(decimal.NewFromInt(750)) {
		t.Errorf("revenue = %s, want 750", m.Revenue)
	}
	if !m.Burn.Equal(decimal.NewFromInt(250)) {
		t.Errorf("burn = %s, want 250", m.Burn)
	}

	wantRunway := f.treasury.GlobalBalance().Div(decimal.NewFromInt(250))
	if !m.Runway.Equal(wantRunway) {
		t.Errorf("runway = %s, want %s", m.Runway, wantRunway)
	}
}

func TestReportUseCase_PeriodMetrics_ZeroBurn(t *testing.T) {
	f := newTreasuryFixture()
	txRepo := mocks.NewMockTransactionRepository()
	uc := usecase.NewReportUseCase(txRepo, f.treasury)

	m, err := uc.PeriodMetrics(context.Background(), "Dec", "2025")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !m.Runway.Equal(f.treasury.GlobalBalance()) {
		t.Errorf("zero-burn runway = %s, want global balance %s", m.Runway, f.treasury.GlobalBalance())
	}
}

func TestReportUseCase_Runway(t *testing.T) {
	f := newTreasuryFixture()
	txRepo := mocks.NewMockTransactionRepository()
	uc := usecase.NewReportUseCase(txRepo, f.treasury)

	seed := []*domain.Transaction{
		{ID: "t1", Date: "Jan 05, 2025", Category: domain.CategoryOperations, Status: domain.StatusApproved, Amount: decimal.NewFromInt(-100), Source: "ads-sol-USDT"},
		{ID: "t2", Date: "Feb 05, 2025", Category: domain.CategoryOperations, Status: domain.StatusApproved, Amount: decimal.NewFromInt(-200), Source: "ads-sol-USDT"},
		{ID: "t3", Date: "Mar 05, 2025", Category: domain.CategoryOperations, Status: domain.StatusApproved, Amount: decimal.NewFromInt(-300), Source: "ads-sol-USDT"},
	}
	for _, tx := range seed {
		if err := txRepo.Create(context.Background(), tx); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	points, err := uc.Runway(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(points) != domain.ProjectionMonths {
		t.Fatalf("expected %d points, got %d", domain.ProjectionMonths, len(points))
	}

	global := f.treasury.GlobalBalance()
	if !points[0].Balance.Equal(global) {
		t.Errorf("anchor balance = %s, want %s", points[0].Balance, global)
	}
	// Trailing average of 100, 200, 300 is 200 per month.
	if !points[1].Balance.Equal(global.Sub(decimal.NewFromInt(200))) {
		t.Errorf("second point = %s, want %s", points[1].Balance, global.Sub(decimal.NewFromInt(200)))
	}
	for i := 1; i < len(points); i++ {
		if points[i].Balance.GreaterThan(points[i-1].Balance) {
			t.Errorf("projection must be non-increasing, point %d rose", i)
		}
		if points[i].Balance.IsNegative() {
			t.Errorf("point %d is negative", i)
		}
	}
}
