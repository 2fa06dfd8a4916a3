package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/dexpay/treasuryd/internal/adapter/http/dto"
	"github.com/dexpay/treasuryd/internal/domain"
)

type reportServiceStub struct {
	metricsFn func(ctx context.Context, month, year string) (domain.PeriodMetrics, error)
	runwayFn  func(ctx context.Context) ([]domain.ProjectionPoint, error)
}

func (s *reportServiceStub) PeriodMetrics(ctx context.Context, month, year string) (domain.PeriodMetrics, error) {
	return s.metricsFn(ctx, month, year)
}

func (s *reportServiceStub) Runway(ctx context.Context) ([]domain.ProjectionPoint, error) {
	return s.runwayFn(ctx)
}

func TestReportHandler_Metrics(t *testing.T) {
	h := NewReportHandler(&reportServiceStub{
		metricsFn: func(ctx context.Context, month, year string) (domain.PeriodMetrics, error) {
			if month != "Dec" || year != "2025" {
				t.Fatalf("unexpected period %s %s", month, year)
			}
			return domain.PeriodMetrics{
				Revenue: decimal.NewFromInt(750),
				Burn:    decimal.NewFromInt(250),
				Runway:  decimal.NewFromInt(20),
			}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/reports/metrics?month=Dec&year=2025", nil)
	rec := httptest.NewRecorder()

	h.Metrics(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.MetricsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Revenue.Equal(decimal.NewFromInt(750)) || !resp.Burn.Equal(decimal.NewFromInt(250)) {
		t.Fatalf("unexpected metrics %+v", resp)
	}
}

func TestReportHandler_Metrics_MissingPeriod(t *testing.T) {
	h := NewReportHandler(&reportServiceStub{
		metricsFn: func(ctx context.Context, month, year string) (domain.PeriodMetrics, error) {
			t.Fatal("PeriodMetrics should not be called")
			return domain.PeriodMetrics{}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/reports/metrics?month=Dec", nil)
	rec := httptest.NewRecorder()

	h.Metrics(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestReportHandler_Runway(t *testing.T) {
	h := NewReportHandler(&reportServiceStub{
		runwayFn: func(ctx context.Context) ([]domain.ProjectionPoint, error) {
			return []domain.ProjectionPoint{
				{Period: "Dec 2025", Balance: decimal.NewFromInt(32542)},
				{Period: "Jan 2026", Balance: decimal.NewFromInt(24002)},
			}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/reports/runway", nil)
	rec := httptest.NewRecorder()

	h.Runway(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []dto.ProjectionPointResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp) != 2 || resp[0].Period != "Dec 2025" {
		t.Fatalf("unexpected projection %+v", resp)
	}
}

func TestReportHandler_Runway_Error(t *testing.T) {
	h := NewReportHandler(&reportServiceStub{
		runwayFn: func(ctx context.Context) ([]domain.ProjectionPoint, error) {
			return nil, errors.New("ledger scan failed")
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/reports/runway", nil)
	rec := httptest.NewRecorder()

	h.Runway(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}
