package handler

import (
	"context"
	"net/http"

	"github.com/dexpay/treasuryd/internal/adapter/http/dto"
	"github.com/dexpay/treasuryd/internal/domain"
)

// ReportService is the reporting surface the handler needs.
type ReportService interface {
	PeriodMetrics(ctx context.Context, month, year string) (domain.PeriodMetrics, error)
	Runway(ctx context.Context) ([]domain.ProjectionPoint, error)
}

// ReportHandler handles metrics and runway HTTP requests.
type ReportHandler struct {
	reportUC ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportUC ReportService) *ReportHandler {
	return &ReportHandler{reportUC: reportUC}
}

// Metrics returns revenue, burn and runway for one month/year selection.
func (h *ReportHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	month := q.Get("month")
	year := q.Get("year")
	if month == "" || year == "" {
		writeError(w, http.StatusBadRequest, "month and year are required", "")
		return
	}

	m, err := h.reportUC.PeriodMetrics(r.Context(), month, year)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to compute metrics", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.MetricsFromDomain(m))
}

// Runway returns the balance projection from the current month.
func (h *ReportHandler) Runway(w http.ResponseWriter, r *http.Request) {
	points, err := h.reportUC.Runway(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to project runway", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.RunwayFromDomain(points))
}
