package handler

import (
	"context"
	"net/http"

	"github.com/dexpay/treasuryd/internal/adapter/http/dto"
	"github.com/dexpay/treasuryd/internal/domain"
)

// AuditService is the audit surface the handler needs.
type AuditService interface {
	List(ctx context.Context, limit, offset int) ([]*domain.AuditLog, error)
}

// AuditHandler handles audit log HTTP requests.
type AuditHandler struct {
	auditUC AuditService
}

// NewAuditHandler creates a new AuditHandler.
func NewAuditHandler(auditUC AuditService) *AuditHandler {
	return &AuditHandler{auditUC: auditUC}
}

// List returns audit entries, newest first.
func (h *AuditHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := parseIntQuery(r, "limit", 20)
	offset := parseIntQuery(r, "offset", 0)

	logs, err := h.auditUC.List(r.Context(), limit, offset)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list audit logs", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.AuditLogsFromDomain(logs))
}
