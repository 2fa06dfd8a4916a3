package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/dexpay/treasuryd/internal/adapter/http/dto"
	"github.com/dexpay/treasuryd/internal/domain"
	"github.com/dexpay/treasuryd/internal/usecase"
)

// TreasuryService is the registry surface the handler needs.
type TreasuryService interface {
	Snapshot() usecase.TreasurySnapshot
	SetBalance(ctx context.Context, accountID string, amount decimal.Decimal) (domain.Account, error)
	SetFiatField(ctx context.Context, accountID string, field usecase.FiatField, value decimal.Decimal) (domain.Account, error)
}

// AccountHandler handles registry and manual-edit HTTP requests.
type AccountHandler struct {
	treasuryUC TreasuryService
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(treasuryUC TreasuryService) *AccountHandler {
	return &AccountHandler{treasuryUC: treasuryUC}
}

// List returns the flattened registry with pool totals and global balance.
func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.TreasuryFromSnapshot(h.treasuryUC.Snapshot()))
}

// SetBalance overwrites one account's USD amount.
func (h *AccountHandler) SetBalance(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing account ID", "")
		return
	}

	var req dto.SetBalanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	account, err := h.treasuryUC.SetBalance(r.Context(), id, req.Amount)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to set balance", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.AccountFromDomain(&account))
}

// SetFiat edits a fiat account's local value or exchange rate.
func (h *AccountHandler) SetFiat(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing account ID", "")
		return
	}

	var req dto.SetFiatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	account, err := h.treasuryUC.SetFiatField(r.Context(), id, usecase.FiatField(req.Field), req.Value)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to update fiat account", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.AccountFromDomain(&account))
}
