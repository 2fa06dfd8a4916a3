package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/dexpay/treasuryd/internal/adapter/http/dto"
	"github.com/dexpay/treasuryd/internal/domain"
	"github.com/dexpay/treasuryd/internal/usecase"
)

type transactionServiceStub struct {
	createFn       func(ctx context.Context, input usecase.CreateTransactionInput) (*domain.Transaction, error)
	listFn         func(ctx context.Context, input usecase.ListTransactionsInput) ([]*domain.Transaction, error)
	updateStatusFn func(ctx context.Context, id, status string) (*domain.Transaction, error)
	deleteFn       func(ctx context.Context, id string) error
}

func (s *transactionServiceStub) CreateTransaction(ctx context.Context, input usecase.CreateTransactionInput) (*domain.Transaction, error) {
	return s.createFn(ctx, input)
}

func (s *transactionServiceStub) ListTransactions(ctx context.Context, input usecase.ListTransactionsInput) ([]*domain.Transaction, error) {
	return s.listFn(ctx, input)
}

func (s *transactionServiceStub) UpdateStatus(ctx context.Context, id, status string) (*domain.Transaction, error) {
	return s.updateStatusFn(ctx, id, status)
}

func (s *transactionServiceStub) DeleteTransaction(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestTransactionHandler_Create_Success(t *testing.T) {
	created := &domain.Transaction{ID: "tx-1", Category: domain.CategoryRevenue, Amount: decimal.NewFromInt(750)}
	var captured usecase.CreateTransactionInput

	h := NewTransactionHandler(&transactionServiceStub{
		createFn: func(ctx context.Context, input usecase.CreateTransactionInput) (*domain.Transaction, error) {
			captured = input
			return created, nil
		},
	})

	body, _ := json.Marshal(dto.CreateTransactionRequest{
		Date:        "Dec 05, 2025",
		Category:    "Revenue",
		Description: "Client settlement",
		Amount:      decimal.NewFromInt(750),
		Dest:        "fiat-safe-haven-NGN",
	})

	req := httptest.NewRequest(http.MethodPost, "/transactions", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if captured.Category != "Revenue" || captured.Dest != "fiat-safe-haven-NGN" {
		t.Fatalf("expected input to match request, got %+v", captured)
	}

	var resp dto.TransactionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.ID != "tx-1" {
		t.Fatalf("expected transaction ID tx-1, got %s", resp.ID)
	}
}

func TestTransactionHandler_Create_InvalidBody(t *testing.T) {
	h := NewTransactionHandler(&transactionServiceStub{
		createFn: func(ctx context.Context, input usecase.CreateTransactionInput) (*domain.Transaction, error) {
			t.Fatal("CreateTransaction should not be called")
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/transactions", bytes.NewBufferString("{bad json"))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestTransactionHandler_Create_DomainError(t *testing.T) {
	h := NewTransactionHandler(&transactionServiceStub{
		createFn: func(ctx context.Context, input usecase.CreateTransactionInput) (*domain.Transaction, error) {
			return nil, domain.ErrMissingSource
		},
	})

	body, _ := json.Marshal(dto.CreateTransactionRequest{Category: "OpEx", Amount: decimal.NewFromInt(100)})
	req := httptest.NewRequest(http.MethodPost, "/transactions", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestTransactionHandler_List_PassesFilters(t *testing.T) {
	var captured usecase.ListTransactionsInput

	h := NewTransactionHandler(&transactionServiceStub{
		listFn: func(ctx context.Context, input usecase.ListTransactionsInput) ([]*domain.Transaction, error) {
			captured = input
			return []*domain.Transaction{{ID: "tx-1"}}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/transactions?month=Dec&year=2025&category=Revenue&limit=50", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if captured.Month != "Dec" || captured.Year != "2025" || captured.Category != "Revenue" || captured.Limit != 50 {
		t.Fatalf("expected filters to pass through, got %+v", captured)
	}
}

func TestTransactionHandler_UpdateStatus(t *testing.T) {
	h := NewTransactionHandler(&transactionServiceStub{
		updateStatusFn: func(ctx context.Context, id, status string) (*domain.Transaction, error) {
			if id != "tx-1" || status != "Approved" {
				t.Fatalf("unexpected args: %s %s", id, status)
			}
			return &domain.Transaction{ID: id, Status: domain.StatusApproved}, nil
		},
	})

	body, _ := json.Marshal(dto.UpdateStatusRequest{Status: "Approved"})
	req := httptest.NewRequest(http.MethodPatch, "/transactions/tx-1/status", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.UpdateStatus(rec, withURLParam(req, "id", "tx-1"))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestTransactionHandler_UpdateStatus_NotFound(t *testing.T) {
	h := NewTransactionHandler(&transactionServiceStub{
		updateStatusFn: func(ctx context.Context, id, status string) (*domain.Transaction, error) {
			return nil, domain.ErrTransactionNotFound
		},
	})

	body, _ := json.Marshal(dto.UpdateStatusRequest{Status: "Approved"})
	req := httptest.NewRequest(http.MethodPatch, "/transactions/nope/status", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.UpdateStatus(rec, withURLParam(req, "id", "nope"))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestTransactionHandler_Delete(t *testing.T) {
	deleted := ""
	h := NewTransactionHandler(&transactionServiceStub{
		deleteFn: func(ctx context.Context, id string) error {
			deleted = id
			return nil
		},
	})

	req := httptest.NewRequest(http.MethodDelete, "/transactions/tx-1", nil)
	rec := httptest.NewRecorder()

	h.Delete(rec, withURLParam(req, "id", "tx-1"))

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if deleted != "tx-1" {
		t.Fatalf("expected delete of tx-1, got %q", deleted)
	}
}
