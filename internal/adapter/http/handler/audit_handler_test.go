package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dexpay/treasuryd/internal/adapter/http/dto"
	"github.com/dexpay/treasuryd/internal/domain"
)

type auditServiceStub struct {
	listFn func(ctx context.Context, limit, offset int) ([]*domain.AuditLog, error)
}

func (s *auditServiceStub) List(ctx context.Context, limit, offset int) ([]*domain.AuditLog, error) {
	return s.listFn(ctx, limit, offset)
}

func TestAuditHandler_List(t *testing.T) {
	h := NewAuditHandler(&auditServiceStub{
		listFn: func(ctx context.Context, limit, offset int) ([]*domain.AuditLog, error) {
			if limit != 20 || offset != 0 {
				t.Fatalf("unexpected pagination limit=%d offset=%d", limit, offset)
			}
			return []*domain.AuditLog{
				{ID: "a2", Action: domain.AuditActionEntryAdded, UserName: domain.AuditActor},
				{ID: "a1", Action: domain.AuditActionLogin, UserName: domain.AuditActor},
			}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/audit", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []*dto.AuditLogResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp) != 2 || resp[0].ID != "a2" {
		t.Fatalf("unexpected audit list %+v", resp)
	}
}

func TestAuditHandler_List_Pagination(t *testing.T) {
	var gotLimit, gotOffset int
	h := NewAuditHandler(&auditServiceStub{
		listFn: func(ctx context.Context, limit, offset int) ([]*domain.AuditLog, error) {
			gotLimit, gotOffset = limit, offset
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/audit?limit=50&offset=100", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotLimit != 50 || gotOffset != 100 {
		t.Fatalf("expected pagination passthrough, got limit=%d offset=%d", gotLimit, gotOffset)
	}
}
