package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/dexpay/treasuryd/internal/domain"
	"github.com/dexpay/treasuryd/internal/usecase"
	"github.com/dexpay/treasuryd/internal/usecase/mocks"
)

type authFixture struct {
	uc        *usecase.AuthUseCase
	sessions  *mocks.MockSessionStore
	auditRepo *mocks.MockAuditRepository
}

func newAuthFixture(t *testing.T, pins ...string) *authFixture {
	t.Helper()

	operatorRepo := mocks.NewMockOperatorRepository()
	for i, pin := range pins {
		hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.MinCost)
		if err != nil {
			t.Fatalf("hash pin: %v", err)
		}
		op := &domain.Operator{
			ID:        mocks.NewMockIDGenerator().Generate(),
			Name:      []string{"Treasury Finance", "Backup Operator"}[i%2],
			PINHash:   string(hash),
			CreatedAt: time.Now().UTC(),
		}
		if err := operatorRepo.Create(context.Background(), op); err != nil {
			t.Fatalf("seed operator: %v", err)
		}
	}

	sessions := mocks.NewMockSessionStore()
	auditRepo := mocks.NewMockAuditRepository()
	audit := usecase.NewAuditUseCase(auditRepo, mocks.NewMockIDGenerator(), zerolog.Nop(), nil)

	uc := usecase.NewAuthUseCase(operatorRepo, sessions, audit, zerolog.Nop(), nil)
	t.Cleanup(uc.Close)

	return &authFixture{uc: uc, sessions: sessions, auditRepo: auditRepo}
}

func TestAuthUseCase_Login(t *testing.T) {
	f := newAuthFixture(t, "1907")

	result, err := f.uc.Login(context.Background(), "1907")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Token == "" {
		t.Error("expected a session token")
	}
	if result.UserName != "Treasury Finance" {
		t.Errorf("user name = %q", result.UserName)
	}

	if actions := f.auditRepo.Actions(); len(actions) != 1 || actions[0] != domain.AuditActionLogin {
		t.Errorf("audit actions = %v, want one User Login", actions)
	}
}

func TestAuthUseCase_LoginBadFormat(t *testing.T) {
	f := newAuthFixture(t, "1907")

	for _, pin := range []string{"", "19", "19075", "19a7"} {
		if _, err := f.uc.Login(context.Background(), pin); !errors.Is(err, domain.ErrInvalidPIN) {
			t.Errorf("Login(%q) = %v, want ErrInvalidPIN", pin, err)
		}
	}
	if len(f.auditRepo.Actions()) != 0 {
		t.Error("format rejections must not be audited")
	}
}

func TestAuthUseCase_LoginWrongPIN(t *testing.T) {
	f := newAuthFixture(t, "1907")

	if _, err := f.uc.Login(context.Background(), "0000"); !errors.Is(err, domain.ErrAccessDenied) {
		t.Errorf("expected ErrAccessDenied, got %v", err)
	}
}

func TestAuthUseCase_LoginStoreFailureIsAccessDenied(t *testing.T) {
	f := newAuthFixture(t, "1907")
	f.sessions.CreateFunc = func(ctx context.Context, token, userName string, ttl time.Duration) error {
		return errors.New("connection refused")
	}

	if _, err := f.uc.Login(context.Background(), "1907"); !errors.Is(err, domain.ErrAccessDenied) {
		t.Errorf("transport failure must surface as access denied, got %v", err)
	}
}

func TestAuthUseCase_VerifyRefreshes(t *testing.T) {
	f := newAuthFixture(t, "1907")

	result, err := f.uc.Login(context.Background(), "1907")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	userName, err := f.uc.Verify(context.Background(), result.Token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if userName != "Treasury Finance" {
		t.Errorf("user name = %q", userName)
	}

	if _, err := f.uc.Verify(context.Background(), "no-such-token"); !errors.Is(err, domain.ErrSessionExpired) {
		t.Errorf("expected ErrSessionExpired, got %v", err)
	}
}

func TestAuthUseCase_Logout(t *testing.T) {
	f := newAuthFixture(t, "1907")

	result, err := f.uc.Login(context.Background(), "1907")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if err := f.uc.Logout(context.Background(), result.Token); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := f.uc.Verify(context.Background(), result.Token); !errors.Is(err, domain.ErrSessionExpired) {
		t.Errorf("session must be gone after logout, got %v", err)
	}

	actions := f.auditRepo.Actions()
	if len(actions) != 2 || actions[1] != domain.AuditActionLogout {
		t.Errorf("audit actions = %v, want login then logout", actions)
	}
}
