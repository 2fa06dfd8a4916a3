package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/dexpay/treasuryd/internal/domain"
	"github.com/dexpay/treasuryd/internal/infrastructure/metrics"
)

// SessionTTL is the inactivity window: a session untouched for this long is
// locked out.
const SessionTTL = 3 * time.Minute

// AuthUseCase verifies operator PINs and manages inactivity-locked sessions.
// The session store carries the sliding TTL; the in-process watchdog exists
// only to write the auto-lock audit entry when a session goes idle.
type AuthUseCase struct {
	operatorRepo OperatorRepository
	sessions     SessionStore
	audit        *AuditUseCase
	logger       zerolog.Logger
	metrics      *metrics.Metrics
	ttl          time.Duration

	mu        sync.Mutex
	watchdogs map[string]*time.Timer
}

// NewAuthUseCase creates a new AuthUseCase.
func NewAuthUseCase(operatorRepo OperatorRepository, sessions SessionStore, audit *AuditUseCase, logger zerolog.Logger, m *metrics.Metrics) *AuthUseCase {
	return &AuthUseCase{
		operatorRepo: operatorRepo,
		sessions:     sessions,
		audit:        audit,
		logger:       logger,
		metrics:      m,
		ttl:          SessionTTL,
		watchdogs:    make(map[string]*time.Timer),
	}
}

// WithSessionTTL overrides the default inactivity window.
func (uc *AuthUseCase) WithSessionTTL(ttl time.Duration) *AuthUseCase {
	if ttl > 0 {
		uc.ttl = ttl
	}
	return uc
}

// LoginResult is a successful PIN verification.
type LoginResult struct {
	Token    string
	UserName string
}

// Login verifies a 4-digit PIN against the operator roster. Format is checked
// before any lookup; a wrong PIN and a transport failure both surface as
// access denied.
func (uc *AuthUseCase) Login(ctx context.Context, pin string) (*LoginResult, error) {
	if err := domain.ValidatePIN(pin); err != nil {
		return nil, err
	}

	operators, err := uc.operatorRepo.List(ctx)
	if err != nil {
		uc.logger.Error().Err(err).Msg("operator lookup failed")
		return nil, domain.ErrAccessDenied
	}

	var matched *domain.Operator
	for _, op := range operators {
		if bcrypt.CompareHashAndPassword([]byte(op.PINHash), []byte(pin)) == nil {
			matched = op
			break
		}
	}
	if matched == nil {
		if uc.metrics != nil {
			uc.metrics.AuthAttempts.WithLabelValues("denied").Inc()
		}
		return nil, domain.ErrAccessDenied
	}

	token := uuid.NewString()
	if err := uc.sessions.Create(ctx, token, matched.Name, uc.ttl); err != nil {
		uc.logger.Error().Err(err).Msg("session create failed")
		return nil, domain.ErrAccessDenied
	}

	uc.armWatchdog(token)
	uc.audit.Record(ctx, domain.AuditActionLogin, "PIN verified for "+matched.Name)

	if uc.metrics != nil {
		uc.metrics.AuthAttempts.WithLabelValues("success").Inc()
		uc.metrics.ActiveSessions.Inc()
	}

	return &LoginResult{Token: token, UserName: matched.Name}, nil
}

// Verify refreshes the session's TTL and returns its user name. Every
// authenticated request lands here, so activity keeps the session alive.
func (uc *AuthUseCase) Verify(ctx context.Context, token string) (string, error) {
	userName, err := uc.sessions.Touch(ctx, token, uc.ttl)
	if err != nil {
		return "", err
	}

	uc.armWatchdog(token)

	return userName, nil
}

// Logout clears the session explicitly.
func (uc *AuthUseCase) Logout(ctx context.Context, token string) error {
	uc.disarmWatchdog(token)

	if err := uc.sessions.Delete(ctx, token); err != nil {
		return err
	}

	uc.audit.Record(ctx, domain.AuditActionLogout, "Session ended by operator")

	if uc.metrics != nil {
		uc.metrics.ActiveSessions.Dec()
	}

	return nil
}

// armWatchdog (re)starts the auto-lock timer for a token. Firing means the
// session has been idle a full TTL: the store entry has expired on its own,
// the watchdog only records the lock.
func (uc *AuthUseCase) armWatchdog(token string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if t, ok := uc.watchdogs[token]; ok {
		t.Stop()
	}
	uc.watchdogs[token] = time.AfterFunc(uc.ttl, func() {
		uc.mu.Lock()
		delete(uc.watchdogs, token)
		uc.mu.Unlock()

		uc.audit.Record(context.Background(), domain.AuditActionAutoLock, "Session locked after inactivity")

		if uc.metrics != nil {
			uc.metrics.SessionsLocked.Inc()
			uc.metrics.ActiveSessions.Dec()
		}
	})
}

func (uc *AuthUseCase) disarmWatchdog(token string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if t, ok := uc.watchdogs[token]; ok {
		t.Stop()
		delete(uc.watchdogs, token)
	}
}

// Close stops all pending watchdog timers, for shutdown.
func (uc *AuthUseCase) Close() {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	for token, t := range uc.watchdogs {
		t.Stop()
		delete(uc.watchdogs, token)
	}
}
