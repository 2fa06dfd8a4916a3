package mocks

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/dexpay/treasuryd/internal/domain"
	"github.com/dexpay/treasuryd/internal/usecase"
)

// MockBalanceRepository is a mock implementation of BalanceRepository.
type MockBalanceRepository struct {
	mu   sync.RWMutex
	rows map[string]usecase.BalanceRow

	UpsertFunc func(ctx context.Context, row usecase.BalanceRow) error
	ListFunc   func(ctx context.Context) ([]usecase.BalanceRow, error)
}

func NewMockBalanceRepository() *MockBalanceRepository {
	return &MockBalanceRepository{
		rows: make(map[string]usecase.BalanceRow),
	}
}

func (m *MockBalanceRepository) Upsert(ctx context.Context, row usecase.BalanceRow) error {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, row)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows[row.ID] = row
	return nil
}

func (m *MockBalanceRepository) List(ctx context.Context) ([]usecase.BalanceRow, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var rows []usecase.BalanceRow
	for _, row := range m.rows {
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].ID < rows[j].ID })
	return rows, nil
}

// Row returns the stored row for an account, for assertions.
func (m *MockBalanceRepository) Row(id string) (usecase.BalanceRow, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	row, ok := m.rows[id]
	return row, ok
}

// MockTransactionRepository is a mock implementation of TransactionRepository.
type MockTransactionRepository struct {
	mu           sync.RWMutex
	transactions map[string]*domain.Transaction
	order        []string

	CreateFunc       func(ctx context.Context, tx *domain.Transaction) error
	GetByIDFunc      func(ctx context.Context, id string) (*domain.Transaction, error)
	ListFunc         func(ctx context.Context, limit, offset int) ([]*domain.Transaction, error)
	ListAllFunc      func(ctx context.Context) ([]*domain.Transaction, error)
	UpdateStatusFunc func(ctx context.Context, id string, status domain.Status) error
	DeleteFunc       func(ctx context.Context, id string) error
}

func NewMockTransactionRepository() *MockTransactionRepository {
	return &MockTransactionRepository{
		transactions: make(map[string]*domain.Transaction),
	}
}

func (m *MockTransactionRepository) Create(ctx context.Context, tx *domain.Transaction) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.transactions[tx.ID] = tx
	m.order = append(m.order, tx.ID)
	return nil
}

func (m *MockTransactionRepository) GetByID(ctx context.Context, id string) (*domain.Transaction, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if tx, ok := m.transactions[id]; ok {
		return tx, nil
	}
	return nil, domain.ErrTransactionNotFound
}

func (m *MockTransactionRepository) List(ctx context.Context, limit, offset int) ([]*domain.Transaction, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	all, _ := m.ListAll(ctx)
	if offset >= len(all) {
		return nil, nil
	}
	all = all[offset:]
	if limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func (m *MockTransactionRepository) ListAll(ctx context.Context) ([]*domain.Transaction, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	// Newest first, mirroring the created_at desc ordering of the real repo.
	var txs []*domain.Transaction
	for i := len(m.order) - 1; i >= 0; i-- {
		if tx, ok := m.transactions[m.order[i]]; ok {
			txs = append(txs, tx)
		}
	}
	return txs, nil
}

func (m *MockTransactionRepository) UpdateStatus(ctx context.Context, id string, status domain.Status) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, status)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	tx, ok := m.transactions[id]
	if !ok {
		return domain.ErrTransactionNotFound
	}
	tx.Status = status
	return nil
}

func (m *MockTransactionRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.transactions[id]; !ok {
		return domain.ErrTransactionNotFound
	}
	delete(m.transactions, id)
	return nil
}

// MockAuditRepository is a mock implementation of AuditRepository.
type MockAuditRepository struct {
	mu      sync.RWMutex
	Entries []*domain.AuditLog

	CreateFunc func(ctx context.Context, log *domain.AuditLog) error
	ListFunc   func(ctx context.Context, limit, offset int) ([]*domain.AuditLog, error)
}

func NewMockAuditRepository() *MockAuditRepository {
	return &MockAuditRepository{}
}

func (m *MockAuditRepository) Create(ctx context.Context, log *domain.AuditLog) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, log)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entries = append(m.Entries, log)
	return nil
}

func (m *MockAuditRepository) List(ctx context.Context, limit, offset int) ([]*domain.AuditLog, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.AuditLog
	for i := len(m.Entries) - 1; i >= 0; i-- {
		out = append(out, m.Entries[i])
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

// Actions returns the recorded action names in order, for assertions.
func (m *MockAuditRepository) Actions() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var actions []string
	for _, e := range m.Entries {
		actions = append(actions, e.Action)
	}
	return actions
}

// MockOperatorRepository is a mock implementation of OperatorRepository.
type MockOperatorRepository struct {
	mu        sync.RWMutex
	operators []*domain.Operator

	CreateFunc func(ctx context.Context, op *domain.Operator) error
	ListFunc   func(ctx context.Context) ([]*domain.Operator, error)
}

func NewMockOperatorRepository() *MockOperatorRepository {
	return &MockOperatorRepository{}
}

func (m *MockOperatorRepository) Create(ctx context.Context, op *domain.Operator) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, op)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.operators = append(m.operators, op)
	return nil
}

func (m *MockOperatorRepository) List(ctx context.Context) ([]*domain.Operator, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.operators, nil
}

// MockSessionStore is an in-memory mock of SessionStore. Expiry is checked
// lazily against the stored deadline.
type MockSessionStore struct {
	mu       sync.Mutex
	sessions map[string]mockSession

	CreateFunc func(ctx context.Context, token, userName string, ttl time.Duration) error
	TouchFunc  func(ctx context.Context, token string, ttl time.Duration) (string, error)
	DeleteFunc func(ctx context.Context, token string) error
}

type mockSession struct {
	userName string
	deadline time.Time
}

func NewMockSessionStore() *MockSessionStore {
	return &MockSessionStore{
		sessions: make(map[string]mockSession),
	}
}

func (m *MockSessionStore) Create(ctx context.Context, token, userName string, ttl time.Duration) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, token, userName, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[token] = mockSession{userName: userName, deadline: time.Now().Add(ttl)}
	return nil
}

func (m *MockSessionStore) Touch(ctx context.Context, token string, ttl time.Duration) (string, error) {
	if m.TouchFunc != nil {
		return m.TouchFunc(ctx, token, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[token]
	if !ok || time.Now().After(s.deadline) {
		delete(m.sessions, token)
		return "", domain.ErrSessionExpired
	}
	s.deadline = time.Now().Add(ttl)
	m.sessions[token] = s
	return s.userName, nil
}

func (m *MockSessionStore) Delete(ctx context.Context, token string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, token)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, token)
	return nil
}

// MockIDGenerator is a mock implementation of IDGenerator producing
// deterministic sequential IDs.
type MockIDGenerator struct {
	mu      sync.Mutex
	counter int

	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	return fmt.Sprintf("id-%03d", m.counter)
}
