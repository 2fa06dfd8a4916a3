package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/dexpay/treasuryd/internal/domain"
	"github.com/dexpay/treasuryd/internal/usecase"
)

// LoginResponse is a successful PIN verification.
type LoginResponse struct {
	Success bool   `json:"success"`
	User    string `json:"user"`
	Token   string `json:"token"`
}

// AccountResponse represents one registry account in API responses.
type AccountResponse struct {
	ID         string          `json:"id"`
	Pool       string          `json:"pool"`
	WalletID   string          `json:"wallet_id"`
	WalletName string          `json:"wallet_name"`
	Token      string          `json:"token"`
	Amount     decimal.Decimal `json:"amount"`
	Rate       decimal.Decimal `json:"rate,omitempty"`
	LocalValue decimal.Decimal `json:"local_value,omitempty"`
	LocalSym   string          `json:"local_sym,omitempty"`
	Label      string          `json:"label"`
}

// AccountFromDomain converts a domain account to a response.
func AccountFromDomain(a *domain.Account) AccountResponse {
	return AccountResponse{
		ID:         a.ID(),
		Pool:       string(a.Pool),
		WalletID:   a.WalletID,
		WalletName: a.WalletName,
		Token:      a.Token,
		Amount:     a.Amount,
		Rate:       a.Rate,
		LocalValue: a.LocalValue,
		LocalSym:   a.LocalSym,
		Label:      a.Label(),
	}
}

// TreasuryResponse is the flattened registry plus derived totals.
type TreasuryResponse struct {
	Accounts      []AccountResponse          `json:"accounts"`
	PoolTotals    map[string]decimal.Decimal `json:"pool_totals"`
	GlobalBalance decimal.Decimal            `json:"global_balance"`
}

// TreasuryFromSnapshot converts a treasury snapshot to a response.
func TreasuryFromSnapshot(snap usecase.TreasurySnapshot) TreasuryResponse {
	resp := TreasuryResponse{
		Accounts:      make([]AccountResponse, 0, len(snap.Accounts)),
		PoolTotals:    make(map[string]decimal.Decimal, len(snap.PoolTotals)),
		GlobalBalance: snap.Global,
	}
	for i := range snap.Accounts {
		resp.Accounts = append(resp.Accounts, AccountFromDomain(&snap.Accounts[i]))
	}
	for pool, total := range snap.PoolTotals {
		resp.PoolTotals[string(pool)] = total
	}

	return resp
}

// TransactionResponse represents a ledger entry in API responses.
type TransactionResponse struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	Category    string          `json:"category"`
	Type        string          `json:"type,omitempty"`
	Description string          `json:"description"`
	Status      string          `json:"status"`
	Amount      decimal.Decimal `json:"amount"`
	Source      string          `json:"source,omitempty"`
	Dest        string          `json:"dest,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// TransactionFromDomain converts a domain transaction to a response.
func TransactionFromDomain(t *domain.Transaction) *TransactionResponse {
	return &TransactionResponse{
		ID:          t.ID,
		Date:        t.Date,
		Category:    string(t.Category),
		Type:        t.Type,
		Description: t.Description,
		Status:      string(t.Status),
		Amount:      t.Amount,
		Source:      t.Source,
		Dest:        t.Dest,
		CreatedAt:   t.CreatedAt,
	}
}

// TransactionsFromDomain converts domain transactions to responses.
func TransactionsFromDomain(txs []*domain.Transaction) []*TransactionResponse {
	result := make([]*TransactionResponse, len(txs))
	for i, t := range txs {
		result[i] = TransactionFromDomain(t)
	}
	return result
}

// MetricsResponse carries the dashboard headline numbers for one period.
type MetricsResponse struct {
	Revenue decimal.Decimal `json:"revenue"`
	Burn    decimal.Decimal `json:"burn"`
	Runway  decimal.Decimal `json:"runway_months"`
}

// MetricsFromDomain converts period metrics to a response.
func MetricsFromDomain(m domain.PeriodMetrics) MetricsResponse {
	return MetricsResponse{
		Revenue: m.Revenue,
		Burn:    m.Burn,
		Runway:  m.Runway,
	}
}

// ProjectionPointResponse is one step of the runway projection.
type ProjectionPointResponse struct {
	Period  string          `json:"period"`
	Balance decimal.Decimal `json:"balance"`
}

// RunwayFromDomain converts projection points to responses.
func RunwayFromDomain(points []domain.ProjectionPoint) []ProjectionPointResponse {
	result := make([]ProjectionPointResponse, len(points))
	for i, p := range points {
		result[i] = ProjectionPointResponse{Period: p.Period, Balance: p.Balance}
	}
	return result
}

// AuditLogResponse represents an audit entry in API responses.
type AuditLogResponse struct {
	ID        string    `json:"id"`
	Timestamp string    `json:"timestamp"`
	Action    string    `json:"action"`
	UserName  string    `json:"user_name"`
	Details   string    `json:"details"`
	CreatedAt time.Time `json:"created_at"`
}

// AuditLogFromDomain converts a domain audit log to a response.
func AuditLogFromDomain(l *domain.AuditLog) *AuditLogResponse {
	return &AuditLogResponse{
		ID:        l.ID,
		Timestamp: l.Timestamp,
		Action:    l.Action,
		UserName:  l.UserName,
		Details:   l.Details,
		CreatedAt: l.CreatedAt,
	}
}

// AuditLogsFromDomain converts domain audit logs to responses.
func AuditLogsFromDomain(logs []*domain.AuditLog) []*AuditLogResponse {
	result := make([]*AuditLogResponse, len(logs))
	for i, l := range logs {
		result[i] = AuditLogFromDomain(l)
	}
	return result
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
