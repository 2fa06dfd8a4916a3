package dto

import (
	"github.com/shopspring/decimal"

	"github.com/dexpay/treasuryd/internal/usecase"
)

// LoginRequest carries the operator PIN.
type LoginRequest struct {
	PIN string `json:"pin"`
}

// SetBalanceRequest overwrites an account's USD amount.
type SetBalanceRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// SetFiatRequest edits one fiat account property.
type SetFiatRequest struct {
	Field string          `json:"field"` // local_value | rate
	Value decimal.Decimal `json:"value"`
}

// CreateTransactionRequest represents a request to create a ledger entry.
// Amount is the positive magnitude; the server fixes the sign by category.
type CreateTransactionRequest struct {
	Date        string          `json:"date"`
	Category    string          `json:"category"`
	Type        string          `json:"type,omitempty"`
	Description string          `json:"description"`
	Status      string          `json:"status,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Source      string          `json:"source,omitempty"`
	Dest        string          `json:"dest,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateTransactionRequest) ToUseCaseInput() usecase.CreateTransactionInput {
	return usecase.CreateTransactionInput{
		Date:        r.Date,
		Category:    r.Category,
		Type:        r.Type,
		Description: r.Description,
		Status:      r.Status,
		Amount:      r.Amount,
		Source:      r.Source,
		Dest:        r.Dest,
	}
}

// UpdateStatusRequest moves an entry between approval states.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}
