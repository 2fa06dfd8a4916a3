package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dexpay/treasuryd/internal/domain"
	"github.com/dexpay/treasuryd/internal/infrastructure/metrics"
)

// TransactionUseCase handles ledger entry CRUD and the fund movement each
// status transition implies.
type TransactionUseCase struct {
	txRepo   TransactionRepository
	treasury *TreasuryUseCase
	audit    *AuditUseCase
	idGen    IDGenerator
	metrics  *metrics.Metrics
}

// NewTransactionUseCase creates a new TransactionUseCase.
func NewTransactionUseCase(
	txRepo TransactionRepository,
	treasury *TreasuryUseCase,
	audit *AuditUseCase,
	idGen IDGenerator,
	m *metrics.Metrics,
) *TransactionUseCase {
	return &TransactionUseCase{
		txRepo:   txRepo,
		treasury: treasury,
		audit:    audit,
		idGen:    idGen,
		metrics:  m,
	}
}

// CreateTransactionInput represents input for creating a ledger entry. Amount
// is the positive magnitude; the category fixes the stored sign.
type CreateTransactionInput struct {
	Date        string
	Category    string
	Type        string
	Description string
	Status      string
	Amount      decimal.Decimal
	Source      string
	Dest        string
}

// CreateTransaction validates, persists and, when created directly in
// Approved, applies fund movement. Persistence failure aborts before any
// balance change.
func (uc *TransactionUseCase) CreateTransaction(ctx context.Context, input CreateTransactionInput) (*domain.Transaction, error) {
	category, err := domain.ParseCategory(input.Category)
	if err != nil {
		return nil, err
	}

	status := domain.StatusPending
	if input.Status != "" {
		status, err = domain.ParseStatus(input.Status)
		if err != nil {
			return nil, err
		}
	}

	if err := domain.ValidateEntryAmount(input.Amount); err != nil {
		return nil, err
	}

	tx := &domain.Transaction{
		ID:          uc.idGen.Generate(),
		Date:        input.Date,
		Category:    category,
		Type:        input.Type,
		Description: input.Description,
		Status:      status,
		Amount:      category.SignedAmount(input.Amount),
		Source:      input.Source,
		Dest:        input.Dest,
		CreatedAt:   time.Now().UTC(),
	}

	if err := tx.Validate(); err != nil {
		return nil, err
	}

	if err := uc.txRepo.Create(ctx, tx); err != nil {
		return nil, err
	}

	if status == domain.StatusApproved {
		uc.treasury.ApplyMovement(ctx, tx, false)
	}

	if uc.metrics != nil {
		uc.metrics.TransactionsCreated.Inc()
		uc.metrics.TransactionAmount.Observe(tx.Amount.Abs().InexactFloat64())
		if status == domain.StatusApproved {
			uc.metrics.MovementsApplied.Inc()
		}
	}

	uc.audit.Record(ctx, domain.AuditActionEntryAdded,
		fmt.Sprintf("%s: %s (%s)", tx.Category, tx.Description, tx.Amount))

	return tx, nil
}

// GetTransaction retrieves a ledger entry by ID.
func (uc *TransactionUseCase) GetTransaction(ctx context.Context, id string) (*domain.Transaction, error) {
	return uc.txRepo.GetByID(ctx, id)
}

// ListTransactionsInput represents a paged, optionally filtered ledger read.
type ListTransactionsInput struct {
	Month    string
	Year     string
	Category string
	Limit    int
	Offset   int
}

// ListTransactions returns entries newest first, filtered by the dashboard's
// period and category selections. Filters narrow the full ledger before
// pagination, so every page of a filtered read is full until the matches run
// out.
func (uc *TransactionUseCase) ListTransactions(ctx context.Context, input ListTransactionsInput) ([]*domain.Transaction, error) {
	input.Limit, input.Offset = domain.ValidatePagination(input.Limit, input.Offset)

	hasPeriod := input.Month != "" && input.Year != ""
	if !hasPeriod && input.Category == "" {
		return uc.txRepo.List(ctx, input.Limit, input.Offset)
	}

	txs, err := uc.txRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	if hasPeriod {
		txs = domain.FilterPeriod(txs, input.Month, input.Year)
	}
	if input.Category != "" {
		filtered := txs[:0:0]
		for _, tx := range txs {
			if string(tx.Category) == input.Category {
				filtered = append(filtered, tx)
			}
		}
		txs = filtered
	}

	if input.Offset >= len(txs) {
		return nil, nil
	}
	if end := input.Offset + input.Limit; end < len(txs) {
		return txs[input.Offset:end], nil
	}

	return txs[input.Offset:], nil
}

// UpdateStatus moves an entry between approval states. Fund movement happens
// exactly once per Approved boundary crossing; the stored status changes
// first, so a persistence failure leaves balances untouched.
func (uc *TransactionUseCase) UpdateStatus(ctx context.Context, id string, newStatus string) (*domain.Transaction, error) {
	status, err := domain.ParseStatus(newStatus)
	if err != nil {
		return nil, err
	}

	tx, err := uc.txRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	transition := domain.ClassifyTransition(tx.Status, status)

	if err := uc.txRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	tx.Status = status

	switch transition {
	case domain.MovementApply:
		uc.treasury.ApplyMovement(ctx, tx, false)
		if uc.metrics != nil {
			uc.metrics.MovementsApplied.Inc()
		}
		uc.audit.Record(ctx, domain.AuditActionStatusUpdated,
			fmt.Sprintf("%s approved: %s", tx.Category, tx.Description))
	case domain.MovementReverse:
		uc.treasury.ApplyMovement(ctx, tx, true)
		if uc.metrics != nil {
			uc.metrics.MovementsReversed.Inc()
		}
		uc.audit.Record(ctx, domain.AuditActionStatusReverted,
			fmt.Sprintf("%s reverted to %s: %s", tx.Category, status, tx.Description))
	default:
		uc.audit.Record(ctx, domain.AuditActionStatusUpdated,
			fmt.Sprintf("%s set to %s: %s", tx.Category, status, tx.Description))
	}

	return tx, nil
}

// DeleteTransaction removes an entry. An Approved entry has its fund movement
// reversed before the row is deleted.
func (uc *TransactionUseCase) DeleteTransaction(ctx context.Context, id string) error {
	tx, err := uc.txRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.txRepo.Delete(ctx, id); err != nil {
		return err
	}

	if tx.Status == domain.StatusApproved {
		uc.treasury.ApplyMovement(ctx, tx, true)
		if uc.metrics != nil {
			uc.metrics.MovementsReversed.Inc()
		}
	}

	if uc.metrics != nil {
		uc.metrics.TransactionsDeleted.Inc()
	}

	uc.audit.Record(ctx, domain.AuditActionEntryDeleted,
		fmt.Sprintf("%s: %s (%s)", tx.Category, tx.Description, tx.Amount))

	return nil
}
