package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Status is a transaction's approval state.
type Status string

const (
	StatusPending         Status = "Pending"
	StatusPendingApproval Status = "Pending Approval"
	StatusApproved        Status = "Approved"
)

// ParseStatus validates a status string.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusPendingApproval, StatusApproved:
		return Status(s), nil
	}

	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

// Transaction is a ledger entry. Amount is signed: the sign is fixed by the
// category at creation time and the fund-movement math relies on it staying
// consistent. Source and Dest hold stable account identifiers (older rows may
// hold display-label prefixes, see Registry.ResolveRef).
type Transaction struct {
	ID          string
	Date        string // display date, e.g. "Dec 05, 2025"
	Category    Category
	Type        string
	Description string
	Status      Status
	Amount      decimal.Decimal
	Source      string
	Dest        string
	CreatedAt   time.Time
}

// Validate checks category-dependent account references.
func (t *Transaction) Validate() error {
	switch t.Category.Class() {
	case ClassExpense:
		if t.Source == "" {
			return ErrMissingSource
		}
	case ClassRevenue:
		if t.Dest == "" {
			return ErrMissingDest
		}
	case ClassLiquidity:
		if t.Source == "" {
			return ErrMissingSource
		}
		if t.Dest == "" {
			return ErrMissingDest
		}
	}

	return nil
}

// InPeriod reports whether the transaction's display date falls in the given
// month/year selection, matching the dashboard's period filter.
func (t *Transaction) InPeriod(month, year string) bool {
	return strings.Contains(t.Date, month) && strings.Contains(t.Date, year)
}

// MovementTransition describes what a status change means for fund movement.
type MovementTransition int

const (
	// MovementNone: transition between two non-Approved states, no balance effect.
	MovementNone MovementTransition = iota
	// MovementApply: status entered Approved.
	MovementApply
	// MovementReverse: status left Approved.
	MovementReverse
)

// ClassifyTransition determines whether a status change crosses the Approved
// boundary. Fund movement happens exactly once per crossing and never for
// transitions between two non-Approved states.
func ClassifyTransition(old, new Status) MovementTransition {
	switch {
	case new == StatusApproved && old != StatusApproved:
		return MovementApply
	case old == StatusApproved && new != StatusApproved:
		return MovementReverse
	}

	return MovementNone
}

// DisplayDate renders the dashboard's date format from its parts.
func DisplayDate(month, day, year string) string {
	return fmt.Sprintf("%s %s, %s", month, day, year)
}
