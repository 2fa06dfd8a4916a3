package domain

import "github.com/shopspring/decimal"

// Adjustment is one balance change produced by fund movement.
type Adjustment struct {
	Account *Account
	Delta   decimal.Decimal
}

// PlanMovements computes the balance adjustments for a transaction crossing
// the Approved boundary. reverse undoes a prior application.
//
// Dispatch by category class:
//   - expense with a source: debit the source
//   - revenue with a dest: credit the dest
//   - liquidity with both: debit source, credit dest, each side independently
//
// A reference that does not resolve to a known account contributes nothing;
// for liquidity the side that resolves is still applied.
func PlanMovements(r *Registry, tx *Transaction, reverse bool) []Adjustment {
	multiplier := decimal.NewFromInt(1)
	if reverse {
		multiplier = decimal.NewFromInt(-1)
	}
	magnitude := tx.Amount.Abs()

	var adjustments []Adjustment

	debit := func(ref string) {
		if a := r.ResolveRef(ref); a != nil {
			adjustments = append(adjustments, Adjustment{Account: a, Delta: magnitude.Neg().Mul(multiplier)})
		}
	}
	credit := func(ref string) {
		if a := r.ResolveRef(ref); a != nil {
			adjustments = append(adjustments, Adjustment{Account: a, Delta: magnitude.Mul(multiplier)})
		}
	}

	switch tx.Category.Class() {
	case ClassExpense:
		if tx.Source != "" {
			debit(tx.Source)
		}
	case ClassRevenue:
		if tx.Dest != "" {
			credit(tx.Dest)
		}
	case ClassLiquidity:
		if tx.Source != "" {
			debit(tx.Source)
		}
		if tx.Dest != "" {
			credit(tx.Dest)
		}
	}

	return adjustments
}
