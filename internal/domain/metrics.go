package domain

import "github.com/shopspring/decimal"

// PeriodMetrics are the dashboard headline numbers for one month/year
// selection.
type PeriodMetrics struct {
	Revenue decimal.Decimal
	Burn    decimal.Decimal
	Runway  decimal.Decimal // months of runway at this period's burn rate
}

// FilterPeriod returns the transactions whose display date matches both the
// month and the year selection.
func FilterPeriod(txs []*Transaction, month, year string) []*Transaction {
	var out []*Transaction
	for _, tx := range txs {
		if tx.InPeriod(month, year) {
			out = append(out, tx)
		}
	}

	return out
}

// ComputePeriodMetrics aggregates revenue and burn over approved transactions
// in the given subset and derives runway from the current global balance.
//
// A period with zero burn substitutes 1 as the divisor: runway then equals
// the global balance, a deliberate large-number sentinel for "no measured
// burn" rather than a division by zero.
func ComputePeriodMetrics(txs []*Transaction, globalBalance decimal.Decimal) PeriodMetrics {
	m := PeriodMetrics{Revenue: decimal.Zero, Burn: decimal.Zero}

	for _, tx := range txs {
		if tx.Status != StatusApproved {
			continue
		}
		switch {
		case tx.Category.Class() == ClassRevenue:
			m.Revenue = m.Revenue.Add(tx.Amount)
		case tx.Category.IsExpense():
			m.Burn = m.Burn.Add(tx.Amount.Abs())
		}
	}

	m.Runway = globalBalance.Div(orOne(m.Burn))

	return m
}
