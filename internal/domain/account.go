package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Account is a balance-bearing entity addressed by (pool, walletID, token).
// Amounts are USD-denominated; fiat accounts additionally carry a local
// exchange rate and a derived local-currency value.
type Account struct {
	Pool       Pool
	WalletID   string
	WalletName string
	Token      string
	Amount     decimal.Decimal
	Rate       decimal.Decimal // local-currency units per USD, zero for non-fiat
	LocalValue decimal.Decimal // Amount * Rate, maintained on every mutation
	LocalSym   string          // local currency symbol for fiat labels
}

// ID returns the synthetic identifier "<pool>-<walletID>-<token>".
func (a *Account) ID() string {
	return fmt.Sprintf("%s-%s-%s", a.Pool, a.WalletID, a.Token)
}

// HasRate reports whether this account carries a local exchange rate.
func (a *Account) HasRate() bool {
	return !a.Rate.IsZero()
}

// ApplyDelta adds delta to the balance. Rate-bearing accounts recompute the
// local value in the same mutation; the two fields never diverge.
func (a *Account) ApplyDelta(delta decimal.Decimal) {
	a.Amount = a.Amount.Add(delta)
	a.syncLocalValue()
}

// SetAmount overwrites the balance. Same co-update rule as ApplyDelta.
func (a *Account) SetAmount(v decimal.Decimal) {
	a.Amount = v
	a.syncLocalValue()
}

// SetLocalValue overwrites the local-currency value and rederives the USD
// amount from the current rate.
func (a *Account) SetLocalValue(v decimal.Decimal) {
	a.LocalValue = v
	a.Amount = v.Div(orOne(a.Rate))
}

// SetRate overwrites the exchange rate and rederives the USD amount from the
// current local value.
func (a *Account) SetRate(r decimal.Decimal) {
	a.Rate = r
	a.Amount = a.LocalValue.Div(orOne(r))
}

func (a *Account) syncLocalValue() {
	if a.HasRate() {
		a.LocalValue = a.Amount.Mul(a.Rate)
	}
}

// Label renders the human-readable account label with the current balance
// embedded, e.g. "Ads: Solana - USDT (Bal: $3,200)". Fiat accounts show the
// local-currency value instead.
func (a *Account) Label() string {
	balance := "$" + groupThousands(a.Amount)
	if a.HasRate() {
		sym := a.LocalSym
		if sym == "" {
			sym = "$"
		}
		balance = sym + groupThousands(a.LocalValue)
	}

	return fmt.Sprintf("%s: %s - %s (Bal: %s)", a.Pool.DisplayName(), a.WalletName, a.Token, balance)
}

// LabelPrefix is the label without the balance suffix. Transactions created
// by older clients store this as their source/dest reference.
func (a *Account) LabelPrefix() string {
	return fmt.Sprintf("%s: %s - %s", a.Pool.DisplayName(), a.WalletName, a.Token)
}

func orOne(d decimal.Decimal) decimal.Decimal {
	if d.IsZero() {
		return decimal.NewFromInt(1)
	}

	return d
}

// groupThousands formats a decimal with comma-separated integer groups,
// matching the dashboard's display format.
func groupThousands(d decimal.Decimal) string {
	s := d.Round(2).String()

	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, fracPart, hasFrac := strings.Cut(s, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	out := b.String()
	if hasFrac {
		out += "." + fracPart
	}
	if neg {
		out = "-" + out
	}

	return out
}
