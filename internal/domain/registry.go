package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Wallet groups the assets held on one chain, vault or bank account.
type Wallet struct {
	Pool    Pool
	ID      string
	Name    string
	Address string
	Assets  []*Account
}

// Registry flattens the three pools into a uniform addressable account list.
// It is a projection over the wallet collections: the accounts it indexes are
// the same objects held by the wallets, so balance mutations are visible
// without rebuilding.
type Registry struct {
	wallets []*Wallet
	flat    []*Account
	byID    map[string]*Account
}

// NewRegistry builds a registry from wallet collections. Each asset inherits
// its wallet's pool, ID and display name.
func NewRegistry(wallets []*Wallet) *Registry {
	r := &Registry{
		wallets: wallets,
		byID:    make(map[string]*Account),
	}

	for _, w := range wallets {
		for _, a := range w.Assets {
			a.Pool = w.Pool
			a.WalletID = w.ID
			a.WalletName = w.Name
			r.flat = append(r.flat, a)
			r.byID[a.ID()] = a
		}
	}

	return r
}

// Accounts returns the flat ordered account list.
func (r *Registry) Accounts() []*Account {
	return r.flat
}

// Wallets returns the wallet collections for one pool, in seed order.
func (r *Registry) Wallets(pool Pool) []*Wallet {
	var out []*Wallet
	for _, w := range r.wallets {
		if w.Pool == pool {
			out = append(out, w)
		}
	}

	return out
}

// Resolve looks up an account by its synthetic identifier. Unknown
// identifiers return nil: historical transactions may reference accounts
// renamed or removed from configuration, and callers treat that as a silent
// no-op rather than an error.
func (r *Registry) Resolve(id string) *Account {
	return r.byID[id]
}

// ResolveRef resolves a transaction's source/dest reference. New rows store
// the stable account identifier; older rows store a display-label prefix, so
// label matching is kept as a fallback.
func (r *Registry) ResolveRef(ref string) *Account {
	if ref == "" {
		return nil
	}

	if a := r.byID[ref]; a != nil {
		return a
	}

	for _, a := range r.flat {
		if strings.HasPrefix(a.Label(), ref) {
			return a
		}
	}

	return nil
}

// PoolTotal sums the USD amounts of all accounts in one pool.
func (r *Registry) PoolTotal(pool Pool) decimal.Decimal {
	total := decimal.Zero
	for _, a := range r.flat {
		if a.Pool == pool {
			total = total.Add(a.Amount)
		}
	}

	return total
}

// GlobalBalance sums the USD amounts of all accounts across all pools. It is
// derived state, recomputed on every call, never stored.
func (r *Registry) GlobalBalance() decimal.Decimal {
	total := decimal.Zero
	for _, a := range r.flat {
		total = total.Add(a.Amount)
	}

	return total
}
