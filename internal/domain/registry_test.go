package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/dexpay/treasuryd/internal/domain"
)

func TestRegistryFlatten(t *testing.T) {
	r := domain.NewRegistry(domain.SeedWallets())

	accounts := r.Accounts()
	if len(accounts) != 16 {
		t.Fatalf("expected 16 seeded accounts, got %d", len(accounts))
	}

	first := accounts[0]
	if first.ID() != "ads-sol-USDT" {
		t.Errorf("expected first account ads-sol-USDT, got %s", first.ID())
	}

	last := accounts[len(accounts)-1]
	if last.ID() != "fiat-safe-haven-NGN" {
		t.Errorf("expected last account fiat-safe-haven-NGN, got %s", last.ID())
	}
}

func TestRegistryResolve_UnknownReturnsNil(t *testing.T) {
	r := domain.NewRegistry(domain.SeedWallets())

	if a := r.Resolve("ads-renamed-chain-USDT"); a != nil {
		t.Errorf("expected nil for unknown identifier, got %s", a.ID())
	}
}

func TestRegistryResolveRef(t *testing.T) {
	r := domain.NewRegistry(domain.SeedWallets())

	tests := []struct {
		name string
		ref  string
		want string // expected account ID, "" for nil
	}{
		{name: "stable identifier", ref: "cold-evm-grant-ApeCoin", want: "cold-evm-grant-ApeCoin"},
		{name: "label prefix from historical row", ref: "Ads: Solana - USDC", want: "ads-sol-USDC"},
		{name: "unknown reference absorbs silently", ref: "Ads: Polygon - MATIC", want: ""},
		{name: "empty reference", ref: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := r.ResolveRef(tt.ref)
			if tt.want == "" {
				if a != nil {
					t.Fatalf("expected nil, got %s", a.ID())
				}
				return
			}
			if a == nil {
				t.Fatal("expected account, got nil")
			}
			if a.ID() != tt.want {
				t.Errorf("expected %s, got %s", tt.want, a.ID())
			}
		})
	}
}

func TestRegistryTotals(t *testing.T) {
	r := domain.NewRegistry(domain.SeedWallets())

	ads := r.PoolTotal(domain.PoolAds)
	if !ads.Equal(decimal.NewFromInt(20095)) {
		t.Errorf("expected ads total 20095, got %s", ads)
	}

	cold := r.PoolTotal(domain.PoolCold)
	if !cold.Equal(decimal.NewFromInt(12447)) {
		t.Errorf("expected cold total 12447, got %s", cold)
	}

	fiat := r.PoolTotal(domain.PoolFiat)
	if !fiat.Equal(decimal.NewFromInt(7260)) {
		t.Errorf("expected fiat total 7260, got %s", fiat)
	}

	global := r.GlobalBalance()
	if !global.Equal(ads.Add(cold).Add(fiat)) {
		t.Errorf("global balance must equal sum of pools, got %s", global)
	}
}

func TestRegistryGlobalBalance_TracksMutations(t *testing.T) {
	r := domain.NewRegistry(domain.SeedWallets())
	before := r.GlobalBalance()

	r.Resolve("ads-sol-USDT").ApplyDelta(decimal.NewFromInt(-500))

	after := r.GlobalBalance()
	if !after.Equal(before.Sub(decimal.NewFromInt(500))) {
		t.Errorf("expected %s, got %s", before.Sub(decimal.NewFromInt(500)), after)
	}
}
