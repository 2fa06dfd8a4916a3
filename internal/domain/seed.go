package domain

import "github.com/shopspring/decimal"

// SeedWallets returns the static treasury configuration the registry is
// seeded with at process start. Persisted balances fetched at startup
// override these amounts; the wallet structure itself is fixed for a session.
func SeedWallets() []*Wallet {
	usd := func(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

	return []*Wallet{
		{Pool: PoolAds, ID: "sol", Name: "Solana", Assets: []*Account{
			{Token: "USDT", Amount: usd(3200)},
			{Token: "USDC", Amount: usd(4500)},
		}},
		{Pool: PoolAds, ID: "bsc", Name: "BSC (BNB Chain)", Assets: []*Account{
			{Token: "USDT", Amount: usd(2800)},
			{Token: "USDC", Amount: usd(1500)},
		}},
		{Pool: PoolAds, ID: "hedera", Name: "Hedera", Assets: []*Account{
			{Token: "USDC", Amount: usd(3100)},
		}},
		{Pool: PoolAds, ID: "base", Name: "Base", Assets: []*Account{
			{Token: "USDC", Amount: usd(2100)},
		}},
		{Pool: PoolAds, ID: "ape", Name: "ApeChain", Assets: []*Account{
			{Token: "ApeUSD", Amount: usd(1800)},
		}},
		{Pool: PoolAds, ID: "arb", Name: "Arbitrum", Assets: []*Account{
			{Token: "USDC", Amount: usd(1095)},
		}},

		{Pool: PoolCold, ID: "evm-grant", Name: "DexPay EVM Grant Wallet", Address: "0x07C61De233533c7cF0F6979608990f0EB9EE2FfF", Assets: []*Account{
			{Token: "ApeCoin", Amount: usd(2500)},
			{Token: "ApeUSD", Amount: usd(5000)},
			{Token: "USDT", Amount: usd(1000)},
			{Token: "USDC", Amount: usd(500)},
			{Token: "LSK", Amount: usd(1000)},
		}},
		{Pool: PoolCold, ID: "hbar-cold", Name: "Hedera Wallet", Address: "0.0.8672864", Assets: []*Account{
			{Token: "HBAR", Amount: usd(1447)},
			{Token: "USDC", Amount: usd(1000)},
		}},

		{Pool: PoolFiat, ID: "safe-haven", Name: "Safe Haven MFB", Assets: []*Account{
			{
				Token:      "NGN",
				Amount:     usd(7260),
				Rate:       decimal.NewFromInt(1655),
				LocalValue: decimal.NewFromInt(12015300),
				LocalSym:   "₦",
			},
		}},
	}
}
