package domain

// Pool partitions the treasury into its three account groups.
type Pool string

const (
	PoolAds  Pool = "ads"
	PoolCold Pool = "cold"
	PoolFiat Pool = "fiat"
)

// Pools lists the pools in dashboard order.
func Pools() []Pool {
	return []Pool{PoolAds, PoolCold, PoolFiat}
}

// ParsePool maps a wire value to a pool.
func ParsePool(s string) (Pool, error) {
	switch Pool(s) {
	case PoolAds, PoolCold, PoolFiat:
		return Pool(s), nil
	default:
		return "", ErrInvalidPool
	}
}

// DisplayName returns the label prefix used on the dashboard.
func (p Pool) DisplayName() string {
	switch p {
	case PoolAds:
		return "Ads"
	case PoolCold:
		return "Cold"
	case PoolFiat:
		return "Fiat"
	default:
		return string(p)
	}
}
