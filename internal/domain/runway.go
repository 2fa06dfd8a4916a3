package domain

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	// DefaultFiscalYear is assumed for transaction dates that carry no
	// explicit year.
	DefaultFiscalYear = 2025

	// ProjectionMonths is the number of points in the runway projection,
	// including the anchor at the current balance.
	ProjectionMonths = 7

	// TrailingBurnWindow is how many recent monthly burn totals feed the
	// average.
	TrailingBurnWindow = 3
)

// DefaultMonthlyBurn keeps the projection visually meaningful when no expense
// history exists yet.
var DefaultMonthlyBurn = decimal.NewFromInt(8540)

var monthsByName = map[string]time.Month{
	"Jan": time.January, "Feb": time.February, "Mar": time.March,
	"Apr": time.April, "May": time.May, "Jun": time.June,
	"Jul": time.July, "Aug": time.August, "Sep": time.September,
	"Oct": time.October, "Nov": time.November, "Dec": time.December,
}

// Period is a calendar-month bucket.
type Period struct {
	Year  int
	Month time.Month
}

func (p Period) before(q Period) bool {
	if p.Year != q.Year {
		return p.Year < q.Year
	}

	return p.Month < q.Month
}

// ParsePeriod extracts the (year, month) bucket from a display date like
// "Dec 05, 2025". The month is matched by its three-letter prefix; a date
// without a four-digit year defaults to DefaultFiscalYear.
func ParsePeriod(date string) (Period, bool) {
	p := Period{Year: DefaultFiscalYear}

	fields := strings.Fields(strings.ReplaceAll(date, ",", " "))
	for _, f := range fields {
		if len(f) >= 3 {
			if m, ok := monthsByName[f[:3]]; ok && p.Month == 0 {
				p.Month = m
				continue
			}
		}
		if len(f) == 4 {
			if y, err := strconv.Atoi(f); err == nil {
				p.Year = y
			}
		}
	}

	if p.Month == 0 {
		return Period{}, false
	}

	return p, true
}

// BurnBucket is the total approved expense for one calendar month.
type BurnBucket struct {
	Period Period
	Total  decimal.Decimal
}

// MonthlyBurn buckets approved expense transactions by calendar month,
// summing absolute amounts, ordered chronologically.
func MonthlyBurn(txs []*Transaction) []BurnBucket {
	totals := make(map[Period]decimal.Decimal)
	for _, tx := range txs {
		if tx.Status != StatusApproved || !tx.Category.IsExpense() {
			continue
		}
		p, ok := ParsePeriod(tx.Date)
		if !ok {
			continue
		}
		totals[p] = totals[p].Add(tx.Amount.Abs())
	}

	buckets := make([]BurnBucket, 0, len(totals))
	for p, total := range totals {
		buckets = append(buckets, BurnBucket{Period: p, Total: total})
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Period.before(buckets[j].Period)
	})

	return buckets
}

// AverageBurn is the mean of the trailing up-to-3 monthly burn totals, or
// DefaultMonthlyBurn when no expense history exists.
func AverageBurn(txs []*Transaction) decimal.Decimal {
	buckets := MonthlyBurn(txs)
	if len(buckets) == 0 {
		return DefaultMonthlyBurn
	}

	window := buckets
	if len(window) > TrailingBurnWindow {
		window = window[len(window)-TrailingBurnWindow:]
	}

	sum := decimal.Zero
	for _, b := range window {
		sum = sum.Add(b.Total)
	}

	return sum.Div(decimal.NewFromInt(int64(len(window))))
}

// ProjectionPoint is one step of the runway projection.
type ProjectionPoint struct {
	Period  string
	Balance decimal.Decimal
}

// ProjectRunway projects balance decay month by month from the current global
// balance: point 0 is the balance as of now, each subsequent point subtracts
// the trailing average burn, clamped at zero. Purely derived, no side effects.
func ProjectRunway(globalBalance decimal.Decimal, txs []*Transaction, now time.Time) []ProjectionPoint {
	avgBurn := AverageBurn(txs)

	// Anchor on the first of the month so stepping never skips a short month.
	anchor := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	points := make([]ProjectionPoint, 0, ProjectionMonths)
	balance := globalBalance
	for i := 0; i < ProjectionMonths; i++ {
		if i > 0 {
			balance = balance.Sub(avgBurn)
			if balance.IsNegative() {
				balance = decimal.Zero
			}
		}
		points = append(points, ProjectionPoint{
			Period:  anchor.AddDate(0, i, 0).Format("Jan 2006"),
			Balance: balance,
		})
	}

	return points
}
