package investment

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

const yearLength = 365 * 24 * time.Hour

// maxAnnualized is the first magnitude the annualized_return column cannot hold.
// Very short holding periods compound past it and are reported as not computable.
const maxAnnualized = 1e12

var hundred = decimal.NewFromInt(100)

// Performance is the return of a position. AnnualizedReturn is nil when it cannot be
// computed: unknown acquisition date, no elapsed time, a non-positive initial value,
// or a holding period so short that compounding runs out of range.
type Performance struct {
	AbsoluteReturn   decimal.Decimal
	PercentageReturn decimal.Decimal
	AnnualizedReturn *decimal.Decimal
}

// Recompute derives the performance of a position valued at current that cost initial.
// Percentages are expressed in points (12.5 means 12.5%).
func Recompute(initial, current decimal.Decimal, acquired *time.Time, now time.Time) Performance {
	abs := current.Sub(initial)

	perf := Performance{
		AbsoluteReturn:   abs,
		PercentageReturn: decimal.Zero,
	}

	if !initial.IsPositive() {
		return perf
	}

	perf.PercentageReturn = abs.Div(initial).Mul(hundred)

	if acquired == nil {
		return perf
	}

	years := float64(now.Sub(*acquired)) / float64(yearLength)
	if years <= 0 {
		return perf
	}

	ratio := current.Div(initial).InexactFloat64()

	cagr := (math.Pow(ratio, 1/years) - 1) * 100
	if math.IsNaN(cagr) || math.IsInf(cagr, 0) || math.Abs(cagr) >= maxAnnualized {
		return perf
	}

	annualized := decimal.NewFromFloat(cagr)
	perf.AnnualizedReturn = &annualized

	return perf
}
