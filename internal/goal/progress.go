package goal

import "github.com/shopspring/decimal"

// percentScale matches the progress column, so IsCompleted agrees with the stored percent.
const percentScale int32 = 4

var hundred = decimal.NewFromInt(100)

// Progress is the derived completion state of a goal.
type Progress struct {
	Percent     decimal.Decimal
	IsCompleted bool
}

// Recompute returns current/target as a percentage rounded to four places and
// clamped to [0, 100]. A non-positive target yields zero progress.
func Recompute(target, current decimal.Decimal) Progress {
	if !target.IsPositive() {
		return Progress{Percent: decimal.Zero}
	}

	pct := current.Div(target).Mul(hundred).Round(percentScale)

	switch {
	case pct.LessThan(decimal.Zero):
		pct = decimal.Zero
	case pct.GreaterThan(hundred):
		pct = hundred
	}

	return Progress{
		Percent:     pct,
		IsCompleted: pct.GreaterThanOrEqual(hundred),
	}
}

// apply writes the derived fields onto g.
func (p Progress) apply(g *Goal) {
	g.Progress = p.Percent
	g.IsCompleted = p.IsCompleted
}
