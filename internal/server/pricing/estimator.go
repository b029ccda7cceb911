// Package pricing implements the external price simulation: a pure
// estimator producing a varied price and a Syncer that persists estimates
// for one item (row-locked) or for the whole table (batched).
package pricing

import (
	"math/rand/v2"

	"github.com/shopspring/decimal"
)

// maxVariation bounds the simulated market movement at ±10%.
const maxVariation = 0.10

// SimulateExternalPrice returns a simulated external price for base: a
// variation drawn uniformly from [-0.10, +0.10] is applied and the result
// is rounded to two decimal places, halves rounding away from zero.
func SimulateExternalPrice(base decimal.Decimal) decimal.Decimal {
	variation := rand.Float64()*2*maxVariation - maxVariation
	return applyVariation(base, variation)
}

func applyVariation(base decimal.Decimal, variation float64) decimal.Decimal {
	factor := decimal.NewFromFloat(1 + variation)
	return base.Mul(factor).Round(2)
}
