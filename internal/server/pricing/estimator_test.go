package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulateExternalPrice_Bounds(t *testing.T) {
	bases := []string{"0.00", "0.01", "1.00", "10.50", "999.99"}

	// rounding to two places can push the result at most half a cent
	// past the raw ±10% envelope
	tolerance := decimal.NewFromFloat(0.01)

	for _, b := range bases {
		base := decimal.RequireFromString(b)
		low := base.Mul(decimal.NewFromFloat(0.9)).Sub(tolerance)
		high := base.Mul(decimal.NewFromFloat(1.1)).Add(tolerance)

		for i := 0; i < 1000; i++ {
			got := SimulateExternalPrice(base)

			require.Truef(t, got.Cmp(low) >= 0, "base %s: %s below lower bound %s", base, got, low)
			require.Truef(t, got.Cmp(high) <= 0, "base %s: %s above upper bound %s", base, got, high)
			require.Truef(t, got.Equal(got.Round(2)), "base %s: %s not a 2dp value", base, got)
		}
	}
}

func TestSimulateExternalPrice_NeverNegative(t *testing.T) {
	base := decimal.RequireFromString("0.05")
	for i := 0; i < 1000; i++ {
		got := SimulateExternalPrice(base)
		assert.False(t, got.IsNegative(), "got negative price %s", got)
	}
}

func TestApplyVariation_RoundsHalfUp(t *testing.T) {
	tests := []struct {
		name      string
		base      string
		variation float64
		want      string
	}{
		// 100.00 * 1.005 = 100.50, not 100.49
		{name: "half percent on 100", base: "100.00", variation: 0.005, want: "100.5"},
		// 0.50 * 1.01 = 0.505; half-up gives 0.51, half-even would give 0.50
		{name: "tie rounds away from zero", base: "0.50", variation: 0.01, want: "0.51"},
		{name: "zero base stays zero", base: "0.00", variation: -0.1, want: "0"},
		{name: "no variation", base: "10.00", variation: 0, want: "10"},
		{name: "max negative variation", base: "100.00", variation: -0.1, want: "90"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			base := decimal.RequireFromString(tc.base)
			got := applyVariation(base, tc.variation)
			assert.True(t, got.Equal(decimal.RequireFromString(tc.want)),
				"applyVariation(%s, %v) = %s, want %s", tc.base, tc.variation, got, tc.want)
		})
	}
}
