package plant

import (
	"testing"

	"github.com/azotech/plant-optimizer/pkg/testutil"
)

func TestUnitCostsAtReferencePrice(t *testing.T) {
	coeffs := testCoefficients()

	integrated := UnitCostsAt(coeffs.ReferenceGasPrice, CaseIntegrated, coeffs)
	testutil.AssertWithin(t, "integrated ammonia cost", integrated.Ammonia, 198.60366, 1e-9)
	testutil.AssertWithin(t, "integrated methanol cost", integrated.Methanol, 54.9, 1e-9)
	testutil.AssertWithin(t, "integrated urea cost", integrated.Urea, 252.4, 1e-9)

	// At the reference price the curtailed costs differ from the bases only
	// by the synergy-loss penalty and its stoichiometric share.
	curtailed := UnitCostsAt(coeffs.ReferenceGasPrice, CaseCurtailed, coeffs)
	testutil.AssertWithin(t, "curtailed ammonia cost", curtailed.Ammonia, 198.60366+3.0, 1e-9)
	testutil.AssertWithin(t, "curtailed methanol cost", curtailed.Methanol, 58.3, 1e-9)
	testutil.AssertWithin(t, "curtailed urea cost", curtailed.Urea, 252.4+0.58*3.0, 1e-9)
}

func TestUnitCostsGasPriceResponse(t *testing.T) {
	coeffs := testCoefficients()

	tests := []struct {
		name     string
		gasPrice float64
		c        Case
		want     UnitCosts
	}{
		{
			name:     "integrated two units above reference",
			gasPrice: 7.0,
			c:        CaseIntegrated,
			want:     UnitCosts{Ammonia: 198.60366 + 2*24.6, Methanol: 54.9 + 2*10.8, Urea: 252.4 + 2*16.9},
		},
		{
			name:     "integrated one unit below reference",
			gasPrice: 4.0,
			c:        CaseIntegrated,
			want:     UnitCosts{Ammonia: 198.60366 - 24.6, Methanol: 54.9 - 10.8, Urea: 252.4 - 16.9},
		},
		{
			name:     "curtailed two units above reference",
			gasPrice: 7.0,
			c:        CaseCurtailed,
			want:     UnitCosts{Ammonia: 198.60366 + 2*26.2 + 3.0, Methanol: 58.3 + 2*11.4, Urea: 252.4 + 2*17.6 + 0.58*3.0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := UnitCostsAt(tt.gasPrice, tt.c, coeffs)
			testutil.AssertWithin(t, "ammonia cost", got.Ammonia, tt.want.Ammonia, 1e-9)
			testutil.AssertWithin(t, "methanol cost", got.Methanol, tt.want.Methanol, 1e-9)
			testutil.AssertWithin(t, "urea cost", got.Urea, tt.want.Urea, 1e-9)
		})
	}
}

func TestUnitCostsMonotoneInGasPrice(t *testing.T) {
	coeffs := testCoefficients()

	for _, c := range []Case{CaseIntegrated, CaseCurtailed} {
		prev := UnitCostsAt(2.0, c, coeffs)
		for gas := 3.0; gas <= 10.0; gas += 1.0 {
			next := UnitCostsAt(gas, c, coeffs)
			if next.Ammonia < prev.Ammonia || next.Methanol < prev.Methanol || next.Urea < prev.Urea {
				t.Errorf("case %s: unit costs decreased between gas prices %.1f and %.1f", c, gas-1, gas)
			}
			prev = next
		}
	}
}
