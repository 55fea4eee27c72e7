package plant

import (
	"testing"

	"github.com/azotech/plant-optimizer/pkg/testutil"
)

func TestFuelVolumeFixedLoadOnly(t *testing.T) {
	coeffs := testCoefficients()
	idle := ProductionPlan{}

	// With nothing produced only the turbine and flare burn gas.
	volume := FuelVolume(idle, CaseCurtailed, testPeriodDays, coeffs)
	testutil.AssertWithin(t, "idle fuel volume", volume, (120.0+15.0)*31.0, 1e-9)

	flow := FuelFlow(volume, testPeriodDays, coeffs)
	testutil.AssertWithin(t, "idle fuel flow", flow, 5.625, 1e-9)
}

func TestFuelVolumeComposition(t *testing.T) {
	coeffs := testCoefficients()
	plan := ProductionPlan{Methanol: 1000.0, Ammonia: 1000.0, Urea: 1000.0}

	tests := []struct {
		name string
		c    Case
		want float64
	}{
		// feedstock + methanol feed + aux + boiler + fixed load
		{name: "integrated", c: CaseIntegrated, want: 620.0 + 900.0 + 325.0 + 135.0 + 4185.0},
		{name: "curtailed", c: CaseCurtailed, want: 660.0 + 900.0 + 325.0 + 135.0 + 4185.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FuelVolume(plan, tt.c, testPeriodDays, coeffs)
			testutil.AssertWithin(t, "fuel volume", got, tt.want, 1e-9)
		})
	}
}

func TestFuelVolumeMonotone(t *testing.T) {
	coeffs := testCoefficients()
	base := ProductionPlan{Methanol: 5000.0, Ammonia: 8000.0, Urea: 12000.0}

	for _, c := range []Case{CaseIntegrated, CaseCurtailed} {
		baseVolume := FuelVolume(base, c, testPeriodDays, coeffs)

		bumps := []struct {
			name string
			plan ProductionPlan
		}{
			{name: "methanol", plan: ProductionPlan{Methanol: base.Methanol + 100, Ammonia: base.Ammonia, Urea: base.Urea}},
			{name: "ammonia", plan: ProductionPlan{Methanol: base.Methanol, Ammonia: base.Ammonia + 100, Urea: base.Urea}},
			{name: "urea", plan: ProductionPlan{Methanol: base.Methanol, Ammonia: base.Ammonia, Urea: base.Urea + 100}},
		}
		for _, bump := range bumps {
			if FuelVolume(bump.plan, c, testPeriodDays, coeffs) < baseVolume {
				t.Errorf("case %s: fuel volume decreased when %s output grew", c, bump.name)
			}
		}
	}
}

func TestFuelFlowScalesWithConversionFactor(t *testing.T) {
	coeffs := testCoefficients()
	coeffs.FlowConversionFactor = 2.0

	flow := FuelFlow(7440.0, testPeriodDays, coeffs)
	testutil.AssertWithin(t, "converted fuel flow", flow, 7440.0*2.0/(24.0*31.0), 1e-9)
}
