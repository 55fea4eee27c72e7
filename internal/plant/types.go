// Package plant implements the profit-maximizing dispatch engine for a
// gas-fed plant jointly producing ammonia, methanol, and urea. The engine
// picks a discrete operating case and continuous production levels that
// maximize net profit for one production period, subject to capacity,
// fuel-supply, and cross-product yield constraints.
package plant

// Case identifies one of the two mutually exclusive operating modes.
type Case string

const (
	// CaseIntegrated runs the methanol unit at or above its threshold share
	// of capacity, feeding purge gas back into the ammonia train.
	CaseIntegrated Case = "integrated"

	// CaseCurtailed runs the methanol unit below threshold, down to full
	// shutdown of the methanol unit.
	CaseCurtailed Case = "curtailed"
)

// MarketInputs holds the prices for one evaluation. Product prices are in
// currency per tonne, the gas price in currency per fuel unit.
type MarketInputs struct {
	AmmoniaPrice  float64
	MethanolPrice float64
	UreaPrice     float64
	GasPrice      float64
}

// CapacityLimits holds the nameplate daily output limits for each product and
// the maximum fuel flow rate the gas supplier allows.
type CapacityLimits struct {
	AmmoniaPerDay  float64
	MethanolPerDay float64
	UreaPerDay     float64
	MaxFuelFlow    float64
}

// ProductionPlan holds the decision variables for one period: methanol
// output, gross ammonia throughput, and saleable urea output, all in tonnes
// over the full period.
type ProductionPlan struct {
	Methanol float64
	Ammonia  float64
	Urea     float64
}

// SaleableAmmonia returns the ammonia left for the market after the urea
// train consumed its stoichiometric share of the gross throughput.
func (p ProductionPlan) SaleableAmmonia(ratio float64) float64 {
	return p.Ammonia - ratio*p.Urea
}

// UnitCosts holds the per-tonne variable cost of each product.
type UnitCosts struct {
	Ammonia  float64
	Methanol float64
	Urea     float64
}

// Solution is the result of one evaluation. When Feasible is false no vertex
// of either case satisfied all constraints and the remaining fields are zero.
type Solution struct {
	Case     Case
	Plan     ProductionPlan
	FuelFlow float64
	Profit   float64
	Costs    UnitCosts
	Feasible bool
}
