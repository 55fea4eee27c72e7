package plant

import "fmt"

// ProcessCoefficients is the calibrated coefficient set describing the plant.
// It is supplied by the configuration collaborator, treated as immutable per
// evaluation, and may be reused across many evaluations.
//
// Gas rates are in kNm3 per tonne of product, fixed consumers in kNm3 per
// day, capacity losses in tonnes per day, and cost figures in currency per
// tonne at the reference gas price.
type ProcessCoefficients struct {
	// ReferenceGasPrice anchors the affine cost formulas: at this gas price
	// every product's unit cost equals its calibrated base constant.
	ReferenceGasPrice float64

	// UreaAmmoniaRatio is the stoichiometric tonnes of ammonia consumed per
	// tonne of urea produced.
	UreaAmmoniaRatio float64

	// SynergyCoefficient is the bonus ammonia capacity (tonnes) gained per
	// tonne of methanol produced in the integrated case.
	SynergyCoefficient float64

	// YieldCoefficient caps urea output as a multiple of ammonia throughput
	// in the curtailed case, where the methanol unit no longer supplies CO2.
	YieldCoefficient float64

	// MethanolThreshold is the fraction of methanol capacity separating the
	// integrated case (at or above) from the curtailed case (below).
	MethanolThreshold float64

	// MethanolShutdownFloor is the degenerate lower bound for methanol output
	// in the curtailed case, representing full shutdown of the unit.
	MethanolShutdownFloor float64

	// Capacity losses on the ammonia train per operating case.
	AmmoniaLossIntegrated float64
	AmmoniaLossCurtailed  float64

	// Feedstock gas rates. The ammonia rate is the only case-dependent term
	// of the consumption model.
	GasPerAmmoniaIntegrated float64
	GasPerAmmoniaCurtailed  float64
	GasPerMethanol          float64

	// Auxiliary and boiler gas, linear in all three outputs.
	AuxGasPerAmmonia     float64
	AuxGasPerMethanol    float64
	AuxGasPerUrea        float64
	BoilerGasPerAmmonia  float64
	BoilerGasPerMethanol float64
	BoilerGasPerUrea     float64

	// Fixed fuel consumers, scaled by period length.
	TurbineGasPerDay float64
	FlareGasPerDay   float64

	// FlowConversionFactor converts a period gas volume into the fuel
	// ceiling's flow units.
	FlowConversionFactor float64

	// Unit variable cost per product per case: base at the reference gas
	// price plus slope per unit of gas price.
	AmmoniaCostBaseIntegrated   float64
	AmmoniaCostSlopeIntegrated  float64
	AmmoniaCostBaseCurtailed    float64
	AmmoniaCostSlopeCurtailed   float64
	MethanolCostBaseIntegrated  float64
	MethanolCostSlopeIntegrated float64
	MethanolCostBaseCurtailed   float64
	MethanolCostSlopeCurtailed  float64
	UreaCostBaseIntegrated      float64
	UreaCostSlopeIntegrated     float64
	UreaCostBaseCurtailed       float64
	UreaCostSlopeCurtailed      float64

	// SynergyLossPenalty is added to the ammonia unit cost in the curtailed
	// case; urea receives the same penalty scaled by UreaAmmoniaRatio.
	SynergyLossPenalty float64

	// FixedCostTotal is the period fixed cost subtracted from gross margin.
	FixedCostTotal float64
}

// Validate reports a malformed coefficient set. A failure here is a
// configuration error, not an economic infeasibility.
func (pc ProcessCoefficients) Validate() error {
	if pc.UreaAmmoniaRatio <= 0 {
		return fmt.Errorf("ureaAmmoniaRatio must be positive, got %v", pc.UreaAmmoniaRatio)
	}
	if pc.YieldCoefficient <= 0 {
		return fmt.Errorf("yieldCoefficient must be positive, got %v", pc.YieldCoefficient)
	}
	if pc.MethanolThreshold < 0 || pc.MethanolThreshold > 1 {
		return fmt.Errorf("methanolThreshold must be within [0, 1], got %v", pc.MethanolThreshold)
	}
	if pc.MethanolShutdownFloor < 0 {
		return fmt.Errorf("methanolShutdownFloor must be non-negative, got %v", pc.MethanolShutdownFloor)
	}
	if pc.FlowConversionFactor <= 0 {
		return fmt.Errorf("flowConversionFactor must be positive, got %v", pc.FlowConversionFactor)
	}
	rates := map[string]float64{
		"ammoniaLossIntegrated":   pc.AmmoniaLossIntegrated,
		"ammoniaLossCurtailed":    pc.AmmoniaLossCurtailed,
		"gasPerAmmoniaIntegrated": pc.GasPerAmmoniaIntegrated,
		"gasPerAmmoniaCurtailed":  pc.GasPerAmmoniaCurtailed,
		"gasPerMethanol":          pc.GasPerMethanol,
		"auxGasPerAmmonia":        pc.AuxGasPerAmmonia,
		"auxGasPerMethanol":       pc.AuxGasPerMethanol,
		"auxGasPerUrea":           pc.AuxGasPerUrea,
		"boilerGasPerAmmonia":     pc.BoilerGasPerAmmonia,
		"boilerGasPerMethanol":    pc.BoilerGasPerMethanol,
		"boilerGasPerUrea":        pc.BoilerGasPerUrea,
		"turbineGasPerDay":        pc.TurbineGasPerDay,
		"flareGasPerDay":          pc.FlareGasPerDay,
	}
	for name, rate := range rates {
		if rate < 0 {
			return fmt.Errorf("%s must be non-negative, got %v", name, rate)
		}
	}
	slopes := map[string]float64{
		"ammoniaCostSlopeIntegrated":  pc.AmmoniaCostSlopeIntegrated,
		"ammoniaCostSlopeCurtailed":   pc.AmmoniaCostSlopeCurtailed,
		"methanolCostSlopeIntegrated": pc.MethanolCostSlopeIntegrated,
		"methanolCostSlopeCurtailed":  pc.MethanolCostSlopeCurtailed,
		"ureaCostSlopeIntegrated":     pc.UreaCostSlopeIntegrated,
		"ureaCostSlopeCurtailed":      pc.UreaCostSlopeCurtailed,
	}
	for name, slope := range slopes {
		if slope < 0 {
			return fmt.Errorf("%s must be non-negative to keep costs non-decreasing in gas price, got %v", name, slope)
		}
	}
	if pc.SynergyLossPenalty < 0 {
		return fmt.Errorf("synergyLossPenalty must be non-negative, got %v", pc.SynergyLossPenalty)
	}
	return nil
}
