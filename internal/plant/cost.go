package plant

// UnitCostsAt returns the per-tonne variable cost of each product at the
// given gas price for one operating case. Each cost is affine in the gas
// price: the calibrated base constant plus a non-negative slope times the
// distance from the reference gas price, so costs are continuous and
// non-decreasing in gas price and reproduce the base constants exactly at
// the reference price.
//
// In the curtailed case the methanol unit no longer feeds the ammonia/urea
// train; the lost synergy shows up as a fixed penalty on the ammonia unit
// cost and, scaled by the stoichiometric ratio, on the urea unit cost.
func UnitCostsAt(gasPrice float64, c Case, coeffs ProcessCoefficients) UnitCosts {
	delta := gasPrice - coeffs.ReferenceGasPrice

	if c == CaseIntegrated {
		return UnitCosts{
			Ammonia:  coeffs.AmmoniaCostBaseIntegrated + coeffs.AmmoniaCostSlopeIntegrated*delta,
			Methanol: coeffs.MethanolCostBaseIntegrated + coeffs.MethanolCostSlopeIntegrated*delta,
			Urea:     coeffs.UreaCostBaseIntegrated + coeffs.UreaCostSlopeIntegrated*delta,
		}
	}

	return UnitCosts{
		Ammonia:  coeffs.AmmoniaCostBaseCurtailed + coeffs.AmmoniaCostSlopeCurtailed*delta + coeffs.SynergyLossPenalty,
		Methanol: coeffs.MethanolCostBaseCurtailed + coeffs.MethanolCostSlopeCurtailed*delta,
		Urea:     coeffs.UreaCostBaseCurtailed + coeffs.UreaCostSlopeCurtailed*delta + coeffs.UreaAmmoniaRatio*coeffs.SynergyLossPenalty,
	}
}
