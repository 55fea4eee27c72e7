package plant

import "github.com/azotech/plant-optimizer/pkg/constants"

// FuelVolume returns the total gas volume (kNm3) consumed over the period by
// a production plan: feedstock gas for ammonia and methanol, auxiliary and
// boiler gas linear in all three outputs, and the fixed turbine and flare
// load scaled by period length. The ammonia feedstock rate is the only
// case-dependent term. The result is monotone non-decreasing in every
// production variable.
func FuelVolume(plan ProductionPlan, c Case, periodDays float64, coeffs ProcessCoefficients) float64 {
	ammoniaFeed := coeffs.GasPerAmmoniaIntegrated
	if c == CaseCurtailed {
		ammoniaFeed = coeffs.GasPerAmmoniaCurtailed
	}

	volume := ammoniaFeed * plan.Ammonia
	volume += coeffs.GasPerMethanol * plan.Methanol
	volume += coeffs.AuxGasPerAmmonia*plan.Ammonia +
		coeffs.AuxGasPerMethanol*plan.Methanol +
		coeffs.AuxGasPerUrea*plan.Urea
	volume += coeffs.BoilerGasPerAmmonia*plan.Ammonia +
		coeffs.BoilerGasPerMethanol*plan.Methanol +
		coeffs.BoilerGasPerUrea*plan.Urea
	volume += (coeffs.TurbineGasPerDay + coeffs.FlareGasPerDay) * periodDays

	return volume
}

// FuelFlow normalizes a period gas volume into the hourly flow rate compared
// against the supply ceiling.
func FuelFlow(volume, periodDays float64, coeffs ProcessCoefficients) float64 {
	return volume * coeffs.FlowConversionFactor / (constants.HoursPerDay * periodDays)
}

// fuelFlowFor is a convenience combining FuelVolume and FuelFlow.
func fuelFlowFor(plan ProductionPlan, c Case, periodDays float64, coeffs ProcessCoefficients) float64 {
	return FuelFlow(FuelVolume(plan, c, periodDays, coeffs), periodDays, coeffs)
}
