package config

import (
	"github.com/azotech/plant-optimizer/internal/plant"
	"github.com/spf13/viper"
)

// DefaultCoefficients returns the documented calibration of the plant model.
// The figures were fitted at a reference gas price of 5: at that price each
// product's unit cost equals its base constant. Gas rates are kNm3 per
// tonne, fixed consumers kNm3 per day, capacity losses tonnes per day.
func DefaultCoefficients() plant.ProcessCoefficients {
	return plant.ProcessCoefficients{
		ReferenceGasPrice: 5.0,

		UreaAmmoniaRatio:      0.58,
		SynergyCoefficient:    0.29,
		YieldCoefficient:      1.70,
		MethanolThreshold:     0.30,
		MethanolShutdownFloor: 0.0,

		AmmoniaLossIntegrated: 120.0,
		AmmoniaLossCurtailed:  35.0,

		GasPerAmmoniaIntegrated: 0.62,
		GasPerAmmoniaCurtailed:  0.66,
		GasPerMethanol:          0.90,

		AuxGasPerAmmonia:     0.12,
		AuxGasPerMethanol:    0.11,
		AuxGasPerUrea:        0.095,
		BoilerGasPerAmmonia:  0.06,
		BoilerGasPerMethanol: 0.04,
		BoilerGasPerUrea:     0.035,

		TurbineGasPerDay: 120.0,
		FlareGasPerDay:   15.0,

		FlowConversionFactor: 1.0,

		AmmoniaCostBaseIntegrated:   198.60366,
		AmmoniaCostSlopeIntegrated:  24.6,
		AmmoniaCostBaseCurtailed:    198.60366,
		AmmoniaCostSlopeCurtailed:   26.2,
		MethanolCostBaseIntegrated:  54.9,
		MethanolCostSlopeIntegrated: 10.8,
		MethanolCostBaseCurtailed:   58.3,
		MethanolCostSlopeCurtailed:  11.4,
		UreaCostBaseIntegrated:      252.4,
		UreaCostSlopeIntegrated:     16.9,
		UreaCostBaseCurtailed:       252.4,
		UreaCostSlopeCurtailed:      17.6,

		SynergyLossPenalty: 3.0,
		FixedCostTotal:     4200000.0,
	}
}

// setDefaults installs the documented defaults so configuration files only
// need to name the values they override.
func setDefaults(v *viper.Viper) {
	v.SetDefault("periodDays", 31.0)

	def := DefaultCoefficients()
	v.SetDefault("coefficients.referenceGasPrice", def.ReferenceGasPrice)
	v.SetDefault("coefficients.ureaAmmoniaRatio", def.UreaAmmoniaRatio)
	v.SetDefault("coefficients.synergyCoefficient", def.SynergyCoefficient)
	v.SetDefault("coefficients.yieldCoefficient", def.YieldCoefficient)
	v.SetDefault("coefficients.methanolThreshold", def.MethanolThreshold)
	v.SetDefault("coefficients.methanolShutdownFloor", def.MethanolShutdownFloor)
	v.SetDefault("coefficients.ammoniaLossIntegrated", def.AmmoniaLossIntegrated)
	v.SetDefault("coefficients.ammoniaLossCurtailed", def.AmmoniaLossCurtailed)
	v.SetDefault("coefficients.gasPerAmmoniaIntegrated", def.GasPerAmmoniaIntegrated)
	v.SetDefault("coefficients.gasPerAmmoniaCurtailed", def.GasPerAmmoniaCurtailed)
	v.SetDefault("coefficients.gasPerMethanol", def.GasPerMethanol)
	v.SetDefault("coefficients.auxGasPerAmmonia", def.AuxGasPerAmmonia)
	v.SetDefault("coefficients.auxGasPerMethanol", def.AuxGasPerMethanol)
	v.SetDefault("coefficients.auxGasPerUrea", def.AuxGasPerUrea)
	v.SetDefault("coefficients.boilerGasPerAmmonia", def.BoilerGasPerAmmonia)
	v.SetDefault("coefficients.boilerGasPerMethanol", def.BoilerGasPerMethanol)
	v.SetDefault("coefficients.boilerGasPerUrea", def.BoilerGasPerUrea)
	v.SetDefault("coefficients.turbineGasPerDay", def.TurbineGasPerDay)
	v.SetDefault("coefficients.flareGasPerDay", def.FlareGasPerDay)
	v.SetDefault("coefficients.flowConversionFactor", def.FlowConversionFactor)
	v.SetDefault("coefficients.ammoniaCostBaseIntegrated", def.AmmoniaCostBaseIntegrated)
	v.SetDefault("coefficients.ammoniaCostSlopeIntegrated", def.AmmoniaCostSlopeIntegrated)
	v.SetDefault("coefficients.ammoniaCostBaseCurtailed", def.AmmoniaCostBaseCurtailed)
	v.SetDefault("coefficients.ammoniaCostSlopeCurtailed", def.AmmoniaCostSlopeCurtailed)
	v.SetDefault("coefficients.methanolCostBaseIntegrated", def.MethanolCostBaseIntegrated)
	v.SetDefault("coefficients.methanolCostSlopeIntegrated", def.MethanolCostSlopeIntegrated)
	v.SetDefault("coefficients.methanolCostBaseCurtailed", def.MethanolCostBaseCurtailed)
	v.SetDefault("coefficients.methanolCostSlopeCurtailed", def.MethanolCostSlopeCurtailed)
	v.SetDefault("coefficients.ureaCostBaseIntegrated", def.UreaCostBaseIntegrated)
	v.SetDefault("coefficients.ureaCostSlopeIntegrated", def.UreaCostSlopeIntegrated)
	v.SetDefault("coefficients.ureaCostBaseCurtailed", def.UreaCostBaseCurtailed)
	v.SetDefault("coefficients.ureaCostSlopeCurtailed", def.UreaCostSlopeCurtailed)
	v.SetDefault("coefficients.synergyLossPenalty", def.SynergyLossPenalty)
	v.SetDefault("coefficients.fixedCostTotal", def.FixedCostTotal)

	v.SetDefault("sweeps.shutdown.steps", 0)
	v.SetDefault("sweeps.gas.steps", 0)
}
