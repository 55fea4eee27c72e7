package plant

// Shared fixtures for the plant package tests. The coefficient set mirrors
// the documented calibration; it is restated here because the config
// package that normally supplies it imports this package.

func testCoefficients() ProcessCoefficients {
	return ProcessCoefficients{
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

func testCapacities() CapacityLimits {
	return CapacityLimits{
		AmmoniaPerDay:  1320.0,
		MethanolPerDay: 1250.0,
		UreaPerDay:     2150.0,
		MaxFuelFlow:    128.0,
	}
}

func testMarket() MarketInputs {
	return MarketInputs{
		AmmoniaPrice:  325.0,
		MethanolPrice: 80.0,
		UreaPrice:     400.0,
		GasPrice:      5.0,
	}
}

const testPeriodDays = 31.0
