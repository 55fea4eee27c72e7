package plant

import (
	"fmt"

	"github.com/azotech/plant-optimizer/pkg/mathutil"
	"go.uber.org/zap"
)

// Evaluate runs the case optimizer for both operating modes and returns the
// more profitable solution. Economic infeasibility is reported through the
// Solution's Feasible flag, never as an error; errors are reserved for
// invalid inputs and malformed coefficient sets. Evaluate is a pure function
// of its arguments: identical inputs produce identical Solutions.
func Evaluate(logger *zap.Logger, market MarketInputs, caps CapacityLimits, periodDays float64, coeffs ProcessCoefficients) (Solution, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := validateInputs(market, caps, periodDays); err != nil {
		return Solution{}, err
	}
	if err := coeffs.Validate(); err != nil {
		return Solution{}, fmt.Errorf("invalid coefficients: %w", err)
	}

	integrated := solveCase(market, caps, periodDays, coeffs, CaseIntegrated)
	curtailed := solveCase(market, caps, periodDays, coeffs, CaseCurtailed)

	logger.Debug("case comparison",
		zap.String("op", "plant.Evaluate"),
		zap.Bool("integratedFeasible", integrated.Feasible),
		zap.Float64("integratedProfit", integrated.Profit),
		zap.Bool("curtailedFeasible", curtailed.Feasible),
		zap.Float64("curtailedProfit", curtailed.Profit),
	)

	switch {
	case integrated.Feasible && curtailed.Feasible:
		if curtailed.Profit > integrated.Profit {
			return curtailed, nil
		}
		return integrated, nil
	case integrated.Feasible:
		return integrated, nil
	case curtailed.Feasible:
		return curtailed, nil
	default:
		return Solution{}, nil
	}
}

// EvaluateShutdown solves the curtailed case with methanol output pinned at
// the shutdown floor. Its profit is the baseline the shutdown sweep compares
// running profit against. The methanol price plays no role at the floor, so
// only the ammonia, urea, and gas prices are taken.
func EvaluateShutdown(logger *zap.Logger, ammoniaPrice, ureaPrice, gasPrice float64, caps CapacityLimits, periodDays float64, coeffs ProcessCoefficients) (Solution, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	market := MarketInputs{AmmoniaPrice: ammoniaPrice, UreaPrice: ureaPrice, GasPrice: gasPrice}
	if err := validateInputs(market, caps, periodDays); err != nil {
		return Solution{}, err
	}
	if err := coeffs.Validate(); err != nil {
		return Solution{}, fmt.Errorf("invalid coefficients: %w", err)
	}

	region := newFeasibleRegion(CaseCurtailed, caps, periodDays, coeffs)
	region.pinMethanol(mathutil.Clamp(coeffs.MethanolShutdownFloor, region.methanolMin, region.methanolMax))

	sol := solveRegion(market, region, periodDays, coeffs)
	if !sol.Feasible {
		logger.Debug("shutdown case infeasible", zap.String("op", "plant.EvaluateShutdown"))
		return Solution{}, nil
	}
	return sol, nil
}

func solveCase(market MarketInputs, caps CapacityLimits, periodDays float64, coeffs ProcessCoefficients, c Case) Solution {
	region := newFeasibleRegion(c, caps, periodDays, coeffs)
	return solveRegion(market, region, periodDays, coeffs)
}

func validateInputs(market MarketInputs, caps CapacityLimits, periodDays float64) error {
	if periodDays <= 0 {
		return fmt.Errorf("period length must be positive, got %v days", periodDays)
	}
	if market.AmmoniaPrice < 0 || market.MethanolPrice < 0 || market.UreaPrice < 0 {
		return fmt.Errorf("product prices must be non-negative")
	}
	if market.GasPrice < 0 {
		return fmt.Errorf("gas price must be non-negative, got %v", market.GasPrice)
	}
	if caps.AmmoniaPerDay <= 0 || caps.MethanolPerDay <= 0 || caps.UreaPerDay <= 0 {
		return fmt.Errorf("daily capacities must be positive")
	}
	if caps.MaxFuelFlow <= 0 {
		return fmt.Errorf("maximum fuel flow must be positive, got %v", caps.MaxFuelFlow)
	}
	return nil
}
