// Package scenario builds profit curves on top of repeated engine
// evaluations: the shutdown-crossover sweep over methanol prices and the
// gas-price sensitivity sweep. Each grid point is an independent evaluation
// with one input varied and everything else held fixed.
package scenario

import (
	"fmt"

	"github.com/azotech/plant-optimizer/internal/plant"
	"github.com/azotech/plant-optimizer/pkg/constants"
	"go.uber.org/zap"
)

// PriceRange describes a swept price grid. Steps is the number of intervals;
// a non-positive value falls back to the default grid resolution.
type PriceRange struct {
	Min   float64
	Max   float64
	Steps int
}

// Validate rejects an unusable range.
func (r PriceRange) Validate() error {
	if r.Min < 0 {
		return fmt.Errorf("sweep minimum price must be non-negative, got %v", r.Min)
	}
	if r.Max <= r.Min {
		return fmt.Errorf("sweep maximum price %v must exceed minimum %v", r.Max, r.Min)
	}
	return nil
}

func (r PriceRange) grid() []float64 {
	steps := r.Steps
	if steps <= 0 {
		steps = constants.DefaultSweepSteps
	}
	points := make([]float64, steps+1)
	width := (r.Max - r.Min) / float64(steps)
	for i := 0; i <= steps; i++ {
		points[i] = r.Min + float64(i)*width
	}
	return points
}

// ShutdownPoint is one grid point of the shutdown sweep.
type ShutdownPoint struct {
	MethanolPrice  float64
	RunningProfit  float64
	ShutdownProfit float64
}

// ShutdownResult holds the full shutdown sweep: the profit curve, the
// constant shutdown baseline, and the crossover price when one exists inside
// the swept range. CrossoverPrice is nil when running profit stays on one
// side of the baseline across the whole grid.
type ShutdownResult struct {
	Points         []ShutdownPoint
	ShutdownProfit float64
	CrossoverPrice *float64
	Feasible       bool
}

// ShutdownSweep computes the running-profit curve across a grid of methanol
// prices and locates the price at which running the methanol unit becomes
// more profitable than keeping it shut down.
func ShutdownSweep(logger *zap.Logger, ammoniaPrice, ureaPrice, gasPrice float64, caps plant.CapacityLimits, periodDays float64, coeffs plant.ProcessCoefficients, prices PriceRange) (ShutdownResult, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := prices.Validate(); err != nil {
		return ShutdownResult{}, err
	}

	shutdown, err := plant.EvaluateShutdown(logger, ammoniaPrice, ureaPrice, gasPrice, caps, periodDays, coeffs)
	if err != nil {
		return ShutdownResult{}, err
	}
	if !shutdown.Feasible {
		logger.Warn("shutdown baseline infeasible, no crossover can be reported",
			zap.String("op", "scenario.ShutdownSweep"),
		)
		return ShutdownResult{}, nil
	}

	result := ShutdownResult{ShutdownProfit: shutdown.Profit, Feasible: true}

	for _, price := range prices.grid() {
		market := plant.MarketInputs{
			AmmoniaPrice:  ammoniaPrice,
			MethanolPrice: price,
			UreaPrice:     ureaPrice,
			GasPrice:      gasPrice,
		}
		sol, err := plant.Evaluate(logger, market, caps, periodDays, coeffs)
		if err != nil {
			return ShutdownResult{}, err
		}
		running := shutdown.Profit
		if sol.Feasible {
			running = sol.Profit
		}
		result.Points = append(result.Points, ShutdownPoint{
			MethanolPrice:  price,
			RunningProfit:  running,
			ShutdownProfit: shutdown.Profit,
		})
	}

	result.CrossoverPrice = locateCrossover(result.Points)
	if result.CrossoverPrice != nil {
		logger.Debug("shutdown crossover located",
			zap.String("op", "scenario.ShutdownSweep"),
			zap.Float64("methanolPrice", *result.CrossoverPrice),
		)
	}
	return result, nil
}

// locateCrossover interpolates between the last grid point where running
// profit stays at or under the shutdown baseline and the first point where
// it rises above.
func locateCrossover(points []ShutdownPoint) *float64 {
	for i := 0; i+1 < len(points); i++ {
		d0 := points[i].RunningProfit - points[i].ShutdownProfit
		d1 := points[i+1].RunningProfit - points[i+1].ShutdownProfit
		if d0 <= constants.ProfitTolerance && d1 > constants.ProfitTolerance {
			x0, x1 := points[i].MethanolPrice, points[i+1].MethanolPrice
			crossover := x0 + (x1-x0)*(-d0)/(d1-d0)
			return &crossover
		}
	}
	return nil
}

// GasPoint is one grid point of the gas-price sensitivity sweep.
type GasPoint struct {
	GasPrice float64
	Profit   float64
	Feasible bool
}

// GasSensitivity computes running profit at the current market prices across
// a grid of gas prices. The resulting curve is non-increasing whenever the
// coefficient slopes are non-negative.
func GasSensitivity(logger *zap.Logger, market plant.MarketInputs, caps plant.CapacityLimits, periodDays float64, coeffs plant.ProcessCoefficients, prices PriceRange) ([]GasPoint, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := prices.Validate(); err != nil {
		return nil, err
	}

	var points []GasPoint
	for _, price := range prices.grid() {
		swept := market
		swept.GasPrice = price
		sol, err := plant.Evaluate(logger, swept, caps, periodDays, coeffs)
		if err != nil {
			return nil, err
		}
		points = append(points, GasPoint{GasPrice: price, Profit: sol.Profit, Feasible: sol.Feasible})
	}
	return points, nil
}
