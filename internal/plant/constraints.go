package plant

import (
	"github.com/azotech/plant-optimizer/pkg/constants"
	"github.com/azotech/plant-optimizer/pkg/mathutil"
)

// feasibleRegion captures the linear feasible set of one operating case over
// one period: box bounds per variable, the case partition on methanol,
// ammonia availability with the mode's capacity loss (and synergy bonus in
// the integrated case), the stoichiometric and yield ceilings on urea, and
// the fuel-flow ceiling.
type feasibleRegion struct {
	c          Case
	coeffs     ProcessCoefficients
	periodDays float64

	methanolMin float64
	methanolMax float64
	ammoniaBox  float64
	ureaBox     float64

	// availabilityBase is ammonia capacity minus the mode's capacity loss,
	// both over the full period; the integrated case adds synergy·methanol.
	availabilityBase float64

	// yieldReference is the ammonia throughput at which the curtailed case's
	// yield ceiling meets the urea capacity box.
	yieldReference float64

	maxFuelFlow float64
}

func newFeasibleRegion(c Case, caps CapacityLimits, periodDays float64, coeffs ProcessCoefficients) feasibleRegion {
	r := feasibleRegion{
		c:           c,
		coeffs:      coeffs,
		periodDays:  periodDays,
		ammoniaBox:  caps.AmmoniaPerDay * periodDays,
		ureaBox:     caps.UreaPerDay * periodDays,
		maxFuelFlow: caps.MaxFuelFlow,
	}

	methanolBox := caps.MethanolPerDay * periodDays
	partition := coeffs.MethanolThreshold * methanolBox

	switch c {
	case CaseIntegrated:
		r.methanolMin = partition
		r.methanolMax = methanolBox
		r.availabilityBase = r.ammoniaBox - coeffs.AmmoniaLossIntegrated*periodDays
	default:
		r.methanolMin = coeffs.MethanolShutdownFloor
		r.methanolMax = mathutil.Max(partition-constants.PartitionEpsilon, r.methanolMin)
		r.availabilityBase = r.ammoniaBox - coeffs.AmmoniaLossCurtailed*periodDays
		r.yieldReference = r.ureaBox / coeffs.YieldCoefficient
	}

	return r
}

// pinMethanol fixes methanol output at a single value, used for the
// full-shutdown evaluation.
func (r *feasibleRegion) pinMethanol(value float64) {
	r.methanolMin = value
	r.methanolMax = value
}

// ammoniaCeiling returns the maximum gross ammonia throughput available at
// the given methanol output.
func (r feasibleRegion) ammoniaCeiling(methanol float64) float64 {
	available := r.availabilityBase
	if r.c == CaseIntegrated {
		available += r.coeffs.SynergyCoefficient * methanol
	}
	return mathutil.Min(r.ammoniaBox, available)
}

// ureaCeiling returns the maximum urea output at the given ammonia
// throughput. Both cases are limited by the urea capacity box and by the
// stoichiometric requirement that saleable ammonia stays non-negative; the
// curtailed case additionally carries the CO2-linked yield ceiling below the
// reference throughput (above it the capacity box is the binding bound).
func (r feasibleRegion) ureaCeiling(ammonia float64) float64 {
	ceiling := mathutil.Min(r.ureaBox, ammonia/r.coeffs.UreaAmmoniaRatio)
	if r.c == CaseCurtailed && ammonia < r.yieldReference {
		ceiling = mathutil.Min(ceiling, r.coeffs.YieldCoefficient*ammonia)
	}
	return ceiling
}

// contains reports whether a plan satisfies every constraint of the region.
// Violations smaller than the solver tolerances are accepted so that
// floating-point round-off cannot produce spurious infeasibility.
func (r feasibleRegion) contains(plan ProductionPlan) bool {
	tol := constants.ProductionTolerance

	if plan.Methanol < r.methanolMin-tol || plan.Methanol > r.methanolMax+tol {
		return false
	}
	if plan.Ammonia < -tol || plan.Ammonia > r.ammoniaCeiling(plan.Methanol)+tol {
		return false
	}
	if plan.Urea < -tol || plan.Urea > r.ureaCeiling(plan.Ammonia)+tol {
		return false
	}
	if plan.SaleableAmmonia(r.coeffs.UreaAmmoniaRatio) < -tol {
		return false
	}

	flow := fuelFlowFor(plan, r.c, r.periodDays, r.coeffs)
	return flow <= r.maxFuelFlow+constants.FuelFlowTolerance
}

// empty reports whether the region cannot hold any plan at all.
func (r feasibleRegion) empty() bool {
	return r.methanolMax < r.methanolMin-constants.ProductionTolerance
}
