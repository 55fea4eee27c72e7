package plant

import (
	"github.com/azotech/plant-optimizer/pkg/constants"
)

// solveRegion finds the profit-maximizing production plan inside one case's
// feasible region. Objective and constraints are linear, so the optimum lies
// at a vertex of the polytope: the solver enumerates candidate vertices from
// the box bounds, the case partition, the ammonia availability bound, and
// the stoichiometric/yield ceilings, then adds fuel-ceiling-binding vertices
// found by monotone bisection. Every candidate is validated against the full
// region before scoring, so an invalid combination is simply skipped.
func solveRegion(market MarketInputs, region feasibleRegion, periodDays float64, coeffs ProcessCoefficients) Solution {
	costs := UnitCostsAt(market.GasPrice, region.c, coeffs)
	best := Solution{Case: region.c, Costs: costs}
	if region.empty() {
		return best
	}

	profitOf := func(plan ProductionPlan) float64 {
		return (market.AmmoniaPrice-costs.Ammonia)*plan.SaleableAmmonia(coeffs.UreaAmmoniaRatio) +
			(market.MethanolPrice-costs.Methanol)*plan.Methanol +
			(market.UreaPrice-costs.Urea)*plan.Urea -
			coeffs.FixedCostTotal
	}

	consider := func(m, a, u float64) {
		plan := ProductionPlan{Methanol: m, Ammonia: a, Urea: u}
		if !region.contains(plan) {
			return
		}
		profit := profitOf(plan)
		if best.Feasible && profit <= best.Profit {
			return
		}
		best.Plan = plan
		best.FuelFlow = fuelFlowFor(plan, region.c, periodDays, coeffs)
		best.Profit = profit
		best.Feasible = true
	}

	type pair struct{ a, u float64 }
	var pairs []pair

	for _, m := range methanolCandidates(region) {
		aHi := region.ammoniaCeiling(m)
		aCands := []float64{0, aHi}
		// throughput where the urea capacity box meets the stoichiometric
		// ceiling, the vertex chosen when ammonia margin turns negative
		if tight := coeffs.UreaAmmoniaRatio * region.ureaBox; tight > 0 && tight < aHi {
			aCands = append(aCands, tight)
		}
		if region.c == CaseCurtailed && region.yieldReference > 0 && region.yieldReference < aHi {
			aCands = append(aCands, region.yieldReference)
		}

		for _, a := range aCands {
			uCands := []float64{0, region.ureaCeiling(a), region.ureaBox}
			for _, u := range uCands {
				consider(m, a, u)
				pairs = append(pairs, pair{a: a, u: u})

				// fuel-binding vertex along the ammonia axis, methanol and
				// urea held at their candidate values
				if aFuel, ok := region.bisectFuel(0, aHi, func(x float64) float64 {
					return fuelFlowFor(ProductionPlan{Methanol: m, Ammonia: x, Urea: u}, region.c, periodDays, coeffs)
				}); ok {
					consider(m, aFuel, u)
					pairs = append(pairs, pair{a: aFuel, u: u})
				}
			}
		}

		// fuel-binding vertex along the ray where urea tracks its ceiling as
		// ammonia grows
		if aFuel, ok := region.bisectFuel(0, aHi, func(x float64) float64 {
			plan := ProductionPlan{Methanol: m, Ammonia: x, Urea: region.ureaCeiling(x)}
			return fuelFlowFor(plan, region.c, periodDays, coeffs)
		}); ok {
			consider(m, aFuel, region.ureaCeiling(aFuel))
		}
	}

	// fuel-binding vertices along the methanol axis, ammonia and urea held
	// at previously generated candidate values
	for _, p := range pairs {
		if mFuel, ok := region.bisectFuel(region.methanolMin, region.methanolMax, func(x float64) float64 {
			return fuelFlowFor(ProductionPlan{Methanol: x, Ammonia: p.a, Urea: p.u}, region.c, periodDays, coeffs)
		}); ok {
			consider(mFuel, p.a, p.u)
		}
	}

	// fuel-binding vertices along the availability ray, ammonia tracking its
	// ceiling as methanol grows; covers the vertex where the fuel ceiling
	// binds jointly with the synergy-coupled availability bound
	ureaRules := []func(float64) float64{
		func(float64) float64 { return 0 },
		func(float64) float64 { return region.ureaBox },
		region.ureaCeiling,
	}
	for _, ureaAt := range ureaRules {
		if mFuel, ok := region.bisectFuel(region.methanolMin, region.methanolMax, func(x float64) float64 {
			a := region.ammoniaCeiling(x)
			return fuelFlowFor(ProductionPlan{Methanol: x, Ammonia: a, Urea: ureaAt(a)}, region.c, periodDays, coeffs)
		}); ok {
			a := region.ammoniaCeiling(mFuel)
			consider(mFuel, a, ureaAt(a))
		}
	}

	return best
}

// methanolCandidates returns the methanol levels worth visiting: the case
// partition bounds and, in the integrated case, the level where the synergy
// bonus fills the ammonia capacity box exactly.
func methanolCandidates(r feasibleRegion) []float64 {
	cands := []float64{r.methanolMin, r.methanolMax}
	if r.c == CaseIntegrated && r.coeffs.SynergyCoefficient > 0 {
		kink := (r.ammoniaBox - r.availabilityBase) / r.coeffs.SynergyCoefficient
		if kink > r.methanolMin && kink < r.methanolMax {
			cands = append(cands, kink)
		}
	}
	return cands
}

// bisectFuel returns the largest value in [lo, hi] whose fuel flow stays at
// or under the region's ceiling. flowAt must be monotone non-decreasing,
// which holds for every axis of the consumption model. The fixed iteration
// count resolves the interval far below the solver tolerance.
func (r feasibleRegion) bisectFuel(lo, hi float64, flowAt func(float64) float64) (float64, bool) {
	if hi < lo {
		return 0, false
	}
	if flowAt(lo) > r.maxFuelFlow+constants.FuelFlowTolerance {
		return 0, false
	}
	if flowAt(hi) <= r.maxFuelFlow {
		return hi, true
	}
	for i := 0; i < constants.BisectionIterations; i++ {
		mid := lo + (hi-lo)/2
		if flowAt(mid) <= r.maxFuelFlow {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo, true
}
