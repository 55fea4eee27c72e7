// Package output provides utilities for formatting and displaying evaluation
// results and sweep curves.
package output

import (
	"fmt"

	"github.com/azotech/plant-optimizer/internal/plant"
	"github.com/azotech/plant-optimizer/internal/scenario"
	"github.com/azotech/plant-optimizer/pkg/format"
)

// PrettySolution outputs a human-readable rather than machine-readable view
// of one evaluation.
func PrettySolution(sol plant.Solution, ratio float64) {
	if !sol.Feasible {
		fmt.Printf("--- Result: INFEASIBLE ---\n")
		fmt.Printf("No production plan satisfies the capacity, fuel, and yield constraints.\n")
		return
	}

	fmt.Printf("--- Result for case %s ---\n", sol.Case)
	fmt.Printf("Product          | Output        | Unit cost\n")
	fmt.Printf("________         | _____________ | _________\n")
	fmt.Printf("Methanol         | %s | %s\n", format.Quantity(sol.Plan.Methanol), format.Currency(sol.Costs.Methanol))
	fmt.Printf("Ammonia (gross)  | %s | %s\n", format.Quantity(sol.Plan.Ammonia), format.Currency(sol.Costs.Ammonia))
	fmt.Printf("Ammonia (sale)   | %s |\n", format.Quantity(sol.Plan.SaleableAmmonia(ratio)))
	fmt.Printf("Urea             | %s | %s\n", format.Quantity(sol.Plan.Urea), format.Currency(sol.Costs.Urea))
	fmt.Printf("\n")
	fmt.Printf("Fuel flow: %s\n", format.Flow(sol.FuelFlow))
	fmt.Printf("Profit:    %s\n", format.Currency(sol.Profit))
}

// PrettyShutdownSweep outputs the shutdown sweep as a table plus the
// crossover price when one was found.
func PrettyShutdownSweep(result scenario.ShutdownResult) {
	if !result.Feasible {
		fmt.Printf("--- Shutdown sweep: baseline infeasible ---\n")
		return
	}

	fmt.Printf("--- Shutdown sweep ---\n")
	fmt.Printf("Methanol price | Running profit  | Shutdown profit\n")
	fmt.Printf("______________ | _______________ | _______________\n")
	for _, point := range result.Points {
		fmt.Printf("%14.2f | %15s | %15s\n",
			point.MethanolPrice,
			format.Currency(point.RunningProfit),
			format.Currency(point.ShutdownProfit))
	}
	if result.CrossoverPrice != nil {
		fmt.Printf("\nCrossover price: %.2f\n", *result.CrossoverPrice)
	} else {
		fmt.Printf("\nNo crossover within the swept range.\n")
	}
}

// PrettyGasSweep outputs the gas sensitivity sweep as a table.
func PrettyGasSweep(points []scenario.GasPoint) {
	fmt.Printf("--- Gas price sensitivity ---\n")
	fmt.Printf("Gas price | Profit\n")
	fmt.Printf("_________ | ______\n")
	for _, point := range points {
		if !point.Feasible {
			fmt.Printf("%9.2f | infeasible\n", point.GasPrice)
			continue
		}
		fmt.Printf("%9.2f | %s\n", point.GasPrice, format.Currency(point.Profit))
	}
}

// CsvSolution outputs one evaluation in comma-separated value format.
func CsvSolution(sol plant.Solution, ratio float64) {
	fmt.Printf(`"case","feasible","methanol","ammoniaGross","ammoniaSale","urea","fuelFlow","profit"` + "\n")
	if !sol.Feasible {
		fmt.Printf(`"","false","","","","","",""` + "\n")
		return
	}
	fmt.Printf(`"%s","true","%.3f","%.3f","%.3f","%.3f","%.4f","%.2f"`+"\n",
		sol.Case, sol.Plan.Methanol, sol.Plan.Ammonia, sol.Plan.SaleableAmmonia(ratio),
		sol.Plan.Urea, sol.FuelFlow, sol.Profit)
}

// CsvShutdownSweep outputs the shutdown sweep in comma-separated value format.
func CsvShutdownSweep(result scenario.ShutdownResult) {
	fmt.Printf(`"methanolPrice","runningProfit","shutdownProfit"` + "\n")
	for _, point := range result.Points {
		fmt.Printf(`"%.2f","%.2f","%.2f"`+"\n", point.MethanolPrice, point.RunningProfit, point.ShutdownProfit)
	}
	if result.CrossoverPrice != nil {
		fmt.Printf(`"crossoverPrice","%.4f"`+"\n", *result.CrossoverPrice)
	}
}

// CsvGasSweep outputs the gas sensitivity sweep in comma-separated value format.
func CsvGasSweep(points []scenario.GasPoint) {
	fmt.Printf(`"gasPrice","profit","feasible"` + "\n")
	for _, point := range points {
		feasible := "true"
		profit := fmt.Sprintf("%.2f", point.Profit)
		if !point.Feasible {
			feasible = "false"
			profit = ""
		}
		fmt.Printf(`"%.2f","%s","%s"`+"\n", point.GasPrice, profit, feasible)
	}
}
