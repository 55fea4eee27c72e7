// Package validation provides configuration validation utilities.
package validation

import (
	"fmt"

	"github.com/azotech/plant-optimizer/internal/plant"
	"github.com/azotech/plant-optimizer/pkg/constants"
)

// NormalizeOutputFormat resolves the requested output format, defaulting an
// empty request to the pretty renderer.
func NormalizeOutputFormat(format string) (string, error) {
	switch format {
	case "":
		return constants.OutputFormatPretty, nil
	case constants.OutputFormatPretty, constants.OutputFormatCSV:
		return format, nil
	default:
		return "", fmt.Errorf("unsupported output format %q, expected %s or %s",
			format, constants.OutputFormatPretty, constants.OutputFormatCSV)
	}
}

// ValidateMarketInputs checks user-supplied prices and returns warnings for
// values the engine would reject.
func ValidateMarketInputs(market plant.MarketInputs) []string {
	var warnings []string

	prices := []struct {
		name  string
		value float64
	}{
		{name: "ammonia", value: market.AmmoniaPrice},
		{name: "methanol", value: market.MethanolPrice},
		{name: "urea", value: market.UreaPrice},
		{name: "gas", value: market.GasPrice},
	}
	for _, price := range prices {
		if price.value < 0 {
			warnings = append(warnings, fmt.Sprintf("Price for %s is negative (%.2f)", price.name, price.value))
		}
	}

	return warnings
}

// ValidateCapacityLimits checks capacities and the period length and returns
// warnings for values the engine would reject.
func ValidateCapacityLimits(caps plant.CapacityLimits, periodDays float64) []string {
	var warnings []string

	capacities := []struct {
		name  string
		value float64
	}{
		{name: "ammonia", value: caps.AmmoniaPerDay},
		{name: "methanol", value: caps.MethanolPerDay},
		{name: "urea", value: caps.UreaPerDay},
	}
	for _, capacity := range capacities {
		if capacity.value <= 0 {
			warnings = append(warnings, fmt.Sprintf("Daily capacity for %s must be positive (%.2f)", capacity.name, capacity.value))
		}
	}

	if caps.MaxFuelFlow <= 0 {
		warnings = append(warnings, fmt.Sprintf("Maximum fuel flow must be positive (%.2f)", caps.MaxFuelFlow))
	}
	if periodDays <= 0 {
		warnings = append(warnings, fmt.Sprintf("Period length must be positive (%.1f days)", periodDays))
	}

	return warnings
}
