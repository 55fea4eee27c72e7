package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/azotech/plant-optimizer/pkg/testutil"
)

const minimalConfig = `
market:
  ammoniaPrice: 325.0
  methanolPrice: 80.0
  ureaPrice: 400.0
  gasPrice: 5.0
capacities:
  ammoniaPerDay: 1320.0
  methanolPerDay: 1250.0
  ureaPerDay: 2150.0
  maxFuelFlow: 128.0
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoadConfiguration(t *testing.T) {
	conf, err := LoadConfiguration(writeConfig(t, minimalConfig))
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	testutil.AssertWithin(t, "ammonia price", conf.Market.AmmoniaPrice, 325.0, 1e-9)
	testutil.AssertWithin(t, "methanol price", conf.Market.MethanolPrice, 80.0, 1e-9)
	testutil.AssertWithin(t, "urea price", conf.Market.UreaPrice, 400.0, 1e-9)
	testutil.AssertWithin(t, "gas price", conf.Market.GasPrice, 5.0, 1e-9)
	testutil.AssertWithin(t, "ammonia capacity", conf.Capacities.AmmoniaPerDay, 1320.0, 1e-9)
	testutil.AssertWithin(t, "fuel ceiling", conf.Capacities.MaxFuelFlow, 128.0, 1e-9)
}

func TestLoadConfigurationAppliesDefaults(t *testing.T) {
	conf, err := LoadConfiguration(writeConfig(t, minimalConfig))
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	// Omitted keys fall back to the documented calibration.
	testutil.AssertWithin(t, "default period", conf.PeriodDays, 31.0, 1e-9)
	testutil.AssertWithin(t, "default reference gas price", conf.Coefficients.ReferenceGasPrice, 5.0, 1e-9)
	testutil.AssertWithin(t, "default urea ratio", conf.Coefficients.UreaAmmoniaRatio, 0.58, 1e-9)
	testutil.AssertWithin(t, "default ammonia base cost", conf.Coefficients.AmmoniaCostBaseIntegrated, 198.60366, 1e-9)
	testutil.AssertWithin(t, "default fixed cost", conf.Coefficients.FixedCostTotal, 4200000.0, 1e-9)

	if err := conf.Coefficients.Validate(); err != nil {
		t.Errorf("defaulted coefficients invalid: %v", err)
	}
}

func TestLoadConfigurationOverridesCoefficient(t *testing.T) {
	content := minimalConfig + `
periodDays: 30.0
coefficients:
  synergyLossPenalty: 7.5
`
	conf, err := LoadConfiguration(writeConfig(t, content))
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	testutil.AssertWithin(t, "overridden period", conf.PeriodDays, 30.0, 1e-9)
	testutil.AssertWithin(t, "overridden penalty", conf.Coefficients.SynergyLossPenalty, 7.5, 1e-9)
	// Untouched siblings keep their defaults.
	testutil.AssertWithin(t, "sibling default", conf.Coefficients.UreaAmmoniaRatio, 0.58, 1e-9)
}

func TestLoadConfigurationMissingFile(t *testing.T) {
	if _, err := LoadConfiguration(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("LoadConfiguration() accepted a missing file")
	}
}

func TestLoadConfigurationFromReader(t *testing.T) {
	conf, err := LoadConfigurationFromReader(strings.NewReader(minimalConfig))
	if err != nil {
		t.Fatalf("LoadConfigurationFromReader() error = %v", err)
	}

	testutil.AssertWithin(t, "ammonia price", conf.Market.AmmoniaPrice, 325.0, 1e-9)
	testutil.AssertWithin(t, "default period", conf.PeriodDays, 31.0, 1e-9)
	testutil.AssertWithin(t, "default synergy coefficient", conf.Coefficients.SynergyCoefficient, 0.29, 1e-9)
}

func TestLoadConfigurationFromReaderRejectsGarbage(t *testing.T) {
	if _, err := LoadConfigurationFromReader(strings.NewReader("market: [unclosed")); err == nil {
		t.Error("LoadConfigurationFromReader() accepted malformed YAML")
	}
}

func TestConversionMethods(t *testing.T) {
	conf, err := LoadConfigurationFromReader(strings.NewReader(minimalConfig))
	if err != nil {
		t.Fatalf("LoadConfigurationFromReader() error = %v", err)
	}

	market := conf.MarketInputs()
	if market.AmmoniaPrice != conf.Market.AmmoniaPrice ||
		market.MethanolPrice != conf.Market.MethanolPrice ||
		market.UreaPrice != conf.Market.UreaPrice ||
		market.GasPrice != conf.Market.GasPrice {
		t.Errorf("MarketInputs() = %+v does not match configuration %+v", market, conf.Market)
	}

	caps := conf.CapacityLimits()
	if caps.AmmoniaPerDay != conf.Capacities.AmmoniaPerDay ||
		caps.MethanolPerDay != conf.Capacities.MethanolPerDay ||
		caps.UreaPerDay != conf.Capacities.UreaPerDay ||
		caps.MaxFuelFlow != conf.Capacities.MaxFuelFlow {
		t.Errorf("CapacityLimits() = %+v does not match configuration %+v", caps, conf.Capacities)
	}
}

func TestValidateConfigurationWarnings(t *testing.T) {
	tests := []struct {
		name         string
		content      string
		wantWarnings int
	}{
		{
			name:         "clean configuration",
			content:      minimalConfig,
			wantWarnings: 0,
		},
		{
			name: "negative price",
			content: strings.Replace(minimalConfig,
				"ammoniaPrice: 325.0", "ammoniaPrice: -10.0", 1),
			wantWarnings: 1,
		},
		{
			name: "zero capacity and zero ceiling",
			content: strings.NewReplacer(
				"ureaPerDay: 2150.0", "ureaPerDay: 0.0",
				"maxFuelFlow: 128.0", "maxFuelFlow: 0.0",
			).Replace(minimalConfig),
			wantWarnings: 2,
		},
		{
			name: "inverted sweep range",
			content: minimalConfig + `
sweeps:
  shutdown:
    enabled: true
    minPrice: 60.0
    maxPrice: 20.0
`,
			wantWarnings: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conf, err := LoadConfigurationFromReader(strings.NewReader(tt.content))
			if err != nil {
				t.Fatalf("LoadConfigurationFromReader() error = %v", err)
			}
			warnings := conf.ValidateConfiguration()
			if len(warnings) != tt.wantWarnings {
				t.Errorf("ValidateConfiguration() = %d warnings %v, expected %d",
					len(warnings), warnings, tt.wantWarnings)
			}
		})
	}
}

func TestDefaultCoefficientsValid(t *testing.T) {
	coeffs := DefaultCoefficients()
	if err := coeffs.Validate(); err != nil {
		t.Fatalf("DefaultCoefficients().Validate() error = %v", err)
	}
}
