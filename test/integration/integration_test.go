// Package integration exercises the full pipeline from configuration files
// through the evaluation engine and the scenario sweeps.
package integration

import (
	"path/filepath"
	"testing"

	"github.com/azotech/plant-optimizer/internal/config"
	"github.com/azotech/plant-optimizer/internal/plant"
	"github.com/azotech/plant-optimizer/internal/scenario"
	"github.com/azotech/plant-optimizer/pkg/testutil"
	"go.uber.org/zap"
)

func loadFixture(t *testing.T) *config.Configuration {
	t.Helper()
	conf, err := config.LoadConfiguration(filepath.Join("..", "test_config.yaml"))
	if err != nil {
		t.Fatalf("failed to load test config: %v", err)
	}
	return conf
}

func TestEvaluateFromConfigFile(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	conf := loadFixture(t)

	if warnings := conf.ValidateConfiguration(); len(warnings) != 0 {
		t.Fatalf("fixture configuration produced warnings: %v", warnings)
	}

	sol, err := plant.Evaluate(logger, conf.MarketInputs(), conf.CapacityLimits(), conf.PeriodDays, conf.Coefficients)
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if !sol.Feasible {
		t.Fatal("Evaluate() reported infeasible for the fixture configuration")
	}
	if sol.Case != plant.CaseIntegrated {
		t.Errorf("case = %s, expected %s", sol.Case, plant.CaseIntegrated)
	}
	testutil.AssertClose(t, "profit", sol.Profit, 6896199.92, 0.005)
	testutil.AssertWithin(t, "fuel flow", sol.FuelFlow, 115.9583, 1e-3)
	if sol.FuelFlow > conf.Capacities.MaxFuelFlow+0.01 {
		t.Errorf("fuel flow %v exceeds configured ceiling %v", sol.FuelFlow, conf.Capacities.MaxFuelFlow)
	}
}

func TestSweepsFromConfigFile(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	conf := loadFixture(t)

	if !conf.Sweeps.Shutdown.Enabled || !conf.Sweeps.Gas.Enabled {
		t.Fatal("fixture configuration must enable both sweeps")
	}

	shutdown, err := scenario.ShutdownSweep(logger,
		conf.Market.AmmoniaPrice, conf.Market.UreaPrice, conf.Market.GasPrice,
		conf.CapacityLimits(), conf.PeriodDays, conf.Coefficients,
		scenario.PriceRange{
			Min:   conf.Sweeps.Shutdown.MinPrice,
			Max:   conf.Sweeps.Shutdown.MaxPrice,
			Steps: conf.Sweeps.Shutdown.Steps,
		})
	if err != nil {
		t.Fatalf("ShutdownSweep() error = %v", err)
	}
	if !shutdown.Feasible {
		t.Fatal("ShutdownSweep() reported infeasible baseline")
	}
	if shutdown.CrossoverPrice == nil {
		t.Fatal("ShutdownSweep() found no crossover in the configured range")
	}
	testutil.AssertWithin(t, "crossover price", *shutdown.CrossoverPrice, 34.0, 1e-6)

	gas, err := scenario.GasSensitivity(logger, conf.MarketInputs(), conf.CapacityLimits(),
		conf.PeriodDays, conf.Coefficients,
		scenario.PriceRange{
			Min:   conf.Sweeps.Gas.MinPrice,
			Max:   conf.Sweeps.Gas.MaxPrice,
			Steps: conf.Sweeps.Gas.Steps,
		})
	if err != nil {
		t.Fatalf("GasSensitivity() error = %v", err)
	}
	if len(gas) != conf.Sweeps.Gas.Steps+1 {
		t.Fatalf("GasSensitivity() returned %d points, expected %d", len(gas), conf.Sweeps.Gas.Steps+1)
	}
}

func TestExampleConfigEvaluates(t *testing.T) {
	conf, err := config.LoadConfiguration(filepath.Join("..", "..", "config.yaml.example"))
	if err != nil {
		t.Fatalf("failed to load example config: %v", err)
	}
	if warnings := conf.ValidateConfiguration(); len(warnings) != 0 {
		t.Fatalf("example configuration produced warnings: %v", warnings)
	}

	sol, err := plant.Evaluate(nil, conf.MarketInputs(), conf.CapacityLimits(), conf.PeriodDays, conf.Coefficients)
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if !sol.Feasible {
		t.Fatal("example configuration evaluated as infeasible")
	}
}
