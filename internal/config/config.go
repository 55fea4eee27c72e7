// Package config defines the data structures related to configuration and
// includes functions for loading, defaulting, and validating the config.
package config

import (
	"fmt"
	"io"

	"github.com/azotech/plant-optimizer/internal/plant"
	"github.com/azotech/plant-optimizer/pkg/validation"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for plant-optimizer.
type Configuration struct {
	Market       MarketConfig
	Capacities   CapacityConfig
	PeriodDays   float64
	Coefficients plant.ProcessCoefficients
	Sweeps       SweepsConfig
	Logging      LoggingConfig `yaml:"logging,omitempty"`
	Output       OutputConfig  `yaml:"output,omitempty"`
}

// MarketConfig holds the market prices for one evaluation.
type MarketConfig struct {
	AmmoniaPrice  float64
	MethanolPrice float64
	UreaPrice     float64
	GasPrice      float64
}

// CapacityConfig holds the nameplate daily output limits and the fuel ceiling.
type CapacityConfig struct {
	AmmoniaPerDay  float64
	MethanolPerDay float64
	UreaPerDay     float64
	MaxFuelFlow    float64
}

// SweepsConfig enables and parameterizes the scenario sweeps.
type SweepsConfig struct {
	Shutdown SweepRangeConfig
	Gas      SweepRangeConfig
}

// SweepRangeConfig describes one swept price grid.
type SweepRangeConfig struct {
	Enabled  bool
	MinPrice float64
	MaxPrice float64
	Steps    int
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. Coefficients missing from the file fall back to the
// documented defaults, so a sparse file resets the plant model to its
// calibrated state.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.AutomaticEnv()

	v.SetConfigType("yml")
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := v.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// LoadConfigurationFromReader parses a YAML-formatted configuration from r,
// applying the same documented defaults as LoadConfiguration. Used by the
// HTTP API for uploaded configuration bodies.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := viper.New()
	v.SetConfigType("yml")
	setDefaults(v)

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}

	var configuration Configuration
	err := v.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// MarketInputs converts the configured market prices into the engine's input
// record.
func (c *Configuration) MarketInputs() plant.MarketInputs {
	return plant.MarketInputs{
		AmmoniaPrice:  c.Market.AmmoniaPrice,
		MethanolPrice: c.Market.MethanolPrice,
		UreaPrice:     c.Market.UreaPrice,
		GasPrice:      c.Market.GasPrice,
	}
}

// CapacityLimits converts the configured capacities into the engine's input
// record.
func (c *Configuration) CapacityLimits() plant.CapacityLimits {
	return plant.CapacityLimits{
		AmmoniaPerDay:  c.Capacities.AmmoniaPerDay,
		MethanolPerDay: c.Capacities.MethanolPerDay,
		UreaPerDay:     c.Capacities.UreaPerDay,
		MaxFuelFlow:    c.Capacities.MaxFuelFlow,
	}
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings.
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string
	warnings = append(warnings, validation.ValidateMarketInputs(c.MarketInputs())...)
	warnings = append(warnings, validation.ValidateCapacityLimits(c.CapacityLimits(), c.PeriodDays)...)
	for _, sweep := range []struct {
		name string
		cfg  SweepRangeConfig
	}{
		{name: "shutdown", cfg: c.Sweeps.Shutdown},
		{name: "gas", cfg: c.Sweeps.Gas},
	} {
		if sweep.cfg.Enabled && sweep.cfg.MaxPrice <= sweep.cfg.MinPrice {
			warnings = append(warnings, fmt.Sprintf(
				"Sweep '%s' maximum price %.2f does not exceed minimum price %.2f",
				sweep.name, sweep.cfg.MaxPrice, sweep.cfg.MinPrice))
		}
	}
	return warnings
}
