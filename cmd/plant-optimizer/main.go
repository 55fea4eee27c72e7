package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/azotech/plant-optimizer/internal/config"
	"github.com/azotech/plant-optimizer/internal/plant"
	"github.com/azotech/plant-optimizer/internal/scenario"
	"github.com/azotech/plant-optimizer/pkg/constants"
	"github.com/azotech/plant-optimizer/pkg/output"
	"github.com/azotech/plant-optimizer/pkg/validation"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	// Determine log level (CLI override takes precedence)
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info" // Default to info level
	}

	// Parse log level
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	// Determine output format
	format := loggingConfig.Format
	if format == "" {
		format = "json" // Default to JSON for production
	}

	// Configure encoder
	var cfg zap.Config
	switch format {
	case "console":
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapLevel)
	case "json":
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapLevel)
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}

	// Configure output file if specified
	if loggingConfig.OutputFile != "" {
		// Ensure the directory exists
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}

		// Test if we can create/write to the file
		if file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %v", loggingConfig.OutputFile, err)
		} else {
			_ = file.Close()
		}

		cfg.OutputPaths = []string{loggingConfig.OutputFile}
		cfg.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return cfg.Build()
}

func main() {
	// Process command line flags first to get config location
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	sweepFlag := flag.String("sweep", "", "sweep override: shutdown, gas, all")
	flag.Parse()

	// Load the config file to get logging configuration
	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		return
	}

	// Initialize logging based on config and CLI override
	logger, err := initializeLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Determine output format (CLI override takes precedence over config)
	requestedFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		requestedFormat = *outputFormatFlag
	}

	outputFormat, err := validation.NormalizeOutputFormat(requestedFormat)
	if err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	// Validate configuration and display any warnings
	warnings := conf.ValidateConfiguration()
	for _, warning := range warnings {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	runShutdownSweep := conf.Sweeps.Shutdown.Enabled
	runGasSweep := conf.Sweeps.Gas.Enabled
	switch *sweepFlag {
	case "":
	case "shutdown":
		runShutdownSweep = true
	case "gas":
		runGasSweep = true
	case "all":
		runShutdownSweep = true
		runGasSweep = true
	default:
		logger.Fatal("invalid sweep override: "+*sweepFlag,
			zap.String("op", "main"),
		)
	}

	// Run the evaluation for the configured market.
	solution, err := plant.Evaluate(logger, conf.MarketInputs(), conf.CapacityLimits(), conf.PeriodDays, conf.Coefficients)
	if err != nil {
		logger.Fatal("failed to evaluate production plan",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettySolution(solution, conf.Coefficients.UreaAmmoniaRatio)
	case constants.OutputFormatCSV:
		output.CsvSolution(solution, conf.Coefficients.UreaAmmoniaRatio)
	}

	if runShutdownSweep {
		prices := scenario.PriceRange{
			Min:   conf.Sweeps.Shutdown.MinPrice,
			Max:   conf.Sweeps.Shutdown.MaxPrice,
			Steps: conf.Sweeps.Shutdown.Steps,
		}
		result, err := scenario.ShutdownSweep(logger,
			conf.Market.AmmoniaPrice, conf.Market.UreaPrice, conf.Market.GasPrice,
			conf.CapacityLimits(), conf.PeriodDays, conf.Coefficients, prices)
		if err != nil {
			logger.Fatal("failed to compute shutdown sweep",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		fmt.Printf("\n")
		switch outputFormat {
		case constants.OutputFormatPretty:
			output.PrettyShutdownSweep(result)
		case constants.OutputFormatCSV:
			output.CsvShutdownSweep(result)
		}
	}

	if runGasSweep {
		prices := scenario.PriceRange{
			Min:   conf.Sweeps.Gas.MinPrice,
			Max:   conf.Sweeps.Gas.MaxPrice,
			Steps: conf.Sweeps.Gas.Steps,
		}
		points, err := scenario.GasSensitivity(logger, conf.MarketInputs(), conf.CapacityLimits(), conf.PeriodDays, conf.Coefficients, prices)
		if err != nil {
			logger.Fatal("failed to compute gas sensitivity sweep",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		fmt.Printf("\n")
		switch outputFormat {
		case constants.OutputFormatPretty:
			output.PrettyGasSweep(points)
		case constants.OutputFormatCSV:
			output.CsvGasSweep(points)
		}
	}
}
