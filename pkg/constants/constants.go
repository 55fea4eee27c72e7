// Package constants provides shared constants for the plant-optimizer application.
package constants

// Solver constants
const (
	// HoursPerDay converts a daily gas volume into an hourly flow rate
	HoursPerDay = 24.0

	// BisectionIterations is the number of halvings used when locating a
	// fuel-ceiling-binding vertex; sufficient for double-precision accuracy
	BisectionIterations = 60

	// ProductionTolerance is the absolute tolerance (in tonnes) used when
	// validating candidate vertices against linear constraints
	ProductionTolerance = 1e-6

	// FuelFlowTolerance is the absolute tolerance for the fuel-flow ceiling,
	// in the same units as the ceiling itself
	FuelFlowTolerance = 0.01

	// PartitionEpsilon separates the curtailed case's methanol upper bound
	// from the integrated case's lower bound
	PartitionEpsilon = 1e-6

	// ProfitTolerance is the tolerance for comparing candidate objective values
	ProfitTolerance = 1e-6
)

// Financial constants
const (
	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01
)

// Sweep constants
const (
	// DefaultSweepSteps is the default number of grid points in a scenario sweep
	DefaultSweepSteps = 25
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxUploadSizeBytes is the default maximum upload size for YAML configs (256 KB)
	DefaultMaxUploadSizeBytes int64 = 256 * 1024
)
