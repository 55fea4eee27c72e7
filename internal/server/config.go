package server

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/azotech/plant-optimizer/pkg/constants"
	"gopkg.in/yaml.v3"
)

// Config holds the runtime settings of the HTTP API: the listen address and
// the size cap applied to uploaded configuration bodies.
type Config struct {
	Address       string `yaml:"address"`
	MaxUploadSize string `yaml:"maxUploadSize"`

	uploadSizeBytes int64
}

// LoadConfig reads the server configuration from a YAML file. A missing file
// is not an error; the defaults serve a bare deployment.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{Address: constants.DefaultServerAddress}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read server config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse server config: %w", err)
			}
		}
	}

	if cfg.Address == "" {
		cfg.Address = constants.DefaultServerAddress
	}

	size, err := ParseSize(cfg.MaxUploadSize)
	if err != nil {
		return nil, err
	}
	cfg.uploadSizeBytes = size
	return cfg, nil
}

// UploadSizeBytes returns the upload cap in bytes.
func (c *Config) UploadSizeBytes() int64 {
	if c.uploadSizeBytes <= 0 {
		return constants.DefaultMaxUploadSizeBytes
	}
	return c.uploadSizeBytes
}

// sizeUnits in longest-suffix-first order so "KB" wins over "B".
var sizeUnits = []struct {
	suffix string
	factor int64
}{
	{"KB", 1 << 10},
	{"MB", 1 << 20},
	{"GB", 1 << 30},
	{"K", 1 << 10},
	{"M", 1 << 20},
	{"G", 1 << 30},
	{"B", 1},
}

// ParseSize converts a size string like "256K" or "10MB" into bytes. An
// empty string yields the default upload cap.
func ParseSize(value string) (int64, error) {
	trimmed := strings.ToUpper(strings.TrimSpace(value))
	if trimmed == "" {
		return constants.DefaultMaxUploadSizeBytes, nil
	}

	factor := int64(1)
	for _, unit := range sizeUnits {
		if strings.HasSuffix(trimmed, unit.suffix) {
			factor = unit.factor
			trimmed = strings.TrimSpace(strings.TrimSuffix(trimmed, unit.suffix))
			break
		}
	}

	n, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid upload size %q: %w", value, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("upload size must be positive, got %q", value)
	}
	if n > (int64(1)<<62)/factor {
		return 0, fmt.Errorf("upload size %q overflows", value)
	}
	return n * factor, nil
}
