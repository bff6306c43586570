// Package config resolves the run configuration shared by every ggscreen
// command. Precedence, lowest to highest: built-in defaults, the optional
// YAML config file, environment variables. Command-line flags are merged on
// top by the cmd package.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/yumyai/ggscreen/internal/util"
	"github.com/yumyai/ggscreen/logger"
)

// Config holds the ggscreen run configuration.
type Config struct {
	DataDir     string  `yaml:"datadir"`      // directory holding one subdirectory per gene database
	Database    string  `yaml:"database"`     // database screened by default
	MinIdentity float64 `yaml:"min_identity"` // percent, handed to the aligner
	MinCoverage float64 `yaml:"min_coverage"` // percent, inclusive lower bound on reference coverage
	Threads     int     `yaml:"threads"`      // aligner threads
	LogLevel    string  `yaml:"log_level"`    // debug, info, warn, error
	CSV         bool    `yaml:"csv"`          // comma-separated output instead of tabs
	NoHeader    bool    `yaml:"noheader"`     // suppress the report column header
	NoPath      bool    `yaml:"nopath"`       // strip directories from file columns
	BrokenMap   bool    `yaml:"broken_map"`   // split coverage bars on gap openings
}

const (
	DefaultDataDir     = "./db"
	DefaultDatabase    = "ncbi"
	DefaultMinIdentity = 80.0
	DefaultMinCoverage = 0.0
	DefaultThreads     = 1

	// Environment variables recognized on top of the YAML file.
	EnvConfig  = "GGSCREEN_CONFIG"
	EnvDataDir = "GGSCREEN_DATADIR"
	EnvDB      = "GGSCREEN_DB"

	configFile = "ggscreen.yaml"
)

// Load builds the configuration for this run. A missing config file is fine,
// defaults cover everything.
func Load() (Config, error) {
	// Pick up a .env first so it can feed both GGSCREEN_* variables and
	// ${VAR} references inside the YAML file.
	if err := godotenv.Load(); err != nil {
		logger.Debug("No .env found, using local environment")
	}

	cfg := Default()

	path := findConfigPath()
	if path != "" {
		data, err := os.ReadFile(filepath.Clean(path))
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}

		// Substitute env variables of the form ${VAR} and ${VAR:-default}
		data = expandEnvVars(data)

		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		DataDir:     DefaultDataDir,
		Database:    DefaultDatabase,
		MinIdentity: DefaultMinIdentity,
		MinCoverage: DefaultMinCoverage,
		Threads:     DefaultThreads,
	}
}

// applyEnv folds the GGSCREEN_* environment variables over the file values.
func (c *Config) applyEnv() {
	if v := os.Getenv(EnvDataDir); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv(EnvDB); v != "" {
		c.Database = v
	}
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.DataDir == "" {
		c.DataDir = DefaultDataDir
	}
	if c.Database == "" {
		c.Database = DefaultDatabase
	}
	if c.Threads <= 0 {
		c.Threads = DefaultThreads
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if c.MinIdentity < 0 || c.MinIdentity > 100 {
		return fmt.Errorf("min_identity must be between 0 and 100, got %g", c.MinIdentity)
	}
	if c.MinCoverage < 0 || c.MinCoverage > 100 {
		return fmt.Errorf("min_coverage must be between 0 and 100, got %g", c.MinCoverage)
	}
	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
		// ok
	default:
		return fmt.Errorf("log_level must be debug, info, warn or error, got %q", c.LogLevel)
	}
	return nil
}

// findConfigPath locates the config file. GGSCREEN_CONFIG wins; otherwise
// ggscreen.yaml in the working directory is used when present. Empty means
// run on defaults.
func findConfigPath() string {
	if path := os.Getenv(EnvConfig); path != "" {
		return path
	}
	if util.FileExists(configFile) {
		return configFile
	}
	return ""
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1]) // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
