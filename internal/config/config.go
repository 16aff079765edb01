package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/eugenenazirov/pwrs/internal/passphrase"
	"github.com/eugenenazirov/pwrs/internal/wordlist"
)

const (
	defaultMin      = 4
	defaultMax      = 6
	defaultNumber   = 4
	defaultCount    = 1
	defaultLogLevel = "warn"
)

var (
	// ErrLoadFile is returned when the YAML configuration file cannot be read or parsed.
	ErrLoadFile = errors.New("load YAML config")
	// ErrInvalidConfig is returned when the resolved configuration violates validation rules.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Config aggregates runtime configuration resolved from multiple sources.
// Precedence: CLI flags > Environment variables > YAML config > Defaults
type Config struct {
	Min      uint
	Max      uint
	Number   uint
	Count    uint
	Wordlist string
	Case     passphrase.CaseMode
	LogLevel string
}

// yamlConfig represents the YAML configuration file structure.
type yamlConfig struct {
	Min      *uint  `yaml:"min"`
	Max      *uint  `yaml:"max"`
	Number   *uint  `yaml:"number"`
	Count    *uint  `yaml:"count"`
	Wordlist string `yaml:"wordlist"`
	Case     string `yaml:"case"`
	LogLevel string `yaml:"log_level"`
}

// envConfig lists the environment variables understood by pwrs.
type envConfig struct {
	Wordlist string `env:"PWRS_WORDLIST"`
}

// CLIOverrides holds command-line flag overrides. Nil fields were not set.
type CLIOverrides struct {
	ConfigFile string
	Min        *uint
	Max        *uint
	Number     *uint
	Count      *uint
	Wordlist   *string
	Case       *string
	LogLevel   *string
}

// Load extracts configuration from multiple sources with precedence:
// CLI flags > Environment variables > YAML config > Defaults
func Load(overrides *CLIOverrides) (Config, error) {
	cfg := defaultConfig()

	// Load from YAML file if specified
	if overrides != nil && overrides.ConfigFile != "" {
		yamlCfg, err := loadFromFile(overrides.ConfigFile)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %w", ErrLoadFile, err)
		}
		if err := applyYAMLConfig(&cfg, yamlCfg); err != nil {
			return Config{}, err
		}
	}

	// Apply environment variables (override YAML)
	if err := applyEnvConfig(&cfg); err != nil {
		return Config{}, err
	}

	// Apply CLI overrides (highest precedence)
	if overrides != nil {
		if err := applyCLIOverrides(&cfg, overrides); err != nil {
			return Config{}, err
		}
	}

	// Validate final configuration
	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Default returns the compiled-in configuration.
func Default() Config {
	return defaultConfig()
}

// defaultConfig returns a Config with default values.
func defaultConfig() Config {
	return Config{
		Min:      defaultMin,
		Max:      defaultMax,
		Number:   defaultNumber,
		Count:    defaultCount,
		Wordlist: wordlist.DefaultPath,
		Case:     passphrase.Lower,
		LogLevel: defaultLogLevel,
	}
}

// loadFromFile loads configuration from a YAML file.
func loadFromFile(path string) (*yamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return parseYAML(data)
}

// parseYAML decodes raw YAML into the file structure.
func parseYAML(data []byte) (*yamlConfig, error) {
	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}
	return &yamlCfg, nil
}

// applyYAMLConfig applies YAML configuration to the Config struct.
func applyYAMLConfig(cfg *Config, yamlCfg *yamlConfig) error {
	if yamlCfg.Min != nil {
		cfg.Min = *yamlCfg.Min
	}
	if yamlCfg.Max != nil {
		cfg.Max = *yamlCfg.Max
	}
	if yamlCfg.Number != nil {
		cfg.Number = *yamlCfg.Number
	}
	if yamlCfg.Count != nil {
		cfg.Count = *yamlCfg.Count
	}

	if path := strings.TrimSpace(yamlCfg.Wordlist); path != "" {
		cfg.Wordlist = path
	}

	if yamlCfg.Case != "" {
		mode, err := passphrase.ParseCaseMode(yamlCfg.Case)
		if err != nil {
			return fmt.Errorf("%w: case: %w", ErrInvalidConfig, err)
		}
		cfg.Case = mode
	}

	if level := strings.TrimSpace(yamlCfg.LogLevel); level != "" {
		cfg.LogLevel = level
	}

	return nil
}

// applyEnvConfig applies environment variable configuration.
func applyEnvConfig(cfg *Config) error {
	var envCfg envConfig
	if err := env.Parse(&envCfg); err != nil {
		return fmt.Errorf("%w: environment: %w", ErrInvalidConfig, err)
	}

	if path := strings.TrimSpace(envCfg.Wordlist); path != "" {
		cfg.Wordlist = path
	}

	return nil
}

// applyCLIOverrides applies command-line flag overrides.
func applyCLIOverrides(cfg *Config, overrides *CLIOverrides) error {
	if overrides.Min != nil {
		cfg.Min = *overrides.Min
	}
	if overrides.Max != nil {
		cfg.Max = *overrides.Max
	}
	if overrides.Number != nil {
		cfg.Number = *overrides.Number
	}
	if overrides.Count != nil {
		cfg.Count = *overrides.Count
	}

	if overrides.Wordlist != nil && *overrides.Wordlist != "" {
		cfg.Wordlist = *overrides.Wordlist
	}

	if overrides.Case != nil && *overrides.Case != "" {
		mode, err := passphrase.ParseCaseMode(*overrides.Case)
		if err != nil {
			return fmt.Errorf("%w: case: %w", ErrInvalidConfig, err)
		}
		cfg.Case = mode
	}

	if overrides.LogLevel != nil && *overrides.LogLevel != "" {
		cfg.LogLevel = *overrides.LogLevel
	}

	return nil
}

// validateConfig validates the final configuration.
func validateConfig(cfg Config) error {
	if cfg.Min > cfg.Max {
		return fmt.Errorf("%w: min (%d) must not exceed max (%d)", ErrInvalidConfig, cfg.Min, cfg.Max)
	}
	if cfg.Wordlist == "" {
		return fmt.Errorf("%w: word list path cannot be empty", ErrInvalidConfig)
	}
	if _, err := passphrase.ParseCaseMode(string(cfg.Case)); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := zapcore.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("%w: log level: %w", ErrInvalidConfig, err)
	}
	return nil
}
