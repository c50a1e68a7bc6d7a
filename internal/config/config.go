package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/varunisrani/thinkaiback-sub000/pkg/core/schedule"
)

// Config represents the application configuration
type Config struct {
	// ProductionFile is the default scene breakdown to plan; commands may override it
	ProductionFile string `yaml:"productionFile,omitempty"`

	// DatabaseURL is the PostgreSQL connection string used by plan --save
	DatabaseURL string `yaml:"databaseURL,omitempty" validate:"omitempty,url"`

	// StripboardSheetID is the spreadsheet plan --publish writes to
	StripboardSheetID string `yaml:"stripboardSheetID,omitempty"`

	// LogDir is where log files are written (default "logs")
	LogDir string `yaml:"logDir,omitempty"`

	// Engine overrides the scheduling constants. Anything left out keeps its default.
	Engine schedule.Options `yaml:"engine"`
}

var validate *validator.Validate

// placeholderStart stands in for a missing calendar start while validating
var placeholderStart = time.Date(2000, time.January, 3, 0, 0, 0, 0, time.UTC)

func init() {
	validate = validator.New()
}

// Default returns a configuration with every engine constant at its default
func Default() *Config {
	return &Config{
		LogDir: "logs",
		Engine: schedule.DefaultOptions(),
	}
}

// Load loads and validates the configuration from production_config.yaml
// It looks for the config file in the current directory first, then in the user's home directory
func Load() (*Config, error) {
	return LoadWithEnv("")
}

// LoadWithEnv loads the configuration for an environment
// For example, env="test" will look for "production_config.test.yaml"
func LoadWithEnv(env string) (*Config, error) {
	configPath, err := findConfigFile(env)
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate validates the configuration struct and the engine constants,
// including the shoot-day recurrence rule. The first shoot day may be left out
// here and given on the command line; planning fails without it.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	engine := cfg.Engine
	if engine.Calendar.Start.IsZero() {
		engine.Calendar.Start = placeholderStart
	}
	if err := engine.Validate(); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	return nil
}

// findConfigFile searches for the config file in current directory and home directory
func findConfigFile(env string) (string, error) {
	configFileName := "production_config.yaml"
	if env != "" {
		configFileName = "production_config." + env + ".yaml"
	}

	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("%s not found in current directory or home directory", configFileName)
}
