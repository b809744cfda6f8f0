// Package config provides configuration loading and validation for figmap.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Sentinel validation errors.
var (
	ErrInvalidFloor        = errors.New("classify floor must be in [0, 1]")
	ErrInvalidThreshold    = errors.New("slotmap safe threshold must be in [0, 1]")
	ErrInvalidCacheEntries = errors.New("figma cache entries must be positive")
	ErrInvalidTimeout      = errors.New("figma timeout must be positive")
	ErrInvalidSampleRatio  = errors.New("telemetry sample ratio must be in [0, 1]")
)

// Default configuration values.
const (
	defaultFigmaTimeout = 30 * time.Second
	defaultCacheEntries = 32
	defaultFloor        = 0.4
	defaultThreshold    = 0.5
)

// Config holds all configuration for figmap.
type Config struct {
	Figma     FigmaConfig     `mapstructure:"figma"`
	Classify  ClassifyConfig  `mapstructure:"classify"`
	Slotmap   SlotmapConfig   `mapstructure:"slotmap"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

// FigmaConfig holds Figma REST API settings.
type FigmaConfig struct {
	Token        string        `mapstructure:"token"`
	BaseURL      string        `mapstructure:"base_url"`
	Timeout      time.Duration `mapstructure:"timeout"`
	CacheEntries int           `mapstructure:"cache_entries"`
}

// ClassifyConfig holds classifier settings.
type ClassifyConfig struct {
	// Floor is the minimum confidence for accepting a classification.
	Floor float64 `mapstructure:"floor"`
}

// SlotmapConfig holds slot-mapping settings.
type SlotmapConfig struct {
	// SafeThreshold is the binding confidence below which the mapper emits
	// review suggestions.
	SafeThreshold float64 `mapstructure:"safe_threshold"`
}

// LoggingConfig holds logging-specific configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// TelemetryConfig holds OpenTelemetry export settings.
type TelemetryConfig struct {
	OTLPEndpoint string  `mapstructure:"otlp_endpoint"`
	OTLPHeaders  string  `mapstructure:"otlp_headers"`
	OTLPInsecure bool    `mapstructure:"otlp_insecure"`
	Environment  string  `mapstructure:"environment"`
	SampleRatio  float64 `mapstructure:"sample_ratio"`
	DebugTrace   bool    `mapstructure:"debug_trace"`
}

// LoadConfig loads configuration from file and environment variables.
// An empty path triggers discovery (working directory, ./config, /etc/figmap).
func LoadConfig(configPath string) (*Config, error) {
	viperCfg := viper.New()

	setDefaults(viperCfg)

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName("figmap")
		viperCfg.SetConfigType("yaml")
		viperCfg.AddConfigPath(".")
		viperCfg.AddConfigPath("./config")
		viperCfg.AddConfigPath("/etc/figmap")
	}

	viperCfg.SetEnvPrefix("FIGMAP")
	viperCfg.AutomaticEnv()
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFoundErr) {
			return nil, fmt.Errorf("failed to read config file: %w", readErr)
		}
	}

	var config Config

	unmarshalErr := viperCfg.Unmarshal(&config)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", unmarshalErr)
	}

	validateErr := validateConfig(&config)
	if validateErr != nil {
		return nil, fmt.Errorf("invalid configuration: %w", validateErr)
	}

	return &config, nil
}

// setDefaults sets default configuration values.
func setDefaults(viperCfg *viper.Viper) {
	// Figma defaults. The empty token default registers the key so
	// FIGMAP_FIGMA_TOKEN binds through AutomaticEnv.
	viperCfg.SetDefault("figma.token", "")
	viperCfg.SetDefault("figma.base_url", "https://api.figma.com")
	viperCfg.SetDefault("figma.timeout", defaultFigmaTimeout)
	viperCfg.SetDefault("figma.cache_entries", defaultCacheEntries)

	// Scoring defaults.
	viperCfg.SetDefault("classify.floor", defaultFloor)
	viperCfg.SetDefault("slotmap.safe_threshold", defaultThreshold)

	// Logging defaults.
	viperCfg.SetDefault("logging.level", "info")
	viperCfg.SetDefault("logging.format", "text")

	// Telemetry defaults.
	viperCfg.SetDefault("telemetry.otlp_endpoint", "")
	viperCfg.SetDefault("telemetry.otlp_insecure", false)
	viperCfg.SetDefault("telemetry.otlp_headers", "")
	viperCfg.SetDefault("telemetry.sample_ratio", 0.0)
	viperCfg.SetDefault("telemetry.environment", "")
	viperCfg.SetDefault("telemetry.debug_trace", false)
}

// validateConfig validates the configuration.
func validateConfig(config *Config) error {
	if config.Classify.Floor < 0 || config.Classify.Floor > 1 {
		return fmt.Errorf("%w: %g", ErrInvalidFloor, config.Classify.Floor)
	}

	if config.Slotmap.SafeThreshold < 0 || config.Slotmap.SafeThreshold > 1 {
		return fmt.Errorf("%w: %g", ErrInvalidThreshold, config.Slotmap.SafeThreshold)
	}

	if config.Figma.CacheEntries <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidCacheEntries, config.Figma.CacheEntries)
	}

	if config.Figma.Timeout <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidTimeout, config.Figma.Timeout)
	}

	if config.Telemetry.SampleRatio < 0 || config.Telemetry.SampleRatio > 1 {
		return fmt.Errorf("%w: %g", ErrInvalidSampleRatio, config.Telemetry.SampleRatio)
	}

	return nil
}
