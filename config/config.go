// Package config loads runtime settings through viper
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/lixenwraith/atb-fighter/constants"
)

// Config keys
const (
	KeyLogLevel         = "log.level"
	KeyLogFile          = "log.file"
	KeyTickInterval     = "battle.tick_interval"
	KeyTimeModBase      = "battle.time_mod_base"
	KeyTimeModSpread    = "battle.time_mod_spread"
	KeyConsumeOnResolve = "battle.consume_on_resolve"
	KeyRoster           = "battle.roster"
	KeyAudioEnabled     = "audio.enabled"
	KeyMetricsEnabled   = "metrics.enabled"
	KeyMetricsFile      = "metrics.file"
	KeyMetricsInterval  = "metrics.interval"
	KeyKeys             = "keys"
)

// EnvPrefix namespaces environment overrides, e.g. ATB_LOG_LEVEL
const EnvPrefix = "ATB"

// Battle holds the pacing and roster settings
type Battle struct {
	TickInterval     time.Duration
	TimeModBase      float64
	TimeModSpread    float64
	ConsumeOnResolve bool
	Roster           string // empty uses the built-in parties
}

// Metrics controls the OpenTelemetry export
type Metrics struct {
	Enabled  bool
	File     string // empty shares log.file
	Interval time.Duration
}

// Config is the resolved runtime configuration
type Config struct {
	LogLevel     string
	LogFile      string // empty discards logs
	Battle       Battle
	Metrics      Metrics
	AudioEnabled bool
	Keys         map[string]string // key name -> action name overrides
}

// SetDefaults registers every default value with viper
func SetDefaults() {
	viper.SetDefault(KeyLogLevel, "info")
	viper.SetDefault(KeyLogFile, "")

	viper.SetDefault(KeyTickInterval, constants.FrameTickInterval)
	viper.SetDefault(KeyTimeModBase, constants.TimeModBase)
	viper.SetDefault(KeyTimeModSpread, constants.TimeModSpread)
	viper.SetDefault(KeyConsumeOnResolve, false)
	viper.SetDefault(KeyRoster, "")

	viper.SetDefault(KeyMetricsEnabled, false)
	viper.SetDefault(KeyMetricsFile, "")
	viper.SetDefault(KeyMetricsInterval, constants.MetricsInterval)

	viper.SetDefault(KeyAudioEnabled, true)
}

// Load sets defaults, reads configFile if given, and resolves the result
// The file type follows its extension (toml, yaml, json)
func Load(configFile string) (*Config, error) {
	SetDefaults()

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return Current()
}

// Current resolves and validates the configuration viper holds now
func Current() (*Config, error) {
	cfg := &Config{
		LogLevel: viper.GetString(KeyLogLevel),
		LogFile:  viper.GetString(KeyLogFile),
		Battle: Battle{
			TickInterval:     viper.GetDuration(KeyTickInterval),
			TimeModBase:      viper.GetFloat64(KeyTimeModBase),
			TimeModSpread:    viper.GetFloat64(KeyTimeModSpread),
			ConsumeOnResolve: viper.GetBool(KeyConsumeOnResolve),
			Roster:           viper.GetString(KeyRoster),
		},
		Metrics: Metrics{
			Enabled:  viper.GetBool(KeyMetricsEnabled),
			File:     viper.GetString(KeyMetricsFile),
			Interval: viper.GetDuration(KeyMetricsInterval),
		},
		AudioEnabled: viper.GetBool(KeyAudioEnabled),
		Keys:         viper.GetStringMapString(KeyKeys),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the battle cannot run with
func (c *Config) Validate() error {
	if c.Battle.TickInterval <= 0 {
		return fmt.Errorf("%s must be positive, got %v", KeyTickInterval, c.Battle.TickInterval)
	}
	if c.Battle.TimeModBase <= 0 {
		return fmt.Errorf("%s must be positive, got %v", KeyTimeModBase, c.Battle.TimeModBase)
	}
	if c.Battle.TimeModSpread < 0 {
		return fmt.Errorf("%s must not be negative, got %v", KeyTimeModSpread, c.Battle.TimeModSpread)
	}
	if c.Metrics.Enabled {
		if c.Metrics.Interval <= 0 {
			return fmt.Errorf("%s must be positive, got %v", KeyMetricsInterval, c.Metrics.Interval)
		}
		if c.MetricsPath() == "" {
			return fmt.Errorf("%s requires %s or %s", KeyMetricsEnabled, KeyMetricsFile, KeyLogFile)
		}
	}
	return nil
}

// MetricsPath is the file metrics are exported to, falling back to the log file
func (c *Config) MetricsPath() string {
	if c.Metrics.File != "" {
		return c.Metrics.File
	}
	return c.LogFile
}
