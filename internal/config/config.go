package config

import (
	"fmt"
	"strings"

	"github.com/penwyp/go-timesheets/internal/core/model"
	"github.com/penwyp/go-timesheets/internal/core/timesheet"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. TIMESHEETS_TIME_FORMAT.
const EnvPrefix = "TIMESHEETS"

const DefaultLogFile = "~/.go-timesheets/logs/app.log"

// Config holds the defaults a run starts from before flags are applied.
type Config struct {
	TimeFormat string `mapstructure:"time_format"`
	StartDate  string `mapstructure:"start_date"`
	EndDate    string `mapstructure:"end_date"`
	Output     string `mapstructure:"output"`
	LogFile    string `mapstructure:"log_file"`
	LogFormat  string `mapstructure:"log_format"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		TimeFormat: timesheet.DefaultTimeLayout,
		StartDate:  timesheet.DefaultStartDate,
		EndDate:    timesheet.DefaultEndDate,
		Output:     model.OutputText,
		LogFile:    DefaultLogFile,
		LogFormat:  "text",
	}
}

// Load reads the config file at path, if any, on top of the defaults and
// environment overrides.
func Load(path string) (*Config, error) {
	v := viper.New()

	def := Default()
	v.SetDefault("time_format", def.TimeFormat)
	v.SetDefault("start_date", def.StartDate)
	v.SetDefault("end_date", def.EndDate)
	v.SetDefault("output", def.Output)
	v.SetDefault("log_file", def.LogFile)
	v.SetDefault("log_format", def.LogFormat)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that would otherwise fail late in a run.
func (c *Config) Validate() error {
	switch c.Output {
	case model.OutputText, model.OutputJSON, model.OutputCSV, model.OutputTable:
	default:
		return fmt.Errorf("invalid output %q (text, json, csv, table)", c.Output)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log_format %q (text, json)", c.LogFormat)
	}
	if c.TimeFormat == "" {
		return fmt.Errorf("time_format must not be empty")
	}
	return nil
}
