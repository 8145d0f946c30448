// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by the configuration.
const EnvPrefix = "TRAINING"

// SupportedReportFormats lists the accepted values of report.format.
var SupportedReportFormats = []string{"json", "yaml", "csv", "xlsx"}

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Data struct {
		InputFile string `mapstructure:"input_file" yaml:"input_file"`
	} `mapstructure:"data" yaml:"data"`

	Output struct {
		Directory      string `mapstructure:"directory" yaml:"directory"`
		FiscalYearFile string `mapstructure:"fiscal_year_file" yaml:"fiscal_year_file"`
	} `mapstructure:"output" yaml:"output"`

	Report struct {
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"report" yaml:"report"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading
func InitializeConfig() (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	v.SetConfigName("training-report")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.training-report")
	v.AddConfigPath(".training-report")
	v.AddConfigPath(".")

	// 3. Environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file %s: %w", v.ConfigFileUsed(), err)
		}
	}

	// 5. Unprefixed log variables are honoured as well
	if err := v.BindEnv("log.level", EnvPrefix+"_LOG_LEVEL", "LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("log.format", EnvPrefix+"_LOG_FORMAT", "LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind LOG_FORMAT: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 6. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("data.input_file", "trainings.txt")

	v.SetDefault("output.directory", ".")
	v.SetDefault("output.fiscal_year_file", "task_2_output")

	v.SetDefault("report.format", "json")
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(strings.ToLower(config.Log.Level)); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	format := strings.ToLower(config.Log.Format)
	if format != "text" && format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if !IsSupportedReportFormat(config.Report.Format) {
		return fmt.Errorf("invalid report format: %s (must be one of %s)",
			config.Report.Format, strings.Join(SupportedReportFormats, ", "))
	}

	if strings.TrimSpace(config.Data.InputFile) == "" {
		return fmt.Errorf("data.input_file must not be empty")
	}

	if strings.TrimSpace(config.Output.FiscalYearFile) == "" {
		return fmt.Errorf("output.fiscal_year_file must not be empty")
	}

	return nil
}

// IsSupportedReportFormat reports whether format names a known report format.
func IsSupportedReportFormat(format string) bool {
	for _, f := range SupportedReportFormats {
		if strings.EqualFold(f, format) {
			return true
		}
	}
	return false
}
