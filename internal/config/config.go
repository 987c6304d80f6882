package config

import (
	"os"
	"strconv"
	"strings"

	"godunn/internal/analysis"
	"godunn/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Data     DataConfig
	Analysis AnalysisConfig
	Report   ReportConfig
}

// DataConfig holds input dataset settings
type DataConfig struct {
	InputFile string
}

// AnalysisConfig holds significance testing settings
type AnalysisConfig struct {
	Alpha        float64
	AdjustMethod string
}

// ReportConfig holds report assembly settings
type ReportConfig struct {
	PartitionColumn string
	GroupColumn     string
	ValueColumn     string
	CategoryOrder   []string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Data: DataConfig{
			InputFile: getEnvOrDefault("INPUT_FILE", ""),
		},
		Analysis: AnalysisConfig{
			Alpha:        getEnvFloatOrDefault("ALPHA", 0.05),
			AdjustMethod: getEnvOrDefault("ADJUST_METHOD", "holm"),
		},
		Report: ReportConfig{
			PartitionColumn: getEnvOrDefault("PARTITION_COLUMN", "Enzyme"),
			GroupColumn:     getEnvOrDefault("GROUP_COLUMN", "Treatment"),
			ValueColumn:     getEnvOrDefault("VALUE_COLUMN", "Viability"),
			CategoryOrder:   getEnvListOrDefault("CATEGORY_ORDER", nil),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if config.Analysis.Alpha <= 0 || config.Analysis.Alpha >= 1 {
		return errors.ConfigInvalid("ALPHA must be in (0, 1)")
	}
	if err := analysis.AdjustMethod(config.Analysis.AdjustMethod).Validate(); err != nil {
		return errors.ConfigInvalid("ADJUST_METHOD must be \"holm\" or \"bonferroni\"")
	}
	if config.Report.PartitionColumn == "" || config.Report.GroupColumn == "" || config.Report.ValueColumn == "" {
		return errors.ConfigInvalid("partition, group, and value column names are required")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
