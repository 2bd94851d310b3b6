package config

import (
	"os"
	"strconv"
	"time"

	"recipelens/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Dataset   DatasetConfig
	Detection DetectionConfig
	Server    ServerConfig
}

// DatasetConfig locates the dataset and bounds the analysis window
type DatasetConfig struct {
	Path      string
	Name      string
	DateStart time.Time
	DateEnd   time.Time
}

// DetectionConfig holds the outlier-detection thresholds
type DetectionConfig struct {
	StdThreshold    float64
	ZScoreThreshold float64
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port string
}

const dateLayout = "2006-01-02"

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	path := os.Getenv("RECIPES_DATASET")
	if path == "" {
		return nil, errors.ConfigInvalid("RECIPES_DATASET is required")
	}

	dateStart, err := getEnvDateOrDefault("DATE_START", time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		return nil, err
	}
	dateEnd, err := getEnvDateOrDefault("DATE_END", time.Date(2018, 12, 31, 0, 0, 0, 0, time.UTC))
	if err != nil {
		return nil, err
	}
	if dateEnd.Before(dateStart) {
		return nil, errors.ConfigInvalid("DATE_END is before DATE_START")
	}

	return &Config{
		Dataset: DatasetConfig{
			Path:      path,
			Name:      getEnvOrDefault("DATASET_NAME", "RAW_recipes"),
			DateStart: dateStart,
			DateEnd:   dateEnd,
		},
		Detection: DetectionConfig{
			StdThreshold:    getEnvFloatOrDefault("STD_THRESHOLD", 3.0),
			ZScoreThreshold: getEnvFloatOrDefault("ZSCORE_THRESHOLD", 3.0),
		},
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8080"),
		},
	}, nil
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

func getEnvDateOrDefault(key string, defaultValue time.Time) (time.Time, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, errors.ConfigInvalid(key + " must be a YYYY-MM-DD date")
	}
	return t, nil
}
