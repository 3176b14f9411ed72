// Package config
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	LogLevel      string
	LogFormat     string
	LogFile       string
	PreviewValues int
}

const (
	FormatText = "text"
	FormatJSON = "json"

	DefaultPreviewValues = 6
)

// Load reads an optional .env file from the working directory, then the
// process environment. Missing or invalid values fall back to defaults.
func Load() *Config {
	godotenv.Load()

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	logFormat := os.Getenv("LOG_FORMAT")
	if logFormat == "" {
		logFormat = FormatText
	}

	preview := DefaultPreviewValues
	if raw := os.Getenv("POWER_GADGET_PREVIEW"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			preview = parsed
		}
	}

	return &Config{
		LogLevel:      logLevel,
		LogFormat:     logFormat,
		LogFile:       os.Getenv("LOG_FILE"),
		PreviewValues: preview,
	}
}
