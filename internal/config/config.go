// Package config provides configuration loading from environment variables.
package config

import (
	"os"
	"strconv"

	"github.com/markovml/pandas-ai/pkg/types"
)

// Defaults for processing limits.
const (
	DefaultHistoryMaxItems = 256
	DefaultBatchWorkers    = 8
	DefaultBatchMaxResults = 200
	DefaultMaxResultBytes  = 1_000_000
)

// Config holds all configuration for the MCP server.
type Config struct {
	HintStyle types.HintStyle // HINT_STYLE, "standard" or "chart", default "standard"

	HistoryMaxItems int // HISTORY_MAX_ITEMS, default 256 (0 disables history)
	BatchWorkers    int // BATCH_WORKERS, default 8
	BatchMaxResults int // BATCH_MAX_RESULTS, default 200
	MaxResultBytes  int // MAX_RESULT_BYTES, default 1_000_000 per payload

	// Logging configuration
	LogLevel      string // LOG_LEVEL, default "info"
	LogFormat     string // LOG_FORMAT, "text" or "json", default "text"
	LogFile       string // LOG_FILE, default "" (stderr only)
	LogMaxSizeMB  int    // LOG_MAX_SIZE_MB, default 10
	LogMaxBackups int    // LOG_MAX_BACKUPS, default 3
	LogMaxAgeDays int    // LOG_MAX_AGE_DAYS, default 28
	LogCompress   bool   // LOG_COMPRESS, default true
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		HintStyle: hintStyle(getEnvString("HINT_STYLE", string(types.HintStandard))),

		HistoryMaxItems: getEnvInt("HISTORY_MAX_ITEMS", DefaultHistoryMaxItems),
		BatchWorkers:    getEnvInt("BATCH_WORKERS", DefaultBatchWorkers),
		BatchMaxResults: getEnvInt("BATCH_MAX_RESULTS", DefaultBatchMaxResults),
		MaxResultBytes:  getEnvInt("MAX_RESULT_BYTES", DefaultMaxResultBytes),

		LogLevel:      getEnvString("LOG_LEVEL", "info"),
		LogFormat:     getEnvString("LOG_FORMAT", "text"),
		LogFile:       getEnvString("LOG_FILE", ""),
		LogMaxSizeMB:  getEnvInt("LOG_MAX_SIZE_MB", 10),
		LogMaxBackups: getEnvInt("LOG_MAX_BACKUPS", 3),
		LogMaxAgeDays: getEnvInt("LOG_MAX_AGE_DAYS", 28),
		LogCompress:   getEnvBool("LOG_COMPRESS", true),
	}
}

func hintStyle(s string) types.HintStyle {
	if s == string(types.HintChart) {
		return types.HintChart
	}
	return types.HintStandard
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if v := os.Getenv(key); v != "" {
		switch v {
		case "1", "true", "yes", "on":
			return true
		case "0", "false", "no", "off":
			return false
		}
	}
	return defaultVal
}
