// Package config loads the settings the dropfour commands read from the
// environment (or a .env file in the working directory).
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	// Difficulty is the engine level 0-9.
	Difficulty int
	// ComputerFirst gives the first move to the computer.
	ComputerFirst bool
	// Parallel selects the fork-join root searcher.
	Parallel bool
	// Workers bounds the parallel searcher's pool; 0 means GOMAXPROCS.
	Workers int
	// Seed fixes the engine's randomization when nonzero.
	Seed int64
	// LogLevel is the slog level for command output.
	LogLevel slog.Level
}

// Load reads the environment, after merging in a .env file when one
// exists. Unset or malformed values fall back to the defaults.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Difficulty:    getEnvAsInt("DROPFOUR_DIFFICULTY", 4),
		ComputerFirst: getEnvAsBool("DROPFOUR_COMPUTER_FIRST", false),
		Parallel:      getEnvAsBool("DROPFOUR_PARALLEL", false),
		Workers:       getEnvAsInt("DROPFOUR_WORKERS", 0),
		Seed:          getEnvAsInt64("DROPFOUR_SEED", 0),
		LogLevel:      parseLevel(getEnv("DROPFOUR_LOG_LEVEL", "info")),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if v, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return v
	}
	return fallback
}

func getEnvAsInt64(key string, fallback int64) int64 {
	if v, err := strconv.ParseInt(getEnv(key, ""), 10, 64); err == nil {
		return v
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	if v, err := strconv.ParseBool(getEnv(key, "")); err == nil {
		return v
	}
	return fallback
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
