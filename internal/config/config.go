package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const appName = "solanum"

type Config struct {
	ListenAddr   string
	DBPath       string
	SettingsPath string
	LogPath      string
	LogLevel     slog.Level
	CORSOrigins  []string
	// HistoryLimit is the default number of records listed by history views.
	HistoryLimit int
}

func Load() Config {
	dataDir := DataDir()
	return Config{
		ListenAddr:   getEnv("POMODORO_LISTEN_ADDR", "127.0.0.1:7425"),
		DBPath:       getEnv("POMODORO_DB_PATH", filepath.Join(dataDir, "pomodoro.db")),
		SettingsPath: getEnv("POMODORO_CONFIG", SettingsPath()),
		LogPath:      getEnv("POMODORO_LOG_PATH", filepath.Join(dataDir, "pomodoro.log")),
		LogLevel:     ParseLogLevel(getEnv("POMODORO_LOG_LEVEL", "info")),
		CORSOrigins:  getEnvList("POMODORO_CORS_ORIGINS", []string{"http://localhost:5173", "http://127.0.0.1:5173"}),
		HistoryLimit: getEnvInt("POMODORO_HISTORY_LIMIT", 20),
	}
}

// DataDir is where the database and log file live.
func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", appName)
}

// SettingsPath is the default location of the settings file.
func SettingsPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName, "config.yaml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", appName, "config.yaml")
}

// ParseLogLevel maps debug, info, warn and error to slog levels.
// Anything else is info.
func ParseLogLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvList(key string, fallback []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	parts := strings.Split(value, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			items = append(items, trimmed)
		}
	}
	if len(items) == 0 {
		return fallback
	}
	return items
}
