package cli

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"pomodoro/solanum/internal/config"
	"pomodoro/solanum/internal/db"
	"pomodoro/solanum/internal/model"
	"pomodoro/solanum/internal/repository"
	"pomodoro/solanum/internal/sessionlog"
)

const shutdownTimeout = 5 * time.Second

// AppContext holds the dependencies shared by commands.
type AppContext struct {
	Config   config.Config
	Settings model.Settings
	Logger   *slog.Logger
	DB       *sql.DB
	Log      *sessionlog.Log

	logFile io.Closer
}

// NewAppContext opens the database and loads the session history. Logs go
// to logOutput, or to the configured log file when logOutput is nil.
func NewAppContext(ctx context.Context, logOutput io.Writer) (*AppContext, error) {
	cfg := config.Load()
	app := &AppContext{Config: cfg}

	if logOutput == nil {
		file, err := openLogFile(cfg.LogPath)
		if err != nil {
			return nil, err
		}
		app.logFile = file
		logOutput = file
	}
	app.Logger = slog.New(slog.NewTextHandler(logOutput, &slog.HandlerOptions{Level: cfg.LogLevel}))

	settings, err := config.LoadSettings(cfg.SettingsPath)
	if err != nil {
		app.Logger.Warn("using default settings", "path", cfg.SettingsPath, "error", err)
	}
	app.Settings = settings

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		app.closeLogFile()
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	app.DB = database

	app.Log = sessionlog.Load(ctx, repository.NewBlobRepository(database),
		sessionlog.WithLogger(app.Logger),
	)
	return app, nil
}

// SaveSettings writes settings to the settings file.
func (a *AppContext) SaveSettings(settings model.Settings) error {
	return config.SaveSettings(a.Config.SettingsPath, settings)
}

// Close waits for pending history writes, then closes the database.
func (a *AppContext) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	var firstErr error
	if a.Log != nil {
		if err := a.Log.Close(ctx); err != nil {
			a.Logger.Error("session history not saved on exit", "error", err)
			firstErr = err
		}
	}
	if a.DB != nil {
		if err := a.DB.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	a.closeLogFile()
	return firstErr
}

func (a *AppContext) closeLogFile() {
	if a.logFile != nil {
		_ = a.logFile.Close()
		a.logFile = nil
	}
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log dir: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return file, nil
}
