package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"pomodoro/solanum/internal/feedback"
	"pomodoro/solanum/internal/handler"
	"pomodoro/solanum/internal/router"
	"pomodoro/solanum/internal/service"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the timer behind a local control API",
	Long: `Run the timer headless and expose it over HTTP on a loopback address.

Examples:
  pomodoro serve                        # Listen on 127.0.0.1:7425
  pomodoro serve --addr 127.0.0.1:9000  # Listen elsewhere
  curl -X POST localhost:7425/api/timer/start`,
	RunE: runServe,
}

var serveAddr string

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", "", "Address to listen on (default from POMODORO_LISTEN_ADDR)")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return Serve(ctx, serveAddr)
}

// Serve runs a headless timer behind the control API until ctx is done.
// An empty addr uses the configured listen address.
func Serve(ctx context.Context, addr string) error {
	app, err := NewAppContext(ctx, os.Stderr)
	if err != nil {
		return err
	}
	defer app.Close()

	if addr == "" {
		addr = app.Config.ListenAddr
	}
	if !isLoopback(addr) {
		app.Logger.Warn("control api is reachable from other hosts", "addr", addr)
	}

	timer := newTimer(app, func(note feedback.Notification) {
		app.Logger.Info(note.Title, "body", note.Body)
	})
	defer timer.Close()
	analytics := service.NewAnalyticsService(app.Log, nil)

	gin.SetMode(gin.ReleaseMode)
	engine := router.New(
		handler.NewTimerHandler(timer),
		handler.NewSettingsHandler(timer, app.SaveSettings, app.Logger),
		handler.NewHistoryHandler(timer, analytics, app.Config.HistoryLimit, app.Logger),
		app.Config.CORSOrigins,
		app.Logger,
	)

	server := &http.Server{
		Addr:              addr,
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.ListenAndServe()
	}()
	app.Logger.Info("control api listening", "addr", addr)

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("run server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	app.Logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown server: %w", err)
	}
	return nil
}
