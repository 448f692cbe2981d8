package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"welcome-app/config"
	"welcome-app/logging"
	"welcome-app/routes"
)

const serviceName = "welcome-app"

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger, err := logging.New(serviceName, cfg.IsProduction())
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	ln, err := net.Listen("tcp", cfg.Addr())
	if err != nil {
		logger.Fatal("listen failed", zap.String("addr", cfg.Addr()), zap.Error(err))
	}

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, ln, cfg, logger); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}

// run serves on ln until ctx is cancelled, then drains in-flight requests
// within cfg.ShutdownTimeout.
func run(ctx context.Context, ln net.Listener, cfg *config.Config, logger *zap.Logger) error {
	srv := &http.Server{
		Handler:      routes.Handler(logger),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
		ErrorLog:     zap.NewStdLog(logger),
	}

	serveErr := make(chan error, 1)
	logger.Info("App running on "+cfg.URL(), zap.String("addr", ln.Addr().String()), zap.String("env", cfg.Env))
	go func() {
		serveErr <- srv.Serve(ln)
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
		logger.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	logger.Info("server stopped cleanly")
	return nil
}
