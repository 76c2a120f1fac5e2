package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	httpadapter "mesa-roi/internal/adapter/http"
	"mesa-roi/internal/adapter/metrics"
	"mesa-roi/internal/adapter/model"
	"mesa-roi/internal/adapter/postgres"
	"mesa-roi/internal/adapter/usecase"
	"mesa-roi/internal/config"
	"mesa-roi/internal/db"
)

// main is the entry point of the planning service. It loads configuration,
// optionally runs database migrations, initializes the database pool, the
// predictor and the usecase, then serves the dashboard API. On receiving a
// termination signal it gracefully shuts down the server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}
	logger := cfg.Log.New(os.Stdout).With(slog.String("env", cfg.Env))

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String(), logger); err != nil {
			logger.Error("migration error", slog.Any("error", err))
			return
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		return
	}
	defer pool.Close()

	predictor, err := model.New(cfg.Model)
	if err != nil {
		logger.Error("model load error", slog.Any("error", err))
		return
	}
	opts, err := cfg.Planner.Options()
	if err != nil {
		logger.Error("planner config error", slog.Any("error", err))
		return
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	repo := postgres.NewPlanRepository(pool)
	svc := usecase.NewPlanUseCase(repo, predictor, opts, logger, metrics.NewPlanner(reg))

	handler := httpadapter.NewHandler(svc, logger, reg, cfg.HTTP.MaxBodyBytes)
	srv := &http.Server{
		Addr:        fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:     handler.Router(),
		ReadTimeout: cfg.HTTP.ReadTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		exitCode = 0
	case err = <-serveErr:
		logger.Error("server error", slog.Any("error", err))
		return
	}

	shutdownCtx, stop := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer stop()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		exitCode = 1
	} else {
		logger.Info("server gracefully stopped")
	}
}
