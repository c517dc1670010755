package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"xrate/internal/config"
	"xrate/internal/provider"
	"xrate/internal/repository"
	"xrate/internal/service"
)

// App holds all application dependencies and manages their lifecycle.
type App struct {
	cfg        *config.Config
	logger     *zap.SugaredLogger
	db         *sql.DB
	httpServer *http.Server
}

// NewApp initializes all dependencies and returns a ready-to-run App.
func NewApp(cfg *config.Config, logger *zap.SugaredLogger) (*App, error) {
	app := &App{
		cfg:    cfg,
		logger: logger,
	}

	if err := app.initStorage(); err != nil {
		_ = app.close()
		return nil, err
	}

	if err := app.initServices(); err != nil {
		_ = app.close()
		return nil, err
	}

	return app, nil
}

// close releases the database connection pool, if any.
func (app *App) close() error {
	if app.db == nil {
		return nil
	}
	if err := app.db.Close(); err != nil {
		return fmt.Errorf("db close: %w", err)
	}
	return nil
}

func (app *App) initStorage() error {
	if !app.cfg.Database.Enabled {
		app.logger.Infow("Lookup history disabled")
		return nil
	}

	db, err := repository.NewPostgresDB(&app.cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to Postgres: %w", err)
	}
	app.db = db

	if err := repository.RunMigrations(app.db, app.logger); err != nil {
		return fmt.Errorf("run DB migrations: %w", err)
	}
	app.logger.Infow("Lookup history enabled", "host", app.cfg.Database.Host, "db", app.cfg.Database.Name)
	return nil
}

func (app *App) initServices() error {
	fixer, err := provider.NewFixerProvider(provider.FixerConfig{
		BaseURL:   app.cfg.Fixer.BaseURL,
		AccessKey: app.cfg.Fixer.AccessKey,
		Timeout:   app.cfg.Fixer.TimeoutDuration(),
	})
	if err != nil {
		return fmt.Errorf("configure rate provider: %w", err)
	}

	var history repository.LookupRepository
	if app.db != nil {
		history = repository.NewPostgresLookupRepository(app.db)
	}

	rateService := service.NewRateService(fixer, history, app.logger)
	app.initHTTP(rateService)
	return nil
}

// Run starts the HTTP server, blocking until the context is canceled.
func (app *App) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		app.logger.Infow("HTTP server listening", "port", app.cfg.Server.Port)
		if err := app.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	// Graceful shutdown: triggered by context cancellation (signal or server failure).
	g.Go(func() error {
		<-ctx.Done()
		return app.shutdown()
	})

	return g.Wait()
}

// shutdown drains in-flight HTTP requests before closing the database.
func (app *App) shutdown() error {
	app.logger.Infow("Shutting down server...")

	var errs []error

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.httpServer.Shutdown(shutdownCtx); err != nil {
		app.logger.Errorw("HTTP server shutdown error", "error", err)
		errs = append(errs, fmt.Errorf("http shutdown: %w", err))
	}

	if err := app.close(); err != nil {
		app.logger.Errorw("Connection cleanup errors", "error", err)
		errs = append(errs, err)
	}

	app.logger.Infow("Shutdown complete")
	return errors.Join(errs...)
}
