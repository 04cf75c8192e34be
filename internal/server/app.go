// Package server wires the application together: configuration, database,
// migrations, services, guards, the GraphQL schema and the HTTP server.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/taskkeeper/internal/logging"
	"github.com/dmitrijs2005/taskkeeper/internal/server/config"
	"github.com/dmitrijs2005/taskkeeper/internal/server/graphql"
	"github.com/dmitrijs2005/taskkeeper/internal/server/guard"
	"github.com/dmitrijs2005/taskkeeper/internal/server/httpserver"
	"github.com/dmitrijs2005/taskkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/taskkeeper/internal/server/services"

	_ "github.com/jackc/pgx/v5/stdlib"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	http   *httpserver.HTTPServer
}

// NewApp builds the whole dependency graph in order. Every component
// receives its collaborators explicitly; nothing reaches for globals.
func NewApp(cfg *config.Config) (*App, error) {

	slogger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(slogger)

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	m := repomanager.NewPostgresRepositoryManager()
	if err := m.RunMigrations(context.Background(), db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	authService := services.NewAuthService(db, m, cfg)
	userService := services.NewUserService(db, m, cfg)
	taskService := services.NewTaskService(db, m)

	credGuard := guard.NewCredentialGuard(authService)
	tokenGuard := guard.NewTokenGuard(authService)

	resolver := graphql.NewResolver(logger, authService, userService, taskService, credGuard, tokenGuard)
	schema, err := graphql.NewSchema(resolver)
	if err != nil {
		return nil, fmt.Errorf("schema init error: %w", err)
	}

	httpServer := httpserver.NewHTTPServer(cfg.EndpointAddrHTTP, logger, schema)

	return &App{config: cfg, logger: logger, db: db, http: httpServer}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if err := app.http.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "Error closing database", "error", err.Error())
	}
}
