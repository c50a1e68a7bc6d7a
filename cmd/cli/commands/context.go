package commands

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/varunisrani/thinkaiback-sub000/internal/config"
	"github.com/varunisrani/thinkaiback-sub000/pkg/clients/sheetsclient"
	"github.com/varunisrani/thinkaiback-sub000/pkg/core/model"
	"github.com/varunisrani/thinkaiback-sub000/pkg/core/schedule"
	"github.com/varunisrani/thinkaiback-sub000/pkg/core/services"
	"github.com/varunisrani/thinkaiback-sub000/pkg/postgres"
)

// AppContext holds the application dependencies shared across all commands.
// The database and the sheets client are opened on first use, so commands that
// only print plans need neither.
type AppContext struct {
	Env    string
	Cfg    *config.Config
	Logger *zap.Logger
	Ctx    context.Context

	// StartDate overrides the configured first shoot day (YYYY-MM-DD)
	StartDate string

	database     *postgres.DB
	sheetsClient *sheetsclient.Client
}

// EngineOptions returns the configured engine constants with command line overrides applied
func (app *AppContext) EngineOptions() (schedule.Options, error) {
	opts := app.Cfg.Engine
	if app.StartDate != "" {
		start, err := schedule.ParseDate(app.StartDate)
		if err != nil {
			return schedule.Options{}, err
		}
		opts.Calendar.Start = start
	}
	return opts, nil
}

// LoadProduction loads the production named by the first argument, or the configured one
func (app *AppContext) LoadProduction(args []string) (*model.Production, error) {
	path := app.Cfg.ProductionFile
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		return nil, fmt.Errorf("no production file given and productionFile is not configured")
	}
	return services.LoadProduction(path, app.Logger)
}

// Plan loads the production and assembles its plan
func (app *AppContext) Plan(args []string) (*schedule.Plan, error) {
	production, err := app.LoadProduction(args)
	if err != nil {
		return nil, err
	}

	opts, err := app.EngineOptions()
	if err != nil {
		return nil, err
	}

	return services.PlanShoot(app.Ctx, production, opts, app.Logger)
}

// Database connects to PostgreSQL and applies pending migrations
func (app *AppContext) Database() (*postgres.DB, error) {
	if app.database != nil {
		return app.database, nil
	}
	if app.Cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("databaseURL is not configured")
	}

	app.Logger.Info("Connecting to database")
	database, err := postgres.NewDB(app.Ctx, app.Cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := database.RunMigrations(app.Ctx); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	app.Logger.Debug("Database ready")

	app.database = database
	return database, nil
}

// SheetsClient loads the OAuth client file and authorizes a sheets client
func (app *AppContext) SheetsClient() (*sheetsclient.Client, error) {
	if app.sheetsClient != nil {
		return app.sheetsClient, nil
	}

	app.Logger.Info("Loading OAuth client configuration")
	oauthCfg, err := config.LoadOAuthClientWithEnv(app.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to load OAuth client config: %w", err)
	}

	app.Logger.Info("Initializing sheets client")
	client, err := sheetsclient.NewClient(app.Ctx, oauthCfg, app.Env, app.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets client: %w", err)
	}

	app.sheetsClient = client
	return client, nil
}

// Close releases whatever was opened
func (app *AppContext) Close() {
	if app.database != nil {
		app.database.Close()
		app.database = nil
	}
}
