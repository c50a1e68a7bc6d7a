package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/varunisrani/thinkaiback-sub000/cmd/cli/commands"
	"github.com/varunisrani/thinkaiback-sub000/internal/config"
	"github.com/varunisrani/thinkaiback-sub000/pkg/utils/logging"
)

var (
	env        string
	configPath string
	verbose    bool
	app        = &commands.AppContext{}
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	app.Ctx = ctx

	rootCmd := &cobra.Command{
		Use:   "planner",
		Short: "Production scheduling and eighths estimation",
		Long: `A CLI tool that turns a scene breakdown into a shooting plan: eighths and time
estimates, location order, shoot days, Day-Out-of-Days, department needs,
labour rule checks and a stripboard.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			app.Close()
			if app.Logger != nil {
				_ = app.Logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (required: test, prod, etc.)")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (default production_config.<env>.yaml)")
	rootCmd.PersistentFlags().StringVar(&app.StartDate, "start", "", "First shoot day, YYYY-MM-DD (overrides engine.calendar.start)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to the console")
	_ = rootCmd.MarkPersistentFlagRequired("env")

	rootCmd.AddCommand(commands.PlanCmd(app))
	rootCmd.AddCommand(commands.EighthsCmd(app))
	rootCmd.AddCommand(commands.DOOPCmd(app))
	rootCmd.AddCommand(commands.LocationsCmd(app))
	rootCmd.AddCommand(commands.DepartmentsCmd(app))
	rootCmd.AddCommand(commands.ComplianceCmd(app))
	rootCmd.AddCommand(commands.PlansCmd(app))

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if app.Logger != nil {
			app.Logger.Error("Command failed", zap.Error(err))
			_ = app.Logger.Sync()
		}
		os.Exit(1)
	}
}

// initApp loads configuration and sets up the logger. Database and sheets
// clients are opened by the commands that need them.
func initApp() error {
	var err error
	app.Env = env

	if configPath != "" {
		app.Cfg, err = config.LoadFromPath(configPath)
	} else {
		app.Cfg, err = config.LoadWithEnv(env)
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	app.Logger, err = logging.InitLogger(logging.Options{
		Env:     env,
		Dir:     app.Cfg.LogDir,
		Verbose: verbose,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.Logger.Debug("Configuration loaded",
		zap.String("environment", env),
		zap.String("production_file", app.Cfg.ProductionFile),
		zap.Bool("database_configured", app.Cfg.DatabaseURL != ""))

	return nil
}
