package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"frtSuite/internal/browser"
	"frtSuite/internal/cli/ui"
	"frtSuite/internal/config"
	"frtSuite/internal/database"
	"frtSuite/internal/logger"
	"frtSuite/internal/migrations"
	"frtSuite/internal/report"
	"frtSuite/internal/suite"

	"go.uber.org/zap"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run returns the process exit status. args are feature paths.
func run(args []string) int {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Logger.Env, cfg.Logger.Level)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tally := &report.Tally{}
	recorders := []report.Recorder{tally}

	if cfg.Database.Enabled() {
		if err := migrations.Run(cfg, log.Logger); err != nil {
			log.Error("migrations failed", zap.Error(err))
			return 1
		}

		db, err := database.New(cfg, log.Logger)
		if err != nil {
			log.Error("database connection failed", zap.Error(err))
			return 1
		}
		defer db.Close(log.Logger)

		recorders = append(recorders, report.NewDatabaseRecorder(database.NewRunRepository(db.DB), log.Logger))
	}

	launcher := browser.NewLauncher(suite.BrowserConfig(cfg.Browser), log.Logger)

	opts := suite.OptionsFromConfig(cfg, args)
	opts.Output = os.Stdout

	ui.PrintBanner(os.Stdout, opts.BaseURL, opts.Browser)

	s := suite.New(opts, launcher, report.Multi(recorders...), log.Logger)

	status := s.Run(ctx)
	ui.PrintSummary(os.Stdout, tally.Summary())
	return status
}
