package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/gyeh/rehtriage/internal/config"
	"github.com/gyeh/rehtriage/internal/exitcode"
	"github.com/gyeh/rehtriage/internal/logging"
	"github.com/gyeh/rehtriage/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the stateless HTTP scoring API",
	Long: "Serves the scoring API. REHCALC_ADDR, REHCALC_LOG_FORMAT and REHCALC_ENV are read " +
		"from the environment or a local .env file. --config limits the assessment types scored.",
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	bootLog := setup()

	scfg, err := config.LoadServer()
	if err != nil {
		bootLog.Error().Err(err).Msg("failed to load server config")
		os.Exit(exitcode.UsageError)
	}

	base, err := logging.SetupLevel(scfg.LogFormat, logLevel)
	if err != nil {
		bootLog.Error().Err(err).Msg("invalid --log-level")
		os.Exit(exitcode.UsageError)
	}
	log := logging.Component(base, "server").With().
		Str("env", scfg.Env).
		Strs("assessment_types", cfg.AssessmentTypes).
		Logger()
	if scfg.IsDev() {
		log.Warn().Msg("running in development mode")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx, server.New(log, cfg.AllowedAssessments()), scfg.Addr, log); err != nil {
		log.Error().Err(err).Msg("server error")
		os.Exit(exitcode.ServeError)
	}
	return nil
}
