package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/gyeh/rehtriage/internal/config"
	"github.com/gyeh/rehtriage/internal/exitcode"
	"github.com/gyeh/rehtriage/internal/logging"
)

var (
	cfg      config.Config
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "rehcalc",
	Short: "REH triage scoring calculator",
	Long: "Computes SOFA, APACHE II, Charlson and priority scores, combines them into the " +
		"composite REH risk score, and maps it to nursing-care guidelines.",
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfg.LogFormat, "log-format", "text", "Log format: text or json")
	pf.StringVar(&logLevel, "log-level", "info", "Minimum log level")
	pf.StringVar(&cfg.ConfigPath, "config", "", "Path to YAML config file")
}

// setup builds the logger and loads the config file, exiting on failure.
func setup() zerolog.Logger {
	log, err := logging.SetupLevel(cfg.LogFormat, logLevel)
	if err != nil {
		log.Error().Err(err).Msg("invalid --log-level")
		os.Exit(exitcode.UsageError)
	}
	if err := cfg.Load(); err != nil {
		log.Error().Err(err).Str("config", cfg.ConfigPath).Msg("config load failed")
		os.Exit(exitcode.UsageError)
	}
	return log
}
