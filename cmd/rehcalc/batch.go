package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/gyeh/rehtriage/internal/batch"
	"github.com/gyeh/rehtriage/internal/exitcode"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Score a Parquet evaluation export into a scored Parquet file",
	RunE:  runBatch,
}

func init() {
	f := batchCmd.Flags()
	f.StringVar(&cfg.FilePath, "file", "", "Path to Parquet file (required)")
	f.StringVar(&cfg.OutPath, "out", "", "Output path (default <file>.scored.parquet)")
	f.BoolVar(&cfg.Force, "force", false, "Re-score even if the output already exists")
	f.BoolVar(&cfg.KeepTemp, "keep-temp", false, "Keep the partial output when a run fails")
	_ = batchCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	log := setup()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cfg.ValidateWithOutput(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	summary, err := batch.Run(ctx, log, &cfg)
	if err != nil {
		var pe *batch.PipelineError
		if errors.As(err, &pe) {
			log.Error().Err(pe.Err).Str("phase", pe.Phase).Msg("batch failed")
			switch pe.Phase {
			case batch.PhasePreflight:
				os.Exit(exitcode.ValidationError)
			case batch.PhaseScore:
				os.Exit(exitcode.ScoreError)
			default:
				os.Exit(exitcode.WriteError)
			}
		}
		log.Error().Err(err).Msg("batch failed")
		os.Exit(exitcode.ScoreError)
	}

	if summary.AlreadyScored {
		fmt.Fprintf(cmd.OutOrStdout(), "Already scored: %s\n", summary.OutputPath)
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Batch complete: %d rows scored, %d skipped, %d rejected → %s (%.1fs)\n",
		summary.RowsScored, summary.RowsSkipped, summary.RowsRejected, summary.OutputPath, summary.DurationTotal.Seconds())
	return nil
}
