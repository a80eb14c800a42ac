package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/rehtriage/internal/batch"
	"github.com/gyeh/rehtriage/internal/exitcode"
	"github.com/gyeh/rehtriage/internal/model"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Dry-run validation and risk tier stats (no writes)",
	RunE:  runPlan,
}

func init() {
	f := planCmd.Flags()
	f.StringVar(&cfg.FilePath, "file", "", "Path to Parquet file (required)")
	f.Int64Var(&cfg.SampleSize, "sample", 1000, "Rows to score for the estimate (0 = all)")
	_ = planCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	log := setup()

	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	p, err := batch.Plan(log, cfg.FilePath, cfg.AllowedAssessments(), cfg.SampleSize)
	if err != nil {
		log.Error().Err(err).Msg("plan failed")
		os.Exit(exitcode.ValidationError)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, "=== rehcalc plan ===")
	fmt.Fprintf(w, "File:       %s\n", p.FilePath)
	fmt.Fprintf(w, "SHA-256:    %s\n", p.FileSHA256)
	fmt.Fprintf(w, "Size:       %d bytes\n", p.FileSize)
	fmt.Fprintf(w, "Total rows: %d\n", p.NumRows)
	fmt.Fprintf(w, "Sampled:    %d rows (%d rejected, %d skipped)\n", p.Sampled, p.Rejected, p.Skipped)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Assessment mix (sampled):")
	for _, at := range model.AllAssessmentTypes {
		count := p.ByAssessment[at]
		fmt.Fprintf(w, "  %-8s %6d sampled → ~%d projected\n", at, count, p.Projected(count))
	}
	fmt.Fprintln(w, "Risk tiers (sampled):")
	for _, lvl := range model.AllRiskLevels {
		count := p.ByRiskLevel[lvl]
		fmt.Fprintf(w, "  %-8s %6d sampled → ~%d projected\n", lvl, count, p.Projected(count))
	}
	fmt.Fprintln(w, "\nSchema validation: OK")

	return nil
}
