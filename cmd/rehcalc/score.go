package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/gyeh/rehtriage/internal/exitcode"
	"github.com/gyeh/rehtriage/internal/model"
	"github.com/gyeh/rehtriage/internal/normalize"
	"github.com/gyeh/rehtriage/internal/triage"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score evaluations described in a YAML or JSON file",
	RunE:  runScore,
}

func init() {
	f := scoreCmd.Flags()
	f.StringVar(&cfg.FilePath, "file", "", "Path to YAML/JSON evaluation file, one document per evaluation (required)")
	f.StringVar(&cfg.Output, "output", "text", "Output format: text or json")
	_ = scoreCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, args []string) error {
	log := setup()

	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	recs, err := readRecords(cfg.FilePath)
	if err != nil {
		log.Error().Err(err).Msg("failed to read evaluations")
		os.Exit(exitcode.ReadError)
	}

	results := make([]model.CompositeResult, 0, len(recs))
	for i, rec := range recs {
		canon, err := normalize.CanonicalRecord(rec)
		if err != nil {
			log.Error().Err(err).Int("document", i+1).Msg("invalid evaluation")
			os.Exit(exitcode.ValidationError)
		}
		results = append(results, triage.Evaluate(canon))
	}

	if cfg.Output == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			log.Error().Err(err).Msg("failed to write output")
			os.Exit(exitcode.WriteError)
		}
		return nil
	}
	for i, res := range results {
		if i > 0 {
			fmt.Fprintln(cmd.OutOrStdout())
		}
		printResult(cmd.OutOrStdout(), recs[i].Info.HN, &res)
	}
	return nil
}

// readRecords decodes every YAML document in path. JSON input is accepted as
// YAML.
func readRecords(path string) ([]model.PatientRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open evaluation file: %w", err)
	}
	defer f.Close()

	var out []model.PatientRecord
	dec := yaml.NewDecoder(f)
	for {
		var rec model.PatientRecord
		err := dec.Decode(&rec)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decode evaluation %d: %w", len(out)+1, err)
		}
		out = append(out, rec)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no evaluations in %s", path)
	}
	return out, nil
}

func printResult(w io.Writer, hn string, res *model.CompositeResult) {
	if hn != "" {
		fmt.Fprintf(w, "HN:              %s\n", hn)
	}
	fmt.Fprintf(w, "Ward:            %s\n", res.Ward)
	if s := res.AssessmentScore(); s != nil {
		fmt.Fprintf(w, "%-16s %d (REH %d)\n", string(res.AssessmentType)+":", *s, res.AssessmentRehScore)
	} else {
		fmt.Fprintf(w, "Assessment:      none (REH 0)\n")
	}
	fmt.Fprintf(w, "Priority:        REH %d\n", res.PriorityRehScore)
	fmt.Fprintf(w, "CCI:             %d (REH %d)\n", res.CciScore, res.CciRehScore)
	fmt.Fprintf(w, "Total REH:       %d\n", res.TotalRehScore)
	fmt.Fprintf(w, "Risk:            %s (%s)\n", strings.ToUpper(string(res.RiskLevel)), res.RiskLabel)
	fmt.Fprintf(w, "Guidelines (%s):\n", res.GuidelineKey)
	for _, g := range res.Guidelines {
		fmt.Fprintf(w, "  - %s\n", g)
	}
	if res.IcuCaseNote != "" {
		fmt.Fprintf(w, "Note: %s\n", res.IcuCaseNote)
	}
}
