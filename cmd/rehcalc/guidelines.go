package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/rehtriage/internal/exitcode"
	"github.com/gyeh/rehtriage/internal/reh"
)

var guidelinesCmd = &cobra.Command{
	Use:   "guidelines [key]",
	Short: "Print the nursing guideline lists",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runGuidelines,
}

func init() {
	guidelinesCmd.Flags().StringVar(&cfg.Output, "output", "text", "Output format: text or json")
	rootCmd.AddCommand(guidelinesCmd)
}

func runGuidelines(cmd *cobra.Command, args []string) error {
	log := setup()

	entries := reh.All()
	if len(args) == 1 {
		g, ok := reh.Lookup(reh.GuidelineKey(args[0]))
		if !ok {
			log.Error().Str("key", args[0]).Strs("known", guidelineKeyNames()).Msg("unknown guideline key")
			os.Exit(exitcode.UsageError)
		}
		entries = []reh.Guideline{g}
	}

	w := cmd.OutOrStdout()
	if cfg.Output == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(entries); err != nil {
			log.Error().Err(err).Msg("failed to write output")
			os.Exit(exitcode.WriteError)
		}
		return nil
	}
	for i, g := range entries {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "[%s]\n", g.Key)
		for n, item := range g.Items {
			fmt.Fprintf(w, "  %d. %s\n", n+1, item)
		}
		if g.IcuNote != "" {
			fmt.Fprintf(w, "  ICU: %s\n", g.IcuNote)
		}
	}
	return nil
}

func guidelineKeyNames() []string {
	keys := reh.AllGuidelineKeys()
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = string(k)
	}
	return out
}
