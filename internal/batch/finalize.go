package batch

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/gyeh/rehtriage/internal/model"
)

// Finalize moves the scored temp file onto the output path and logs the risk
// tier distribution.
func Finalize(log zerolog.Logger, pf *PreflightResult, res *ScoreResult) (time.Duration, error) {
	start := time.Now()

	if err := os.Rename(pf.TempPath, pf.OutputPath); err != nil {
		return 0, fmt.Errorf("rename scored output: %w", err)
	}
	log.Info().Str("output", pf.OutputPath).Msg("scored output written")

	ev := log.Info()
	for _, lvl := range model.AllRiskLevels {
		ev = ev.Int64(string(lvl), res.ByRiskLevel[lvl])
	}
	ev.Msg("risk tier distribution")

	return time.Since(start), nil
}
