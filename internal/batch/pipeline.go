// Package batch scores every evaluation in a Parquet export and writes the
// results to a scored Parquet file.
package batch

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/gyeh/rehtriage/internal/config"
	"github.com/gyeh/rehtriage/internal/model"
)

// Pipeline phases reported by PipelineError.
const (
	PhasePreflight = "preflight"
	PhaseScore     = "score"
	PhaseFinalize  = "finalize"
)

// PipelineError wraps an error with the phase where it occurred.
type PipelineError struct {
	Phase string
	Err   error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Phase, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// Run executes the full batch pipeline: preflight → score → finalize → cleanup.
func Run(ctx context.Context, log zerolog.Logger, cfg *config.Config) (*model.BatchSummary, error) {
	totalStart := time.Now()

	// Phase 1: Preflight
	log.Info().Str("file", cfg.FilePath).Msg("starting preflight")
	pf, err := Preflight(log, cfg.FilePath, cfg.OutPath, cfg.Force)
	if err != nil {
		return nil, &PipelineError{Phase: PhasePreflight, Err: err}
	}

	if pf.AlreadyScored {
		log.Info().
			Str("output", pf.OutputPath).
			Str("sha256", pf.FileSHA256).
			Msg("output already exists, skipping (use --force to re-score)")
		return &model.BatchSummary{
			InputPath:     pf.FilePath,
			OutputPath:    pf.OutputPath,
			InputSHA256:   pf.FileSHA256,
			BatchID:       pf.BatchID.String(),
			AlreadyScored: true,
			DurationTotal: time.Since(totalStart),
		}, nil
	}

	// Phase 2: Score
	log.Info().Strs("assessment_types", cfg.AssessmentTypes).Msg("starting scoring")
	scoreResult, err := Score(ctx, log, pf, cfg.AllowedAssessments())
	if err != nil {
		cleanupAfterFailure(log, pf, cfg.KeepTemp)
		return nil, &PipelineError{Phase: PhaseScore, Err: err}
	}

	// Phase 3: Finalize
	log.Info().Msg("finalizing")
	finalizeDur, err := Finalize(log, pf, scoreResult)
	if err != nil {
		cleanupAfterFailure(log, pf, cfg.KeepTemp)
		return nil, &PipelineError{Phase: PhaseFinalize, Err: err}
	}

	summary := &model.BatchSummary{
		InputPath:        pf.FilePath,
		OutputPath:       pf.OutputPath,
		InputSHA256:      pf.FileSHA256,
		BatchID:          pf.BatchID.String(),
		RowsRead:         scoreResult.RowsRead,
		RowsScored:       scoreResult.RowsScored,
		RowsSkipped:      scoreResult.RowsSkipped,
		RowsRejected:     scoreResult.RowsRejected,
		RowsByRiskLevel:  scoreResult.ByRiskLevel,
		RowsByAssessment: scoreResult.ByAssessment,
		DurationScore:    scoreResult.Duration,
		DurationFinalize: finalizeDur,
		DurationTotal:    time.Since(totalStart),
	}

	log.Info().
		Int64("rows_read", summary.RowsRead).
		Int64("rows_scored", summary.RowsScored).
		Int64("rows_skipped", summary.RowsSkipped).
		Int64("rows_rejected", summary.RowsRejected).
		Str("total_duration", summary.DurationTotal.String()).
		Msg("batch pipeline complete")

	return summary, nil
}

// Phase 4: Cleanup of the partial output, only on failure.
func cleanupAfterFailure(log zerolog.Logger, pf *PreflightResult, keep bool) {
	if keep {
		log.Warn().Str("temp", pf.TempPath).Msg("keeping partial output")
		return
	}
	if err := Cleanup(log, pf.TempPath); err != nil {
		log.Warn().Err(err).Msg("temp cleanup failed (non-fatal)")
	}
}
