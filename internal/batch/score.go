package batch

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gyeh/rehtriage/internal/model"
	"github.com/gyeh/rehtriage/internal/normalize"
	"github.com/gyeh/rehtriage/internal/parquetio"
	"github.com/gyeh/rehtriage/internal/triage"
)

const (
	readBatchSize  = 1024
	writeBatchSize = 512
)

// ScoreResult holds metrics from the scoring phase.
type ScoreResult struct {
	RowsRead     int64
	RowsScored   int64
	RowsSkipped  int64
	RowsRejected int64
	ByRiskLevel  map[model.RiskLevel]int64
	ByAssessment map[model.AssessmentType]int64
	Duration     time.Duration
}

type scoreJob struct {
	rowNum  int64
	rowHash []byte
	rec     model.PatientRecord
}

// Score streams rows from the input, converts them to records in a producer
// goroutine, and evaluates and writes them to pf.TempPath. Rows whose
// assessment type is not in allowed are skipped; rows that cannot be
// converted are rejected.
func Score(ctx context.Context, log zerolog.Logger, pf *PreflightResult, allowed map[model.AssessmentType]bool) (*ScoreResult, error) {
	start := time.Now()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	reader, err := parquetio.Open(pf.FilePath)
	if err != nil {
		return nil, fmt.Errorf("score open: %w", err)
	}
	defer reader.Close()

	writer, err := parquetio.Create(pf.TempPath)
	if err != nil {
		return nil, fmt.Errorf("score create output: %w", err)
	}

	ch := make(chan scoreJob, readBatchSize)
	errCh := make(chan error, 1)

	var rowsRead, rowsSkipped, rowsRejected int64

	// Producer goroutine: read Parquet → normalize → push to channel
	go func() {
		defer close(ch)
		buf := make([]model.EvaluationRow, readBatchSize)
		var rowNum int64

		for {
			if err := ctx.Err(); err != nil {
				errCh <- err
				return
			}
			n, readErr := reader.Read(buf)
			for i := 0; i < n; i++ {
				rowNum++
				rowsRead++

				rec, normErr := normalize.ToPatientRecord(&buf[i])
				if normErr != nil {
					rowsRejected++
					log.Warn().Err(normErr).Str("source", normalize.Describe(rowNum, &buf[i])).Msg("row rejected")
					continue
				}
				if !allowed[rec.AssessmentType] {
					rowsSkipped++
					continue
				}

				select {
				case ch <- scoreJob{rowNum: rowNum, rowHash: normalize.RowHash(rowNum, &buf[i]), rec: rec}:
				case <-ctx.Done():
					errCh <- ctx.Err()
					return
				}
			}
			if readErr == io.EOF {
				break
			}
			if readErr != nil {
				errCh <- fmt.Errorf("read parquet at row %d: %w", rowNum, readErr)
				return
			}
		}
		errCh <- nil
	}()

	// Consumer: evaluate and write in batches
	res := &ScoreResult{
		ByRiskLevel:  make(map[model.RiskLevel]int64),
		ByAssessment: make(map[model.AssessmentType]int64),
	}
	pending := make([]model.ScoredRow, 0, writeBatchSize)
	var writeErr error
	for job := range ch {
		if writeErr != nil {
			continue
		}
		row := scoredRow(pf.BatchID, job)
		pending = append(pending, *row)
		res.ByRiskLevel[model.RiskLevel(row.RiskLevel)]++
		res.ByAssessment[model.AssessmentType(row.AssessmentType)]++
		if len(pending) == writeBatchSize {
			if writeErr = writer.Write(pending); writeErr != nil {
				cancel()
			}
			pending = pending[:0]
		}
	}
	if writeErr == nil && len(pending) > 0 {
		writeErr = writer.Write(pending)
	}
	closeErr := writer.Close()

	// Wait for producer to finish
	prodErr := <-errCh
	if writeErr != nil {
		return nil, fmt.Errorf("score write: %w", writeErr)
	}
	if prodErr != nil {
		return nil, fmt.Errorf("score producer: %w", prodErr)
	}
	if closeErr != nil {
		return nil, fmt.Errorf("score close output: %w", closeErr)
	}

	res.RowsRead = rowsRead
	res.RowsScored = writer.Rows()
	res.RowsSkipped = rowsSkipped
	res.RowsRejected = rowsRejected
	res.Duration = time.Since(start)

	log.Info().
		Int64("rows_read", res.RowsRead).
		Int64("rows_scored", res.RowsScored).
		Int64("rows_skipped", res.RowsSkipped).
		Int64("rows_rejected", res.RowsRejected).
		Str("duration", res.Duration.String()).
		Float64("rows_per_sec", float64(res.RowsScored)/res.Duration.Seconds()).
		Msg("scoring complete")

	return res, nil
}

func scoredRow(batchID uuid.UUID, job scoreJob) *model.ScoredRow {
	result := triage.Evaluate(job.rec)
	row := model.NewScoredRow(&result)
	row.EvaluationID = uuid.NewSHA1(batchID, job.rowHash).String()
	row.BatchID = batchID.String()
	row.SourceRowNumber = job.rowNum
	row.SourceRowHash = job.rowHash
	row.HN = job.rec.Info.HN
	row.EvaluatedOn = normalize.FormatDate(job.rec.EvaluatedOn)
	return row
}
