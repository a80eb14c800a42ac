package batch

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/gyeh/rehtriage/internal/model"
	"github.com/gyeh/rehtriage/internal/normalize"
	"github.com/gyeh/rehtriage/internal/parquetio"
	"github.com/gyeh/rehtriage/internal/triage"
)

// PlanResult is the dry-run report of a batch input.
type PlanResult struct {
	FilePath     string
	FileSHA256   string
	FileSize     int64
	NumRows      int64
	Sampled      int64
	Rejected     int64
	Skipped      int64
	ByRiskLevel  map[model.RiskLevel]int64
	ByAssessment map[model.AssessmentType]int64
}

// Projected scales a sampled count to the whole file.
func (p *PlanResult) Projected(count int64) int64 {
	if p.Sampled == 0 {
		return 0
	}
	return count * p.NumRows / p.Sampled
}

// Plan validates the input and scores up to sampleSize rows without writing
// anything. A sampleSize <= 0 scores every row.
func Plan(log zerolog.Logger, filePath string, allowed map[model.AssessmentType]bool, sampleSize int64) (*PlanResult, error) {
	sha, err := normalize.FileHash(filePath)
	if err != nil {
		return nil, fmt.Errorf("plan hash: %w", err)
	}
	stat, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("plan stat: %w", err)
	}

	reader, err := parquetio.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("plan open: %w", err)
	}
	defer reader.Close()

	if err := parquetio.ValidateSchema(reader.Schema()); err != nil {
		return nil, fmt.Errorf("plan validate: %w", err)
	}

	p := &PlanResult{
		FilePath:     filePath,
		FileSHA256:   sha,
		FileSize:     stat.Size(),
		NumRows:      reader.NumRows(),
		ByRiskLevel:  make(map[model.RiskLevel]int64),
		ByAssessment: make(map[model.AssessmentType]int64),
	}
	if sampleSize <= 0 || sampleSize > p.NumRows {
		sampleSize = p.NumRows
	}

	buf := make([]model.EvaluationRow, 256)
	for p.Sampled < sampleSize {
		n, readErr := reader.Read(buf)
		for i := 0; i < n && p.Sampled < sampleSize; i++ {
			p.Sampled++
			rec, err := normalize.ToPatientRecord(&buf[i])
			if err != nil {
				p.Rejected++
				log.Debug().Err(err).Int64("row", p.Sampled).Msg("sample row rejected")
				continue
			}
			if !allowed[rec.AssessmentType] {
				p.Skipped++
				continue
			}
			res := triage.Evaluate(rec)
			p.ByRiskLevel[res.RiskLevel]++
			p.ByAssessment[res.AssessmentType]++
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return nil, fmt.Errorf("plan read sample: %w", readErr)
		}
	}
	return p, nil
}
