package batch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/parquet-go/parquet-go"
	"github.com/rs/zerolog"

	"github.com/gyeh/rehtriage/internal/config"
	"github.com/gyeh/rehtriage/internal/model"
	"github.com/gyeh/rehtriage/internal/parquetio"
)

func strPtr(s string) *string { return &s }

// fixtureRows holds one high-risk SOFA row, one APACHE row, one row with an
// unknown ward and one low-risk SOFA row.
func fixtureRows() []model.EvaluationRow {
	return []model.EvaluationRow{
		{
			HN:              "HN1",
			Ward:            "ward",
			AssessmentType:  "SOFA",
			Priority:        "2",
			SofaRespiration: strPtr("250"),
			SofaPlatelets:   strPtr("120"),
			SofaBilirubin:   strPtr("1.5"),
			SofaRenal:       strPtr("1.5"),
			Comorbidities:   []string{"dm", "htn"},
		},
		{
			HN:             "HN2",
			Ward:           "ICU",
			AssessmentType: "APACHE",
			Priority:       "4",
			EvaluatedOn:    strPtr("2024-03-05"),
			ApacheAge:      strPtr("70"),
			ApacheGCS:      strPtr("10"),
		},
		{
			HN:             "HN3",
			Ward:           "OR",
			AssessmentType: "SOFA",
			Priority:       "1",
		},
		{
			HN:             "HN4",
			Ward:           "AE",
			AssessmentType: "SOFA",
			Priority:       "4",
			Comorbidities:  []string{"pcnr"},
		},
	}
}

func writeFixture(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	in := filepath.Join(dir, "evals.parquet")
	if err := parquetio.WriteEvaluations(in, fixtureRows()); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return in, filepath.Join(dir, "evals.scored.parquet")
}

func TestRun_ScoresAllAcceptedRows(t *testing.T) {
	in, out := writeFixture(t)
	cfg := &config.Config{FilePath: in, OutPath: out}

	summary, err := Run(context.Background(), zerolog.Nop(), cfg)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.RowsRead != 4 || summary.RowsScored != 3 || summary.RowsRejected != 1 || summary.RowsSkipped != 0 {
		t.Errorf("unexpected counts: %+v", summary)
	}
	if summary.RowsByRiskLevel[model.RiskHigh] != 1 {
		t.Errorf("expected 1 high-risk row, got %v", summary.RowsByRiskLevel)
	}

	rows, err := parquetio.ReadScored(out)
	if err != nil {
		t.Fatalf("ReadScored: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 scored rows, got %d", len(rows))
	}
	for _, r := range rows {
		if r.TotalRehScore != r.AssessmentRehScore+r.PriorityRehScore+r.CciRehScore {
			t.Errorf("row %d breaks the total invariant: %+v", r.SourceRowNumber, r)
		}
		if r.BatchID != summary.BatchID || r.EvaluationID == "" || len(r.SourceRowHash) != 32 {
			t.Errorf("row %d identity fields not set: %+v", r.SourceRowNumber, r)
		}
	}

	first := rows[0]
	if first.HN != "HN1" || first.TotalRehScore != 7 || first.RiskLevel != "high" || first.GuidelineKey != "7_no_icu" {
		t.Errorf("unexpected first row: %+v", first)
	}
	if first.SofaScore == nil || *first.SofaScore != 5 || first.ApacheScore != nil {
		t.Errorf("unexpected first row scores: %v %v", first.SofaScore, first.ApacheScore)
	}

	second := rows[1]
	if second.ApacheScore == nil || *second.ApacheScore != 10 {
		t.Errorf("unexpected APACHE score: %v", second.ApacheScore)
	}
	if second.IcuCaseNote == nil || second.EvaluatedOn == nil || *second.EvaluatedOn != "2024-03-05T00:00:00Z" {
		t.Errorf("unexpected ICU row: %+v", second)
	}
	if rows[2].SourceRowNumber != 4 {
		t.Errorf("expected source row 4, got %d", rows[2].SourceRowNumber)
	}

	entries, _ := os.ReadDir(filepath.Dir(out))
	if len(entries) != 2 {
		t.Errorf("expected only input and output files, found %d entries", len(entries))
	}
}

func TestRun_SkipsExistingOutputUnlessForced(t *testing.T) {
	in, out := writeFixture(t)
	cfg := &config.Config{FilePath: in, OutPath: out}
	if _, err := Run(context.Background(), zerolog.Nop(), cfg); err != nil {
		t.Fatalf("first Run: %v", err)
	}

	summary, err := Run(context.Background(), zerolog.Nop(), cfg)
	if err != nil {
		t.Fatalf("second Run: %v", err)
	}
	if !summary.AlreadyScored || summary.RowsScored != 0 {
		t.Errorf("expected skip, got %+v", summary)
	}

	cfg.Force = true
	summary, err = Run(context.Background(), zerolog.Nop(), cfg)
	if err != nil {
		t.Fatalf("forced Run: %v", err)
	}
	if summary.AlreadyScored || summary.RowsScored != 3 {
		t.Errorf("expected re-score, got %+v", summary)
	}
}

func TestRun_AssessmentFilter(t *testing.T) {
	in, out := writeFixture(t)
	cfg := &config.Config{FilePath: in, OutPath: out, AssessmentTypes: []string{"APACHE"}}

	summary, err := Run(context.Background(), zerolog.Nop(), cfg)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.RowsScored != 1 || summary.RowsSkipped != 2 || summary.RowsRejected != 1 {
		t.Errorf("unexpected counts: %+v", summary)
	}
	if summary.RowsByAssessment[model.AssessmentAPACHE] != 1 || summary.RowsByAssessment[model.AssessmentSOFA] != 0 {
		t.Errorf("unexpected assessment distribution: %v", summary.RowsByAssessment)
	}
}

type badSchemaRow struct {
	Ward string `parquet:"ward"`
}

func TestRun_PreflightError(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "bad.parquet")
	if err := parquet.WriteFile(in, []badSchemaRow{{Ward: "AE"}}); err != nil {
		t.Fatalf("write bad fixture: %v", err)
	}
	cfg := &config.Config{FilePath: in, OutPath: filepath.Join(dir, "out.parquet")}

	_, err := Run(context.Background(), zerolog.Nop(), cfg)
	var pe *PipelineError
	if !errors.As(err, &pe) {
		t.Fatalf("expected PipelineError, got %v", err)
	}
	if pe.Phase != PhasePreflight {
		t.Errorf("expected preflight phase, got %s", pe.Phase)
	}
}

func TestRun_CancelledContext(t *testing.T) {
	in, out := writeFixture(t)
	cfg := &config.Config{FilePath: in, OutPath: out}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, zerolog.Nop(), cfg)
	var pe *PipelineError
	if !errors.As(err, &pe) || pe.Phase != PhaseScore {
		t.Fatalf("expected score-phase PipelineError, got %v", err)
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled in chain, got %v", err)
	}
	if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
		t.Errorf("output should not exist after failure")
	}
	entries, _ := os.ReadDir(filepath.Dir(out))
	if len(entries) != 1 {
		t.Errorf("expected temp file to be removed, found %d entries", len(entries))
	}
}

func TestPlan(t *testing.T) {
	in, _ := writeFixture(t)
	allowed := map[model.AssessmentType]bool{model.AssessmentSOFA: true, model.AssessmentAPACHE: true}

	p, err := Plan(zerolog.Nop(), in, allowed, 0)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if p.NumRows != 4 || p.Sampled != 4 || p.Rejected != 1 {
		t.Errorf("unexpected plan: %+v", p)
	}
	if p.ByRiskLevel[model.RiskHigh] != 1 || p.Projected(2) != 2 {
		t.Errorf("unexpected distribution: %v", p.ByRiskLevel)
	}

	p, err = Plan(zerolog.Nop(), in, allowed, 2)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if p.Sampled != 2 || p.Projected(1) != 2 {
		t.Errorf("unexpected sampled plan: %+v", p)
	}
}
