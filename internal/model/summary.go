package model

import "time"

// BatchSummary captures metrics from a single batch scoring run.
type BatchSummary struct {
	InputPath        string
	OutputPath       string
	InputSHA256      string
	BatchID          string
	AlreadyScored    bool
	RowsRead         int64
	RowsScored       int64
	RowsSkipped      int64
	RowsRejected     int64
	RowsByRiskLevel  map[RiskLevel]int64
	RowsByAssessment map[AssessmentType]int64
	DurationScore    time.Duration
	DurationFinalize time.Duration
	DurationTotal    time.Duration
}
