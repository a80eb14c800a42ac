package model

// ScoredRow is the Parquet representation of one scored evaluation.
type ScoredRow struct {
	EvaluationID    string `parquet:"evaluation_id"`
	BatchID         string `parquet:"batch_id"`
	SourceRowNumber int64  `parquet:"source_row_number"`
	SourceRowHash   []byte `parquet:"source_row_hash"`

	HN             string  `parquet:"hn"`
	Ward           string  `parquet:"ward"`
	AssessmentType string  `parquet:"assessment_type"`
	EvaluatedOn    *string `parquet:"evaluated_on,optional"`

	SofaScore          *int32 `parquet:"sofa_score,optional"`
	ApacheScore        *int32 `parquet:"apache_score,optional"`
	AssessmentRehScore int32  `parquet:"assessment_reh_score"`
	PriorityRehScore   int32  `parquet:"priority_reh_score"`
	CciScore           int32  `parquet:"cci_score"`
	CciRehScore        int32  `parquet:"cci_reh_score"`
	TotalRehScore      int32  `parquet:"total_reh_score"`

	RiskLevel    string   `parquet:"risk_level"`
	RiskLabel    string   `parquet:"risk_label"`
	GuidelineKey string   `parquet:"guideline_key"`
	Guidelines   []string `parquet:"guidelines,list"`
	IcuCaseNote  *string  `parquet:"icu_case_note,optional"`
}

// NewScoredRow flattens a composite result into its Parquet row. Identity
// fields (IDs, row number, hash, HN, date) are filled in by the caller.
func NewScoredRow(res *CompositeResult) *ScoredRow {
	row := &ScoredRow{
		Ward:               string(res.Ward),
		AssessmentType:     string(res.AssessmentType),
		SofaScore:          int32Ptr(res.SofaScore),
		ApacheScore:        int32Ptr(res.ApacheScore),
		AssessmentRehScore: int32(res.AssessmentRehScore),
		PriorityRehScore:   int32(res.PriorityRehScore),
		CciScore:           int32(res.CciScore),
		CciRehScore:        int32(res.CciRehScore),
		TotalRehScore:      int32(res.TotalRehScore),
		RiskLevel:          string(res.RiskLevel),
		RiskLabel:          res.RiskLabel,
		GuidelineKey:       res.GuidelineKey,
		Guidelines:         append([]string(nil), res.Guidelines...),
	}
	if res.IcuCaseNote != "" {
		note := res.IcuCaseNote
		row.IcuCaseNote = &note
	}
	return row
}

func int32Ptr(v *int) *int32 {
	if v == nil {
		return nil
	}
	n := int32(*v)
	return &n
}
