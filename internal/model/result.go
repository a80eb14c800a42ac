package model

// RiskLevel is the composite risk tier derived from the total REH score.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// AllRiskLevels lists tiers from lowest to highest.
var AllRiskLevels = []RiskLevel{RiskLow, RiskMedium, RiskHigh}

// CompositeResult is the full outcome of one evaluation.
// TotalRehScore always equals AssessmentRehScore + PriorityRehScore + CciRehScore.
type CompositeResult struct {
	AssessmentType     AssessmentType `json:"assessment_type"`
	SofaScore          *int           `json:"sofa_score,omitempty"`
	ApacheScore        *int           `json:"apache_score,omitempty"`
	AssessmentRehScore int            `json:"assessment_reh_score"`
	PriorityRehScore   int            `json:"priority_reh_score"`
	CciScore           int            `json:"cci_score"`
	CciRehScore        int            `json:"cci_reh_score"`
	TotalRehScore      int            `json:"total_reh_score"`
	RiskLevel          RiskLevel      `json:"risk_level"`
	RiskLabel          string         `json:"risk_label"`
	Ward               Ward           `json:"ward"`
	GuidelineKey       string         `json:"guideline_key"`
	Guidelines         []string       `json:"guidelines"`
	IcuCaseNote        string         `json:"icu_case_note,omitempty"`
}

// AssessmentScore returns the raw score of the active assessment, or nil when
// no recognized assessment was selected.
func (r *CompositeResult) AssessmentScore() *int {
	switch r.AssessmentType {
	case AssessmentSOFA:
		return r.SofaScore
	case AssessmentAPACHE:
		return r.ApacheScore
	}
	return nil
}
