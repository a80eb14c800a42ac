// Package triage combines the severity, priority and comorbidity scores of a
// patient record into one composite REH evaluation.
package triage

import (
	"github.com/gyeh/rehtriage/internal/model"
	"github.com/gyeh/rehtriage/internal/reh"
	"github.com/gyeh/rehtriage/internal/scoring"
)

// Evaluate scores rec. It never fails and does not modify rec; an
// unrecognized assessment type contributes 0 assessment points.
func Evaluate(rec model.PatientRecord) model.CompositeResult {
	res := model.CompositeResult{
		AssessmentType: rec.AssessmentType,
		Ward:           rec.Info.Ward,
	}

	switch rec.AssessmentType {
	case model.AssessmentSOFA:
		s := scoring.SofaScore(rec.Sofa)
		res.SofaScore = &s
		res.AssessmentRehScore = reh.SofaReh(s)
	case model.AssessmentAPACHE:
		s := scoring.ApacheScore(rec.Apache)
		res.ApacheScore = &s
		res.AssessmentRehScore = reh.ApacheReh(s)
	}

	res.PriorityRehScore = scoring.PriorityScore(rec.Priority)
	res.CciScore = scoring.CciScore(rec.Comorbidities)
	res.CciRehScore = reh.CciReh(res.CciScore)
	res.TotalRehScore = res.AssessmentRehScore + res.PriorityRehScore + res.CciRehScore

	key := reh.GuidelineKeyFor(res.TotalRehScore, res.Ward)
	res.RiskLevel = reh.Classify(res.TotalRehScore)
	res.RiskLabel = reh.RiskLabel(res.TotalRehScore)
	res.GuidelineKey = string(key)
	res.Guidelines = reh.GuidelinesFor(key)
	res.IcuCaseNote = reh.IcuCaseNote(res.TotalRehScore, res.Ward)
	return res
}

// EvaluateAll scores each record in order.
func EvaluateAll(recs []model.PatientRecord) []model.CompositeResult {
	out := make([]model.CompositeResult, len(recs))
	for i, r := range recs {
		out[i] = Evaluate(r)
	}
	return out
}
