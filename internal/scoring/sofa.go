// Package scoring converts raw clinical measurements into SOFA, APACHE II,
// Charlson and priority sub-scores. Every function is total: unparseable or
// missing input scores the table default.
package scoring

import (
	"github.com/gyeh/rehtriage/internal/bands"
	"github.com/gyeh/rehtriage/internal/model"
)

var (
	respirationVentilated = bands.Table{
		{Min: bands.NegInf, Max: bands.Below(100), Score: 4},
		{Min: 100, Max: bands.Below(200), Score: 3},
		{Min: 200, Max: bands.Below(300), Score: 2},
		{Min: 300, Max: bands.Below(400), Score: 1},
		{Min: 400, Max: bands.PosInf, Score: 0},
	}
	// Without ventilation the two highest bands are unreachable.
	respirationUnventilated = bands.Table{
		{Min: bands.NegInf, Max: bands.Below(300), Score: 2},
		{Min: 300, Max: bands.Below(400), Score: 1},
		{Min: 400, Max: bands.PosInf, Score: 0},
	}
	plateletTable = bands.Table{
		{Min: bands.NegInf, Max: bands.Below(20), Score: 4},
		{Min: 20, Max: bands.Below(50), Score: 3},
		{Min: 50, Max: bands.Below(100), Score: 2},
		{Min: 100, Max: bands.Below(150), Score: 1},
		{Min: 150, Max: bands.PosInf, Score: 0},
	}
	bilirubinTable = bands.Table{
		{Min: 12, Max: bands.PosInf, Score: 4},
		{Min: 6, Max: bands.Below(12), Score: 3},
		{Min: 2, Max: bands.Below(6), Score: 2},
		{Min: 1.2, Max: bands.Below(2), Score: 1},
		{Min: bands.NegInf, Max: bands.Below(1.2), Score: 0},
	}
	cnsTable = bands.Table{
		{Min: bands.NegInf, Max: 5, Score: 4},
		{Min: 6, Max: 9, Score: 3},
		{Min: 10, Max: 12, Score: 2},
		{Min: 13, Max: 14, Score: 1},
		{Min: 15, Max: bands.PosInf, Score: 0},
	}
	renalTable = bands.Table{
		{Min: 5, Max: bands.PosInf, Score: 4},
		{Min: 3.5, Max: bands.Below(5), Score: 3},
		{Min: 2, Max: bands.Below(3.5), Score: 2},
		{Min: 1.2, Max: bands.Below(2), Score: 1},
		{Min: bands.NegInf, Max: bands.Below(1.2), Score: 0},
	}
)

// SofaBreakdown holds the six organ-system sub-scores.
type SofaBreakdown struct {
	Respiration    int `json:"respiration"`
	Coagulation    int `json:"coagulation"`
	Liver          int `json:"liver"`
	Cardiovascular int `json:"cardiovascular"`
	CNS            int `json:"cns"`
	Renal          int `json:"renal"`
}

// Total sums the sub-scores; the result is in 0..24.
func (b SofaBreakdown) Total() int {
	return b.Respiration + b.Coagulation + b.Liver + b.Cardiovascular + b.CNS + b.Renal
}

// RespirationScore scores PaO2/FiO2. Scores 3 and 4 require ventilation.
func RespirationScore(pf string, ventilated bool) int {
	if ventilated {
		return bands.Lookup(pf, respirationVentilated)
	}
	return bands.Lookup(pf, respirationUnventilated)
}

// CoagulationScore scores platelets (x10^3/uL).
func CoagulationScore(platelets string) int {
	return bands.Lookup(platelets, plateletTable)
}

// LiverScore scores bilirubin (mg/dL).
func LiverScore(bilirubin string) int {
	return bands.Lookup(bilirubin, bilirubinTable)
}

// CardiovascularScore returns the sub-score attached to the selected
// cardiovascular state. Unknown selections score 0.
func CardiovascularScore(selection string) int {
	for _, opt := range model.CardiovascularOptions {
		if selection == opt.Value {
			v, _ := bands.ParseInt(opt.Value)
			return v
		}
	}
	return 0
}

// CNSScore scores the Glasgow Coma Scale. Fractional input is truncated.
func CNSScore(gcs string) int {
	v, ok := bands.ParseInt(gcs)
	if !ok {
		return 0
	}
	return bands.Score(float64(v), cnsTable)
}

// RenalScore scores creatinine (mg/dL).
func RenalScore(creatinine string) int {
	return bands.Lookup(creatinine, renalTable)
}

// Sofa computes every SOFA sub-score for a.
func Sofa(a model.SofaAssessment) SofaBreakdown {
	return SofaBreakdown{
		Respiration:    RespirationScore(a.Respiration, a.IsVentilated),
		Coagulation:    CoagulationScore(a.Platelets),
		Liver:          LiverScore(a.Bilirubin),
		Cardiovascular: CardiovascularScore(a.Cardiovascular),
		CNS:            CNSScore(a.CNS),
		Renal:          RenalScore(a.Renal),
	}
}

// SofaScore returns the SOFA total for a.
func SofaScore(a model.SofaAssessment) int {
	return Sofa(a).Total()
}
