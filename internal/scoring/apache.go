package scoring

import (
	"github.com/gyeh/rehtriage/internal/bands"
	"github.com/gyeh/rehtriage/internal/model"
)

// FiO2 at or above this fraction switches oxygenation scoring to A-aDO2.
const aaDO2Threshold = 0.5

// APACHE II point tables. Edges follow the published table precision; a value
// between two edges (e.g. 40.95 C) matches nothing and scores 0.
var (
	temperatureTable = bands.Table{
		{Min: 41, Max: bands.PosInf, Score: 4},
		{Min: 39, Max: 40.9, Score: 3},
		{Min: 38.5, Max: 38.9, Score: 1},
		{Min: 36, Max: 38.4, Score: 0},
		{Min: 34, Max: 35.9, Score: 1},
		{Min: 32, Max: 33.9, Score: 2},
		{Min: 30, Max: 31.9, Score: 3},
		{Min: bands.NegInf, Max: 29.9, Score: 4},
	}
	mapTable = bands.Table{
		{Min: 160, Max: bands.PosInf, Score: 4},
		{Min: 130, Max: 159, Score: 3},
		{Min: 110, Max: 129, Score: 2},
		{Min: 70, Max: 109, Score: 0},
		{Min: 50, Max: 69, Score: 2},
		{Min: bands.NegInf, Max: 49, Score: 4},
	}
	heartRateTable = bands.Table{
		{Min: 180, Max: bands.PosInf, Score: 4},
		{Min: 140, Max: 179, Score: 3},
		{Min: 110, Max: 139, Score: 2},
		{Min: 70, Max: 109, Score: 0},
		{Min: 55, Max: 69, Score: 2},
		{Min: 40, Max: 54, Score: 3},
		{Min: bands.NegInf, Max: 39, Score: 4},
	}
	respiratoryRateTable = bands.Table{
		{Min: 50, Max: bands.PosInf, Score: 4},
		{Min: 35, Max: 49, Score: 3},
		{Min: 25, Max: 34, Score: 2},
		{Min: 12, Max: 24, Score: 0},
		{Min: 10, Max: 11, Score: 1},
		{Min: 6, Max: 9, Score: 2},
		{Min: bands.NegInf, Max: 5, Score: 4},
	}
	aaDO2Table = bands.Table{
		{Min: 500, Max: bands.PosInf, Score: 4},
		{Min: 350, Max: 499, Score: 3},
		{Min: 200, Max: 349, Score: 2},
		{Min: bands.NegInf, Max: 199, Score: 0},
	}
	// 70 sits in both of the first two bands; first match gives 0.
	paO2Table = bands.Table{
		{Min: 70, Max: bands.PosInf, Score: 0},
		{Min: 61, Max: 70, Score: 1},
		{Min: 55, Max: 60, Score: 3},
		{Min: bands.NegInf, Max: 54, Score: 4},
	}
	phTable = bands.Table{
		{Min: 7.7, Max: bands.PosInf, Score: 4},
		{Min: 7.6, Max: 7.69, Score: 3},
		{Min: 7.5, Max: 7.59, Score: 2},
		{Min: 7.33, Max: 7.49, Score: 0},
		{Min: 7.25, Max: 7.32, Score: 2},
		{Min: 7.15, Max: 7.24, Score: 3},
		{Min: bands.NegInf, Max: 7.14, Score: 4},
	}
	hco3Table = bands.Table{
		{Min: 52, Max: bands.PosInf, Score: 4},
		{Min: 41, Max: 51.9, Score: 3},
		{Min: 32, Max: 40.9, Score: 2},
		{Min: 22, Max: 31.9, Score: 0},
		{Min: 18, Max: 21.9, Score: 2},
		{Min: 15, Max: 17.9, Score: 3},
		{Min: bands.NegInf, Max: 14.9, Score: 4},
	}
	sodiumTable = bands.Table{
		{Min: 180, Max: bands.PosInf, Score: 4},
		{Min: 160, Max: 179, Score: 3},
		{Min: 155, Max: 159, Score: 2},
		{Min: 150, Max: 154, Score: 1},
		{Min: 130, Max: 149, Score: 0},
		{Min: 120, Max: 129, Score: 2},
		{Min: 111, Max: 119, Score: 3},
		{Min: bands.NegInf, Max: 110, Score: 4},
	}
	potassiumTable = bands.Table{
		{Min: 7, Max: bands.PosInf, Score: 4},
		{Min: 6, Max: 6.9, Score: 3},
		{Min: 5.5, Max: 5.9, Score: 1},
		{Min: 3.5, Max: 5.4, Score: 0},
		{Min: 3.0, Max: 3.4, Score: 1},
		{Min: 2.5, Max: 2.9, Score: 2},
		{Min: bands.NegInf, Max: 2.4, Score: 4},
	}
	creatinineTable = bands.Table{
		{Min: 3.5, Max: bands.PosInf, Score: 4},
		{Min: 2.0, Max: 3.4, Score: 3},
		{Min: 1.5, Max: 1.9, Score: 2},
		{Min: 0.6, Max: 1.4, Score: 0},
		{Min: bands.NegInf, Max: 0.5, Score: 2},
	}
	hematocritTable = bands.Table{
		{Min: 60, Max: bands.PosInf, Score: 4},
		{Min: 50, Max: 59.9, Score: 2},
		{Min: 46, Max: 49.9, Score: 1},
		{Min: 30, Max: 45.9, Score: 0},
		{Min: 20, Max: 29.9, Score: 2},
		{Min: bands.NegInf, Max: 19.9, Score: 4},
	}
	wbcTable = bands.Table{
		{Min: 40, Max: bands.PosInf, Score: 4},
		{Min: 20, Max: 39.9, Score: 2},
		{Min: 15, Max: 19.9, Score: 1},
		{Min: 3, Max: 14.9, Score: 0},
		{Min: 1, Max: 2.9, Score: 2},
		{Min: bands.NegInf, Max: 0.9, Score: 4},
	}
	ageTable = bands.Table{
		{Min: 75, Max: bands.PosInf, Score: 6},
		{Min: 65, Max: 74, Score: 5},
		{Min: 55, Max: 64, Score: 3},
		{Min: 45, Max: 54, Score: 2},
		{Min: bands.NegInf, Max: 44, Score: 0},
	}
)

// ApacheBreakdown holds every APACHE II component.
type ApacheBreakdown struct {
	Temperature     int `json:"temperature"`
	MAP             int `json:"map"`
	HeartRate       int `json:"heart_rate"`
	RespiratoryRate int `json:"respiratory_rate"`
	Oxygenation     int `json:"oxygenation"`
	AcidBase        int `json:"acid_base"`
	Sodium          int `json:"sodium"`
	Potassium       int `json:"potassium"`
	Creatinine      int `json:"creatinine"`
	Hematocrit      int `json:"hematocrit"`
	WBC             int `json:"wbc"`
	GCS             int `json:"gcs"`
	Age             int `json:"age"`
	ChronicHealth   int `json:"chronic_health"`
}

// Physiology sums the twelve acute physiology components.
func (b ApacheBreakdown) Physiology() int {
	return b.Temperature + b.MAP + b.HeartRate + b.RespiratoryRate + b.Oxygenation +
		b.AcidBase + b.Sodium + b.Potassium + b.Creatinine + b.Hematocrit + b.WBC + b.GCS
}

// Total is physiology plus age and chronic health points.
func (b ApacheBreakdown) Total() int {
	return b.Physiology() + b.Age + b.ChronicHealth
}

func TemperatureScore(celsius string) int { return bands.Lookup(celsius, temperatureTable) }
func MAPScore(mmHg string) int { return bands.Lookup(mmHg, mapTable) }
func HeartRateScore(bpm string) int { return bands.Lookup(bpm, heartRateTable) }
func RespiratoryRateScore(perMin string) int { return bands.Lookup(perMin, respiratoryRateTable) }
func SodiumScore(mEqL string) int { return bands.Lookup(mEqL, sodiumTable) }
func PotassiumScore(mEqL string) int { return bands.Lookup(mEqL, potassiumTable) }
func HematocritScore(percent string) int { return bands.Lookup(percent, hematocritTable) }
func WBCScore(thousandsPerMM3 string) int { return bands.Lookup(thousandsPerMM3, wbcTable) }
func AgeScore(years string) int { return bands.Lookup(years, ageTable) }
func PHScore(ph string) int { return bands.Lookup(ph, phTable) }
func HCO3Score(mEqL string) int { return bands.Lookup(mEqL, hco3Table) }

// OxygenationScore scores value as A-aDO2 when fio2 >= 0.5 and as PaO2
// otherwise. Missing FiO2 or value scores 0.
func OxygenationScore(fio2, value string) int {
	f, ok := bands.ParseFloat(fio2)
	if !ok {
		return 0
	}
	v, ok := bands.ParseFloat(value)
	if !ok {
		return 0
	}
	if f >= aaDO2Threshold {
		return bands.Score(v, aaDO2Table)
	}
	return bands.Score(v, paO2Table)
}

// AcidBaseScore scores either arterial pH or serum HCO3 depending on mode.
func AcidBaseScore(mode model.AcidBaseMode, value string) int {
	switch mode {
	case model.AcidBasePH:
		return PHScore(value)
	case model.AcidBaseHCO3:
		return HCO3Score(value)
	}
	return 0
}

// CreatinineScore scores creatinine (mg/dL), doubled for acute renal failure.
func CreatinineScore(mgdL string, arf bool) int {
	s := bands.Lookup(mgdL, creatinineTable)
	if arf {
		return s * 2
	}
	return s
}

// ApacheGCSScore is 15 minus GCS for GCS in 3..15 and 0 otherwise.
func ApacheGCSScore(gcs string) int {
	v, ok := bands.ParseInt(gcs)
	if !ok || v < 3 || v > 15 {
		return 0
	}
	return 15 - v
}

// ChronicHealthScore awards chronic health points only when a qualifying
// condition is flagged; the operative status is ignored otherwise.
func ChronicHealthScore(c model.ChronicConditions, status model.OperativeStatus) int {
	if !c.Any() {
		return 0
	}
	switch status {
	case model.OperativeNonOrEmergent:
		return 5
	case model.OperativeElective:
		return 2
	}
	return 0
}

// Apache computes every APACHE II component for a.
func Apache(a model.ApacheAssessment) ApacheBreakdown {
	return ApacheBreakdown{
		Temperature:     TemperatureScore(a.Temperature),
		MAP:             MAPScore(a.MAP),
		HeartRate:       HeartRateScore(a.HeartRate),
		RespiratoryRate: RespiratoryRateScore(a.RespiratoryRate),
		Oxygenation:     OxygenationScore(a.FiO2, a.OxygenationValue),
		AcidBase:        AcidBaseScore(a.AcidBaseMode, a.AcidBaseValue),
		Sodium:          SodiumScore(a.Sodium),
		Potassium:       PotassiumScore(a.Potassium),
		Creatinine:      CreatinineScore(a.Creatinine, a.IsARF),
		Hematocrit:      HematocritScore(a.Hematocrit),
		WBC:             WBCScore(a.WBC),
		GCS:             ApacheGCSScore(a.GCS),
		Age:             AgeScore(a.Age),
		ChronicHealth:   ChronicHealthScore(a.Chronic, a.OperativeStatus),
	}
}

// ApacheScore returns the APACHE II total for a.
func ApacheScore(a model.ApacheAssessment) int {
	return Apache(a).Total()
}
