package model

// AssessmentType selects which severity score drives the assessment REH points.
type AssessmentType string

const (
	AssessmentSOFA   AssessmentType = "SOFA"
	AssessmentAPACHE AssessmentType = "APACHE"
)

// AllAssessmentTypes lists the supported severity scores.
var AllAssessmentTypes = []AssessmentType{AssessmentSOFA, AssessmentAPACHE}

// Priority is the clinical-urgency category chosen by the nurse.
type Priority string

const (
	Priority1 Priority = "priority1"
	Priority2 Priority = "priority2"
	Priority3 Priority = "priority3"
	Priority4 Priority = "priority4"
)

// AcidBaseMode selects which acid-base measurement is scored.
type AcidBaseMode string

const (
	AcidBasePH   AcidBaseMode = "ph"
	AcidBaseHCO3 AcidBaseMode = "hco3"
)

// OperativeStatus is the APACHE II chronic-health admission category.
type OperativeStatus string

const (
	OperativeNone          OperativeStatus = "none"
	OperativeElective      OperativeStatus = "elective_post_op"
	OperativeNonOrEmergent OperativeStatus = "non_op_or_emergency"
)

// CardiovascularOption is one selectable SOFA cardiovascular state.
type CardiovascularOption struct {
	Label string
	Value string
}

// CardiovascularOptions lists the SOFA cardiovascular states; Value is the
// sub-score recorded for the selection.
var CardiovascularOptions = []CardiovascularOption{
	{Label: "MAP >= 70", Value: "0"},
	{Label: "MAP < 70", Value: "1"},
	{Label: "Dopamine <= 5", Value: "2"},
	{Label: "Dopamine > 5", Value: "3"},
	{Label: "Dopamine > 15", Value: "4"},
}

// SofaAssessment holds raw SOFA form values. Numeric fields are kept as the
// text entered on the form.
type SofaAssessment struct {
	Respiration    string `json:"respiration" yaml:"respiration"` // PaO2/FiO2
	IsVentilated   bool   `json:"is_ventilated" yaml:"is_ventilated"`
	Platelets      string `json:"platelets" yaml:"platelets"`
	Bilirubin      string `json:"bilirubin" yaml:"bilirubin"`
	Cardiovascular string `json:"cardiovascular" yaml:"cardiovascular"`
	CNS            string `json:"cns" yaml:"cns"` // GCS
	Renal          string `json:"renal" yaml:"renal"`
}

// ChronicConditions flags the organ-system conditions that qualify a patient
// for APACHE II chronic health points.
type ChronicConditions struct {
	Liver             bool `json:"liver" yaml:"liver"`
	Respiratory       bool `json:"respiratory" yaml:"respiratory"`
	Renal             bool `json:"renal" yaml:"renal"`
	Immunosuppression bool `json:"immunosuppression" yaml:"immunosuppression"`
}

// Any reports whether at least one qualifying condition is flagged.
func (c ChronicConditions) Any() bool {
	return c.Liver || c.Respiratory || c.Renal || c.Immunosuppression
}

// ApacheAssessment holds raw APACHE II form values.
type ApacheAssessment struct {
	Temperature      string            `json:"temperature" yaml:"temperature"`
	MAP              string            `json:"map" yaml:"map"`
	HeartRate        string            `json:"heart_rate" yaml:"heart_rate"`
	RespiratoryRate  string            `json:"respiratory_rate" yaml:"respiratory_rate"`
	FiO2             string            `json:"fio2" yaml:"fio2"`
	OxygenationValue string            `json:"oxygenation_value" yaml:"oxygenation_value"`
	AcidBaseMode     AcidBaseMode      `json:"acid_base_mode" yaml:"acid_base_mode"`
	AcidBaseValue    string            `json:"acid_base_value" yaml:"acid_base_value"`
	Sodium           string            `json:"sodium" yaml:"sodium"`
	Potassium        string            `json:"potassium" yaml:"potassium"`
	Creatinine       string            `json:"creatinine" yaml:"creatinine"`
	IsARF            bool              `json:"is_arf" yaml:"is_arf"`
	Hematocrit       string            `json:"hematocrit" yaml:"hematocrit"`
	WBC              string            `json:"wbc" yaml:"wbc"`
	GCS              string            `json:"gcs" yaml:"gcs"`
	Age              string            `json:"age" yaml:"age"`
	Chronic          ChronicConditions `json:"chronic_conditions" yaml:"chronic_conditions"`
	OperativeStatus  OperativeStatus   `json:"operative_status" yaml:"operative_status"`
}

// Comorbidities maps catalog keys to presence flags.
type Comorbidities map[ConditionKey]bool
