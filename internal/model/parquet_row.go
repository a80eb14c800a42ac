package model

// EvaluationRow mirrors the Parquet schema of an evaluation export, one
// evaluation per row. Measurements stay as the text captured on the form;
// they are parsed during scoring.
type EvaluationRow struct {
	// Intake
	HN             string  `parquet:"hn"`
	FirstName      *string `parquet:"first_name,optional"`
	LastName       *string `parquet:"last_name,optional"`
	Gender         *string `parquet:"gender,optional"`
	Ward           string  `parquet:"ward"`
	EvaluatedOn    *string `parquet:"evaluated_on,optional"`
	AssessmentType string  `parquet:"assessment_type"`
	Priority       string  `parquet:"priority"`

	// SOFA
	SofaRespiration    *string `parquet:"sofa_respiration,optional"`
	SofaVentilated     bool    `parquet:"sofa_ventilated,optional"`
	SofaPlatelets      *string `parquet:"sofa_platelets,optional"`
	SofaBilirubin      *string `parquet:"sofa_bilirubin,optional"`
	SofaCardiovascular *string `parquet:"sofa_cardiovascular,optional"`
	SofaCNS            *string `parquet:"sofa_cns,optional"`
	SofaRenal          *string `parquet:"sofa_renal,optional"`

	// APACHE II
	ApacheTemperature       *string  `parquet:"apache_temperature,optional"`
	ApacheMAP               *string  `parquet:"apache_map,optional"`
	ApacheHeartRate         *string  `parquet:"apache_heart_rate,optional"`
	ApacheRespiratoryRate   *string  `parquet:"apache_respiratory_rate,optional"`
	ApacheFiO2              *string  `parquet:"apache_fio2,optional"`
	ApacheOxygenation       *string  `parquet:"apache_oxygenation,optional"`
	ApacheAcidBaseMode      *string  `parquet:"apache_acid_base_mode,optional"`
	ApacheAcidBaseValue     *string  `parquet:"apache_acid_base_value,optional"`
	ApacheSodium            *string  `parquet:"apache_sodium,optional"`
	ApachePotassium         *string  `parquet:"apache_potassium,optional"`
	ApacheCreatinine        *string  `parquet:"apache_creatinine,optional"`
	ApacheARF               bool     `parquet:"apache_arf,optional"`
	ApacheHematocrit        *string  `parquet:"apache_hematocrit,optional"`
	ApacheWBC               *string  `parquet:"apache_wbc,optional"`
	ApacheGCS               *string  `parquet:"apache_gcs,optional"`
	ApacheAge               *string  `parquet:"apache_age,optional"`
	ApacheChronicConditions []string `parquet:"apache_chronic_conditions,list"`
	ApacheOperativeStatus   *string  `parquet:"apache_operative_status,optional"`

	// CCI
	Comorbidities []string `parquet:"comorbidities,list"`
}

// RequiredColumns are the columns every evaluation export must carry.
var RequiredColumns = []string{"ward", "assessment_type", "priority"}

// SofaColumns returns the SOFA measurement columns.
func SofaColumns() []string {
	return []string{
		"sofa_respiration",
		"sofa_ventilated",
		"sofa_platelets",
		"sofa_bilirubin",
		"sofa_cardiovascular",
		"sofa_cns",
		"sofa_renal",
	}
}

// ApacheColumns returns the APACHE II measurement columns.
func ApacheColumns() []string {
	return []string{
		"apache_temperature",
		"apache_map",
		"apache_heart_rate",
		"apache_respiratory_rate",
		"apache_fio2",
		"apache_oxygenation",
		"apache_acid_base_mode",
		"apache_acid_base_value",
		"apache_sodium",
		"apache_potassium",
		"apache_creatinine",
		"apache_arf",
		"apache_hematocrit",
		"apache_wbc",
		"apache_gcs",
		"apache_age",
		"apache_chronic_conditions",
		"apache_operative_status",
	}
}
