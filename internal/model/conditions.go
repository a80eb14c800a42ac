package model

// ConditionKey identifies one comorbidity in the Charlson catalog.
type ConditionKey string

// Condition is one catalog entry with its fixed weight class.
type Condition struct {
	Key    ConditionKey
	Label  string
	Weight int
}

// WeightClasses lists the Charlson weight classes in ascending order.
var WeightClasses = []int{1, 2, 3, 6}

// AllConditions lists the supported comorbidities grouped by weight class.
var AllConditions = []Condition{
	{Key: "ihd", Label: "Ischemic heart disease", Weight: 1},
	{Key: "chf", Label: "Congestive heart failure", Weight: 1},
	{Key: "pad", Label: "Peripheral arterial disease", Weight: 1},
	{Key: "stroke", Label: "Stroke", Weight: 1},
	{Key: "dementia", Label: "Dementia", Weight: 1},
	{Key: "cld", Label: "Chronic lung disease", Weight: 1},
	{Key: "cntd", Label: "Connective tissue disease", Weight: 1},
	{Key: "pud", Label: "Peptic ulcer disease", Weight: 1},
	{Key: "lsd", Label: "Mild liver disease (CTP A)", Weight: 1},
	{Key: "dm", Label: "Diabetes mellitus", Weight: 1},
	{Key: "htn", Label: "Hypertension", Weight: 1},
	{Key: "warfarin", Label: "On warfarin", Weight: 1},

	{Key: "paralysis", Label: "Paralysis", Weight: 2},
	{Key: "dm_comp", Label: "Diabetes with complications", Weight: 2},
	{Key: "ckd", Label: "Chronic kidney disease (stage 4-5)", Weight: 2},
	{Key: "cancer_non_meta", Label: "Cancer, non-metastatic", Weight: 2},
	{Key: "pressure_ulcer", Label: "Pressure ulcer", Weight: 2},

	{Key: "lscd", Label: "Liver cirrhosis (CTP B-C)", Weight: 3},

	{Key: "cancer_meta", Label: "Metastatic cancer", Weight: 6},
	{Key: "pcnr", Label: "Palliative care / no resuscitation / hopeless", Weight: 6},
}

// ConditionKeys returns the keys of every catalog condition in catalog order.
func ConditionKeys() []string {
	keys := make([]string, len(AllConditions))
	for i, c := range AllConditions {
		keys[i] = string(c.Key)
	}
	return keys
}

// ConditionsInClass returns the catalog entries carrying the given weight.
func ConditionsInClass(weight int) []Condition {
	var out []Condition
	for _, c := range AllConditions {
		if c.Weight == weight {
			out = append(out, c)
		}
	}
	return out
}
