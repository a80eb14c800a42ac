// Package normalize turns loosely formatted evaluation input (Parquet rows,
// YAML files, HTTP bodies) into canonical patient records.
package normalize

import (
	"fmt"
	"strings"

	"github.com/gyeh/rehtriage/internal/model"
)

// ToPatientRecord converts a Parquet-read EvaluationRow into a canonical
// PatientRecord. Unknown ward, assessment type, priority or comorbidity names
// are errors; measurement text is kept as-is for the scorers.
func ToPatientRecord(row *model.EvaluationRow) (model.PatientRecord, error) {
	ward, err := ParseWard(row.Ward)
	if err != nil {
		return model.PatientRecord{}, err
	}
	at, err := ParseAssessmentType(row.AssessmentType)
	if err != nil {
		return model.PatientRecord{}, err
	}
	prio, err := ParsePriority(row.Priority)
	if err != nil {
		return model.PatientRecord{}, err
	}
	comorb, err := parseComorbidities(row.Comorbidities)
	if err != nil {
		return model.PatientRecord{}, err
	}

	rec := model.PatientRecord{
		Info: model.PatientInfo{
			HN:        NormalizeHN(row.HN),
			FirstName: NormalizeName(row.FirstName),
			LastName:  NormalizeName(row.LastName),
			Gender:    NormalizeGender(row.Gender),
			Ward:      ward,
		},
		AssessmentType: at,
		Priority:       prio,
		Comorbidities:  comorb,
	}
	if row.EvaluatedOn != nil {
		rec.EvaluatedOn = ParseDate(*row.EvaluatedOn)
	}

	switch at {
	case model.AssessmentSOFA:
		rec.Sofa = model.SofaAssessment{
			Respiration:    NormalizeValue(row.SofaRespiration),
			IsVentilated:   row.SofaVentilated,
			Platelets:      NormalizeValue(row.SofaPlatelets),
			Bilirubin:      NormalizeValue(row.SofaBilirubin),
			Cardiovascular: NormalizeValue(row.SofaCardiovascular),
			CNS:            NormalizeValue(row.SofaCNS),
			Renal:          NormalizeValue(row.SofaRenal),
		}
	case model.AssessmentAPACHE:
		a, err := apacheFromRow(row)
		if err != nil {
			return model.PatientRecord{}, err
		}
		rec.Apache = a
	}
	return rec, nil
}

func apacheFromRow(row *model.EvaluationRow) (model.ApacheAssessment, error) {
	mode, err := ParseAcidBaseMode(NormalizeValue(row.ApacheAcidBaseMode))
	if err != nil {
		return model.ApacheAssessment{}, err
	}
	status, err := ParseOperativeStatus(NormalizeValue(row.ApacheOperativeStatus))
	if err != nil {
		return model.ApacheAssessment{}, err
	}
	chronic, err := ParseChronicConditions(row.ApacheChronicConditions)
	if err != nil {
		return model.ApacheAssessment{}, err
	}
	return model.ApacheAssessment{
		Temperature:      NormalizeValue(row.ApacheTemperature),
		MAP:              NormalizeValue(row.ApacheMAP),
		HeartRate:        NormalizeValue(row.ApacheHeartRate),
		RespiratoryRate:  NormalizeValue(row.ApacheRespiratoryRate),
		FiO2:             NormalizeValue(row.ApacheFiO2),
		OxygenationValue: NormalizeValue(row.ApacheOxygenation),
		AcidBaseMode:     mode,
		AcidBaseValue:    NormalizeValue(row.ApacheAcidBaseValue),
		Sodium:           NormalizeValue(row.ApacheSodium),
		Potassium:        NormalizeValue(row.ApachePotassium),
		Creatinine:       NormalizeValue(row.ApacheCreatinine),
		IsARF:            row.ApacheARF,
		Hematocrit:       NormalizeValue(row.ApacheHematocrit),
		WBC:              NormalizeValue(row.ApacheWBC),
		GCS:              NormalizeValue(row.ApacheGCS),
		Age:              NormalizeValue(row.ApacheAge),
		Chronic:          chronic,
		OperativeStatus:  status,
	}, nil
}

func parseComorbidities(names []string) (model.Comorbidities, error) {
	if len(names) == 0 {
		return nil, nil
	}
	out := make(model.Comorbidities, len(names))
	for _, n := range names {
		if strings.TrimSpace(n) == "" {
			continue
		}
		k, err := ParseConditionKey(n)
		if err != nil {
			return nil, err
		}
		out[k] = true
	}
	return out, nil
}

// CanonicalRecord rewrites the enum fields of a record supplied by a user
// (YAML file or HTTP body) into their canonical spellings. Measurement text is
// only trimmed. Empty enum fields are left empty.
func CanonicalRecord(rec model.PatientRecord) (model.PatientRecord, error) {
	out := rec.WithComorbidities(nil)

	if rec.Info.Ward != "" {
		w, err := ParseWard(string(rec.Info.Ward))
		if err != nil {
			return model.PatientRecord{}, err
		}
		out.Info.Ward = w
	}
	out.Info.HN = NormalizeHN(rec.Info.HN)
	out.Info.FirstName = NormalizeName(&rec.Info.FirstName)
	out.Info.LastName = NormalizeName(&rec.Info.LastName)
	out.Info.Gender = NormalizeGender(&rec.Info.Gender)

	if rec.AssessmentType != "" {
		at, err := ParseAssessmentType(string(rec.AssessmentType))
		if err != nil {
			return model.PatientRecord{}, err
		}
		out.AssessmentType = at
	}

	if rec.Priority != "" {
		p, err := ParsePriority(string(rec.Priority))
		if err != nil {
			return model.PatientRecord{}, err
		}
		out.Priority = p
	}

	if len(rec.Comorbidities) > 0 {
		c := make(model.Comorbidities, len(rec.Comorbidities))
		for k, v := range rec.Comorbidities {
			key, err := ParseConditionKey(string(k))
			if err != nil {
				return model.PatientRecord{}, err
			}
			c[key] = c[key] || v
		}
		out.Comorbidities = c
	}

	mode, err := ParseAcidBaseMode(string(rec.Apache.AcidBaseMode))
	if err != nil {
		return model.PatientRecord{}, err
	}
	out.Apache.AcidBaseMode = mode
	status, err := ParseOperativeStatus(string(rec.Apache.OperativeStatus))
	if err != nil {
		return model.PatientRecord{}, err
	}
	out.Apache.OperativeStatus = status

	trimSofa(&out.Sofa)
	trimApache(&out.Apache)
	return out, nil
}

func trimSofa(a *model.SofaAssessment) {
	for _, f := range []*string{&a.Respiration, &a.Platelets, &a.Bilirubin, &a.Cardiovascular, &a.CNS, &a.Renal} {
		*f = strings.TrimSpace(*f)
	}
}

func trimApache(a *model.ApacheAssessment) {
	for _, f := range []*string{
		&a.Temperature, &a.MAP, &a.HeartRate, &a.RespiratoryRate, &a.FiO2, &a.OxygenationValue,
		&a.AcidBaseValue, &a.Sodium, &a.Potassium, &a.Creatinine, &a.Hematocrit, &a.WBC, &a.GCS, &a.Age,
	} {
		*f = strings.TrimSpace(*f)
	}
}

// ToEvaluationRow flattens a record back into its Parquet input shape.
func ToEvaluationRow(rec model.PatientRecord) *model.EvaluationRow {
	row := &model.EvaluationRow{
		HN:             rec.Info.HN,
		FirstName:      optStr(rec.Info.FirstName),
		LastName:       optStr(rec.Info.LastName),
		Gender:         optStr(rec.Info.Gender),
		Ward:           string(rec.Info.Ward),
		EvaluatedOn:    FormatDate(rec.EvaluatedOn),
		AssessmentType: string(rec.AssessmentType),
		Priority:       string(rec.Priority),
	}
	for _, c := range model.AllConditions {
		if rec.Comorbidities[c.Key] {
			row.Comorbidities = append(row.Comorbidities, string(c.Key))
		}
	}
	switch rec.AssessmentType {
	case model.AssessmentSOFA:
		s := rec.Sofa
		row.SofaRespiration = optStr(s.Respiration)
		row.SofaVentilated = s.IsVentilated
		row.SofaPlatelets = optStr(s.Platelets)
		row.SofaBilirubin = optStr(s.Bilirubin)
		row.SofaCardiovascular = optStr(s.Cardiovascular)
		row.SofaCNS = optStr(s.CNS)
		row.SofaRenal = optStr(s.Renal)
	case model.AssessmentAPACHE:
		a := rec.Apache
		row.ApacheTemperature = optStr(a.Temperature)
		row.ApacheMAP = optStr(a.MAP)
		row.ApacheHeartRate = optStr(a.HeartRate)
		row.ApacheRespiratoryRate = optStr(a.RespiratoryRate)
		row.ApacheFiO2 = optStr(a.FiO2)
		row.ApacheOxygenation = optStr(a.OxygenationValue)
		row.ApacheAcidBaseMode = optStr(string(a.AcidBaseMode))
		row.ApacheAcidBaseValue = optStr(a.AcidBaseValue)
		row.ApacheSodium = optStr(a.Sodium)
		row.ApachePotassium = optStr(a.Potassium)
		row.ApacheCreatinine = optStr(a.Creatinine)
		row.ApacheARF = a.IsARF
		row.ApacheHematocrit = optStr(a.Hematocrit)
		row.ApacheWBC = optStr(a.WBC)
		row.ApacheGCS = optStr(a.GCS)
		row.ApacheAge = optStr(a.Age)
		row.ApacheChronicConditions = ChronicConditionNames(a.Chronic)
		row.ApacheOperativeStatus = optStr(string(a.OperativeStatus))
	}
	return row
}

func optStr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func derefStr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Describe is a short identifier for log lines.
func Describe(rowNum int64, row *model.EvaluationRow) string {
	if row.HN != "" {
		return fmt.Sprintf("row %d (HN %s)", rowNum, row.HN)
	}
	return fmt.Sprintf("row %d", rowNum)
}
