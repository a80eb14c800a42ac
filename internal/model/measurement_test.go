package model

import (
	"encoding/json"
	"testing"
)

func TestSofaAssessment_NumbersDecodeAsText(t *testing.T) {
	var a SofaAssessment
	body := `{"respiration": 250.5, "is_ventilated": true, "platelets": 15, "cns": "3", "renal": -1e2}`
	if err := json.Unmarshal([]byte(body), &a); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if a.Respiration != "250.5" || a.Platelets != "15" || a.CNS != "3" || a.Renal != "-1e2" {
		t.Errorf("unexpected measurements: %+v", a)
	}
	if !a.IsVentilated {
		t.Error("is_ventilated lost")
	}
}

func TestApacheAssessment_NumbersDecodeAsText(t *testing.T) {
	var a ApacheAssessment
	body := `{"age": 70, "gcs": 10, "fio2": 0.6, "acid_base_mode": "ph",
		"chronic_conditions": {"liver": true}, "is_arf": false, "wbc": null}`
	if err := json.Unmarshal([]byte(body), &a); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if a.Age != "70" || a.GCS != "10" || a.FiO2 != "0.6" || a.WBC != "" {
		t.Errorf("unexpected measurements: %+v", a)
	}
	if a.AcidBaseMode != AcidBasePH || !a.Chronic.Liver {
		t.Errorf("non-measurement fields lost: %+v", a)
	}
}

func TestPatientRecord_NestedNumbers(t *testing.T) {
	var rec PatientRecord
	body := `{"assessment_type": "SOFA", "sofa": {"platelets": 15}, "apache": null}`
	if err := json.Unmarshal([]byte(body), &rec); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if rec.Sofa.Platelets != "15" {
		t.Errorf("platelets = %q, want 15", rec.Sofa.Platelets)
	}
}

func TestAssessment_RejectsNonObject(t *testing.T) {
	var a SofaAssessment
	if err := json.Unmarshal([]byte(`[1, 2]`), &a); err == nil {
		t.Error("expected error for array body")
	}
}
