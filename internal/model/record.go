package model

import (
	"maps"
	"time"
)

// Ward is the unit the patient is evaluated in.
type Ward string

const (
	WardEmergency Ward = "AE"
	WardGeneral   Ward = "ward"
	WardICU       Ward = "ICU"
)

// PatientInfo is the intake data captured before scoring. Only Ward affects
// the result.
type PatientInfo struct {
	HN        string `json:"hn" yaml:"hn"`
	FirstName string `json:"first_name" yaml:"first_name"`
	LastName  string `json:"last_name" yaml:"last_name"`
	Gender    string `json:"gender" yaml:"gender"`
	Ward      Ward   `json:"ward" yaml:"ward"`
}

// PatientRecord is one evaluation session. It is a value: the With* methods
// return an updated copy and never touch the receiver.
type PatientRecord struct {
	Info           PatientInfo      `json:"info" yaml:"info"`
	AssessmentType AssessmentType   `json:"assessment_type" yaml:"assessment_type"`
	Sofa           SofaAssessment   `json:"sofa" yaml:"sofa"`
	Apache         ApacheAssessment `json:"apache" yaml:"apache"`
	Priority       Priority         `json:"priority" yaml:"priority"`
	Comorbidities  Comorbidities    `json:"comorbidities" yaml:"comorbidities"`
	EvaluatedOn    *time.Time       `json:"evaluated_on,omitempty" yaml:"evaluated_on,omitempty"`
}

// WithInfo returns a copy carrying the given intake data.
func (r PatientRecord) WithInfo(info PatientInfo) PatientRecord {
	out := r.clone()
	out.Info = info
	return out
}

// WithSofa returns a copy with SOFA selected as the active assessment.
func (r PatientRecord) WithSofa(a SofaAssessment) PatientRecord {
	out := r.clone()
	out.AssessmentType = AssessmentSOFA
	out.Sofa = a
	return out
}

// WithApache returns a copy with APACHE II selected as the active assessment.
func (r PatientRecord) WithApache(a ApacheAssessment) PatientRecord {
	out := r.clone()
	out.AssessmentType = AssessmentAPACHE
	out.Apache = a
	return out
}

// WithPriority returns a copy with the given priority.
func (r PatientRecord) WithPriority(p Priority) PatientRecord {
	out := r.clone()
	out.Priority = p
	return out
}

// WithComorbidities returns a copy holding its own copy of c.
func (r PatientRecord) WithComorbidities(c Comorbidities) PatientRecord {
	out := r.clone()
	out.Comorbidities = maps.Clone(c)
	return out
}

func (r PatientRecord) clone() PatientRecord {
	out := r
	out.Comorbidities = maps.Clone(r.Comorbidities)
	if r.EvaluatedOn != nil {
		t := *r.EvaluatedOn
		out.EvaluatedOn = &t
	}
	return out
}
