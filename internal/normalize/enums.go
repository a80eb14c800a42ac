package normalize

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gyeh/rehtriage/internal/model"
)

var nonAlphanumeric = regexp.MustCompile(`[^A-Za-z0-9]`)

// canonical lowercases s and strips every non-alphanumeric character so that
// "Priority 1", "priority_1" and "PRIORITY1" compare equal.
func canonical(s string) string {
	return strings.ToLower(nonAlphanumeric.ReplaceAllString(strings.TrimSpace(s), ""))
}

var priorityAliases = map[string]model.Priority{
	"1": model.Priority1, "p1": model.Priority1, "priority1": model.Priority1,
	"2": model.Priority2, "p2": model.Priority2, "priority2": model.Priority2,
	"3": model.Priority3, "p3": model.Priority3, "priority3": model.Priority3,
	"4": model.Priority4, "p4": model.Priority4, "priority4": model.Priority4,
}

// ParsePriority accepts "1".."4", "P1".."P4" and "priority1" in any case or
// spacing.
func ParsePriority(s string) (model.Priority, error) {
	if p, ok := priorityAliases[canonical(s)]; ok {
		return p, nil
	}
	return "", fmt.Errorf("unknown priority %q", s)
}

var wardAliases = map[string]model.Ward{
	"ae":        model.WardEmergency,
	"er":        model.WardEmergency,
	"emergency": model.WardEmergency,
	"ward":      model.WardGeneral,
	"general":   model.WardGeneral,
	"icu":       model.WardICU,
}

// ParseWard maps a ward name onto one of the known units.
func ParseWard(s string) (model.Ward, error) {
	if w, ok := wardAliases[canonical(s)]; ok {
		return w, nil
	}
	return "", fmt.Errorf("unknown ward %q", s)
}

// ParseAssessmentType accepts "SOFA" and "APACHE" (or "APACHE II").
func ParseAssessmentType(s string) (model.AssessmentType, error) {
	switch canonical(s) {
	case "sofa":
		return model.AssessmentSOFA, nil
	case "apache", "apacheii", "apache2":
		return model.AssessmentAPACHE, nil
	}
	return "", fmt.Errorf("unknown assessment type %q", s)
}

// ParseAcidBaseMode accepts "ph" and "hco3" (or "bicarbonate"). Empty input
// yields an empty mode, which scores 0.
func ParseAcidBaseMode(s string) (model.AcidBaseMode, error) {
	switch canonical(s) {
	case "":
		return "", nil
	case "ph":
		return model.AcidBasePH, nil
	case "hco3", "bicarbonate":
		return model.AcidBaseHCO3, nil
	}
	return "", fmt.Errorf("unknown acid-base mode %q", s)
}

// ParseOperativeStatus maps the chronic-health admission category. Empty
// input means none.
func ParseOperativeStatus(s string) (model.OperativeStatus, error) {
	switch canonical(s) {
	case "", "none":
		return model.OperativeNone, nil
	case "electivepostop", "elective":
		return model.OperativeElective, nil
	case "nonoporemergency", "nonoperative", "emergency":
		return model.OperativeNonOrEmergent, nil
	}
	return "", fmt.Errorf("unknown operative status %q", s)
}

// ParseConditionKey resolves a comorbidity name against the catalog.
func ParseConditionKey(s string) (model.ConditionKey, error) {
	want := canonical(s)
	for _, c := range model.AllConditions {
		if canonical(string(c.Key)) == want {
			return c.Key, nil
		}
	}
	return "", fmt.Errorf("unknown comorbidity %q (known: %s)", s, strings.Join(model.ConditionKeys(), ", "))
}

// ParseChronicConditions sets a flag per listed organ system.
func ParseChronicConditions(names []string) (model.ChronicConditions, error) {
	var c model.ChronicConditions
	for _, n := range names {
		switch canonical(n) {
		case "liver":
			c.Liver = true
		case "respiratory":
			c.Respiratory = true
		case "renal":
			c.Renal = true
		case "immunosuppression", "immunocompromised":
			c.Immunosuppression = true
		default:
			return model.ChronicConditions{}, fmt.Errorf("unknown chronic condition %q", n)
		}
	}
	return c, nil
}

// ChronicConditionNames lists the flags set in c.
func ChronicConditionNames(c model.ChronicConditions) []string {
	var out []string
	if c.Liver {
		out = append(out, "liver")
	}
	if c.Respiratory {
		out = append(out, "respiratory")
	}
	if c.Renal {
		out = append(out, "renal")
	}
	if c.Immunosuppression {
		out = append(out, "immunosuppression")
	}
	return out
}
