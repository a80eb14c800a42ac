package reh

import "github.com/gyeh/rehtriage/internal/model"

const (
	highThreshold   = 7
	mediumThreshold = 5
)

const (
	labelConsiderICU = "Report physician - consider ICU admission"
	labelRequestBed  = "Report physician - request ICU bed"
)

// Classify returns the risk tier of a total REH score.
func Classify(total int) model.RiskLevel {
	switch {
	case total >= highThreshold:
		return model.RiskHigh
	case total >= mediumThreshold:
		return model.RiskMedium
	default:
		return model.RiskLow
	}
}

// RiskLabel returns the reporting instruction for a total REH score. Medium
// and low share the same label.
func RiskLabel(total int) string {
	if Classify(total) == model.RiskHigh {
		return labelConsiderICU
	}
	return labelRequestBed
}

// GuidelineKeyFor selects the guideline list for a total and ward.
func GuidelineKeyFor(total int, ward model.Ward) GuidelineKey {
	switch Classify(total) {
	case model.RiskHigh:
		if ward == model.WardICU {
			return Key7WithICU
		}
		return Key7NoICU
	case model.RiskMedium:
		return Key5To6
	default:
		return Key1To4
	}
}

// IcuCaseNote returns the semi-ICU transfer note shown to ICU wards, or "" when
// none applies.
func IcuCaseNote(total int, ward model.Ward) string {
	if ward != model.WardICU {
		return ""
	}
	switch {
	case total >= 1 && total < mediumThreshold:
		return registry[Key1To4].icuNote
	case total >= mediumThreshold && total < highThreshold:
		return registry[Key5To6].icuNote
	}
	return ""
}
