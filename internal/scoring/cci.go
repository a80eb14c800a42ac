package scoring

import "github.com/gyeh/rehtriage/internal/model"

// CciScore returns the Charlson index: each weight class contributes its
// weight once when any condition in the class is flagged. Keys outside the
// catalog are ignored.
func CciScore(c model.Comorbidities) int {
	total := 0
	for _, w := range model.WeightClasses {
		for _, cond := range model.ConditionsInClass(w) {
			if c[cond.Key] {
				total += w
				break
			}
		}
	}
	return total
}
