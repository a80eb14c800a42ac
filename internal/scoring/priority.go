package scoring

import "github.com/gyeh/rehtriage/internal/model"

var priorityPoints = map[model.Priority]int{
	model.Priority1: 4,
	model.Priority2: 3,
	model.Priority3: 2,
	model.Priority4: 0,
}

// PriorityScore returns the REH contribution of p. Unknown priorities score 0.
func PriorityScore(p model.Priority) int {
	return priorityPoints[p]
}
