// internal/matching/explain/explain.go

// Package explain derives human-readable match reasons from the same
// criterion scores the aggregator ranks on. There is no second scoring
// path, so an explanation can never contradict the ranking.
package explain

import (
	"fmt"

	"evea-matching/internal/models"
)

// Thresholds for the reason rules. The rating threshold is on the
// native 0-5 listing scale, which is the scale the rating criterion is
// carried on end to end.
const (
	BudgetReasonThreshold     = 8.0
	RatingReasonThreshold     = 4.5
	ExperienceReasonThreshold = 5
)

const (
	reasonBudget = "Perfect budget match for your event"
	reasonRating = "Highly rated by previous clients"
)

// MatchReasons produces the ordered reason strings for one candidate
// from its already-computed criterion scores.
func MatchReasons(request *models.EventRequest, profile *models.VendorExpertiseProfile, scores models.CriterionScores) []string {
	var reasons []string

	if scores.Budget >= BudgetReasonThreshold {
		reasons = append(reasons, reasonBudget)
	}
	if scores.Rating >= RatingReasonThreshold {
		reasons = append(reasons, reasonRating)
	}
	if profile.YearsOfExperience >= ExperienceReasonThreshold {
		reasons = append(reasons, fmt.Sprintf("%d+ years of experience", profile.YearsOfExperience))
	}
	if band, ok := profile.ExpertSizeBandFor(request.GuestCount); ok {
		reasons = append(reasons, fmt.Sprintf("Specialist for %s-sized events", band))
	}

	return reasons
}
