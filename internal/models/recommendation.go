// internal/models/recommendation.go
package models

// Criterion names the six scoring criteria. The names double as keys in
// RecommendationResult.CriterionScores.
const (
	CriterionBudget       = "budget"
	CriterionLocation     = "location"
	CriterionRating       = "rating"
	CriterionAvailability = "availability"
	CriterionExperience   = "experience"
	CriterionStyle        = "style"
)

// CriterionScores holds the six per-criterion score values for one
// candidate. Budget, location, availability and style are on a 0-10
// scale; rating stays on its native 0-5 listing scale and experience is
// raw years. The vendor's own declared weights account for the differing
// scales.
type CriterionScores struct {
	Budget       float64 `json:"budget"`
	Location     float64 `json:"location"`
	Rating       float64 `json:"rating"`
	Availability float64 `json:"availability"`
	Experience   float64 `json:"experience"`
	Style        float64 `json:"style"`
}

// ToMap returns the scores keyed by criterion name.
func (s CriterionScores) ToMap() map[string]float64 {
	return map[string]float64{
		CriterionBudget:       s.Budget,
		CriterionLocation:     s.Location,
		CriterionRating:       s.Rating,
		CriterionAvailability: s.Availability,
		CriterionExperience:   s.Experience,
		CriterionStyle:        s.Style,
	}
}

// RecommendationResult is one ranked vendor in the engine output. Derived
// per call, never persisted.
type RecommendationResult struct {
	VendorID        string             `json:"vendorId"`
	OverallScore    float64            `json:"overallScore"`
	CriterionScores map[string]float64 `json:"criterionScores"`
	MatchReasons    []string           `json:"matchReasons"`
}

// Recommendation is the full engine response for one event request.
type Recommendation struct {
	CandidateCount int                    `json:"candidateCount"`
	Results        []RecommendationResult `json:"results"`
}
