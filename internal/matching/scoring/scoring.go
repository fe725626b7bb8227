// internal/matching/scoring/scoring.go

// Package scoring holds the six criterion scorers. Every scorer is a
// pure function of the event request and one vendor's data, so they can
// be tested in isolation and run concurrently without coordination.
package scoring

import (
	"evea-matching/internal/models"
)

// Score constants. Budget, location, availability and style are on a
// 0-10 scale. Rating stays on the native 0-5 listing scale and
// experience is raw years; the vendor's declared weights compensate for
// the differing scales.
const (
	BudgetExpertMidScore  = 10.0
	BudgetExpertEdgeScore = 8.0
	BudgetNeutralScore    = 5.0

	LocationExactScore    = 10.0
	LocationRegionalScore = 6.0

	AvailabilityNeutralScore = 7.0

	StyleMatchScore   = 10.0
	StyleNeutralScore = 5.0
)

// BudgetScore compares the requested budget against the vendor's four
// declared segments. A mid-segment expert hit scores highest; economy
// or premium expert hits score slightly lower; anything else gets the
// neutral score. Budget self-declaration is fuzzy, so a non-match is
// never punished to zero.
func BudgetScore(request *models.EventRequest, profile *models.VendorExpertiseProfile) float64 {
	mid := profile.BudgetSegments[models.BudgetSegmentMid]
	if mid.IsExpert && mid.Contains(request.Budget) {
		return BudgetExpertMidScore
	}

	for _, seg := range []models.BudgetSegment{models.BudgetSegmentEconomy, models.BudgetSegmentPremium} {
		r := profile.BudgetSegments[seg]
		if r.IsExpert && r.Contains(request.Budget) {
			return BudgetExpertEdgeScore
		}
	}

	return BudgetNeutralScore
}

// LocationScore grades how precisely the vendor's coverage hit the
// requested location. Vendors with no geographic match at all never
// reach this scorer; the candidate filter already removed them.
func LocationScore(exactCity bool) float64 {
	if exactCity {
		return LocationExactScore
	}
	return LocationRegionalScore
}

// RatingScore is the arithmetic mean of listing ratings over the
// listings matching the requested categories (all listings when no
// category filter is given). Zero listings score zero. The result is on
// the native 0-5 scale.
func RatingScore(request *models.EventRequest, listings []models.VendorServiceListing) float64 {
	var sum float64
	var count int
	for i := range listings {
		if !listings[i].MatchesCategories(request.ServiceCategories) {
			continue
		}
		sum += listings[i].Metrics.Rating
		count++
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

// AvailabilityScore is a fixed neutral value. Date-based rejection is a
// boolean gate owned by the booking calendar collaborator, not a graded
// criterion of this engine.
func AvailabilityScore() float64 {
	return AvailabilityNeutralScore
}

// ExperienceScore is the vendor's raw years of experience,
// intentionally not normalized to the 0-10 scale: vendors weight the
// criterion themselves, and changing the scale would change ranking
// outcomes.
func ExperienceScore(profile *models.VendorExpertiseProfile) float64 {
	return float64(profile.YearsOfExperience)
}

// StyleScore rewards an exact aesthetic-style hit and stays neutral
// when no style was requested or the vendor doesn't list it.
func StyleScore(request *models.EventRequest, profile *models.VendorExpertiseProfile) float64 {
	if request.Style == "" {
		return StyleNeutralScore
	}
	if profile.SupportsStyle(request.Style) {
		return StyleMatchScore
	}
	return StyleNeutralScore
}

// ScoreCandidate runs all six scorers for one candidate.
func ScoreCandidate(request *models.EventRequest, profile *models.VendorExpertiseProfile, exactCity bool, listings []models.VendorServiceListing) models.CriterionScores {
	return models.CriterionScores{
		Budget:       BudgetScore(request, profile),
		Location:     LocationScore(exactCity),
		Rating:       RatingScore(request, listings),
		Availability: AvailabilityScore(),
		Experience:   ExperienceScore(profile),
		Style:        StyleScore(request, profile),
	}
}
