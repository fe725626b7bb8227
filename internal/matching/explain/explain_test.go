// internal/matching/explain/explain_test.go
package explain

import (
	"testing"

	"evea-matching/internal/models"

	"github.com/stretchr/testify/assert"
)

func baseProfile() *models.VendorExpertiseProfile {
	return &models.VendorExpertiseProfile{
		VendorID:          "vendor-123",
		YearsOfExperience: 2,
	}
}

func TestMatchReasons(t *testing.T) {
	tests := []struct {
		name     string
		scores   models.CriterionScores
		setup    func(p *models.VendorExpertiseProfile)
		request  models.EventRequest
		expected []string
	}{
		{
			name:     "no rule fires",
			scores:   models.CriterionScores{Budget: 5, Rating: 3.0},
			setup:    func(p *models.VendorExpertiseProfile) {},
			expected: nil,
		},
		{
			name:     "budget at threshold",
			scores:   models.CriterionScores{Budget: 8.0},
			setup:    func(p *models.VendorExpertiseProfile) {},
			expected: []string{"Perfect budget match for your event"},
		},
		{
			name:     "rating at threshold on native scale",
			scores:   models.CriterionScores{Rating: 4.5},
			setup:    func(p *models.VendorExpertiseProfile) {},
			expected: []string{"Highly rated by previous clients"},
		},
		{
			name:   "rating just below threshold",
			scores: models.CriterionScores{Rating: 4.49},
			setup:  func(p *models.VendorExpertiseProfile) {},
		},
		{
			name:   "experience at threshold",
			scores: models.CriterionScores{},
			setup: func(p *models.VendorExpertiseProfile) {
				p.YearsOfExperience = 5
			},
			expected: []string{"5+ years of experience"},
		},
		{
			name:   "size band specialist",
			scores: models.CriterionScores{},
			setup: func(p *models.VendorExpertiseProfile) {
				p.SizeBands[models.SizeBandLarge] = models.ExpertiseRange{Min: 150, Max: 500, IsExpert: true}
			},
			request:  models.EventRequest{GuestCount: 200},
			expected: []string{"Specialist for large-sized events"},
		},
		{
			name:   "covering band without expert flag gives no reason",
			scores: models.CriterionScores{},
			setup: func(p *models.VendorExpertiseProfile) {
				p.SizeBands[models.SizeBandLarge] = models.ExpertiseRange{Min: 150, Max: 500, IsExpert: false}
			},
			request: models.EventRequest{GuestCount: 200},
		},
		{
			name:   "all rules fire in fixed order",
			scores: models.CriterionScores{Budget: 10, Rating: 4.8},
			setup: func(p *models.VendorExpertiseProfile) {
				p.YearsOfExperience = 12
				p.SizeBands[models.SizeBandMassive] = models.ExpertiseRange{Min: 500, Max: 5000, IsExpert: true}
			},
			request: models.EventRequest{GuestCount: 800},
			expected: []string{
				"Perfect budget match for your event",
				"Highly rated by previous clients",
				"12+ years of experience",
				"Specialist for massive-sized events",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := baseProfile()
			tt.setup(profile)

			reasons := MatchReasons(&tt.request, profile, tt.scores)

			assert.Equal(t, tt.expected, reasons)
		})
	}
}

func TestMatchReasons_DerivedFromScoresOnly(t *testing.T) {
	// The budget rule reads the already-computed score, never the raw
	// budget, so a neutral score yields no reason even for a contained
	// budget.
	profile := baseProfile()
	profile.BudgetSegments[models.BudgetSegmentMid] = models.ExpertiseRange{Min: 0, Max: 1000000, IsExpert: true}
	request := models.EventRequest{Budget: 100000}

	reasons := MatchReasons(&request, profile, models.CriterionScores{Budget: 5})

	assert.NotContains(t, reasons, "Perfect budget match for your event")
}
