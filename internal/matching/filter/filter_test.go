// internal/matching/filter/filter_test.go
package filter

import (
	"testing"

	"evea-matching/internal/models"

	"github.com/stretchr/testify/assert"
)

func profileFor(vendorID string, eventType models.EventType, cities ...string) models.VendorExpertiseProfile {
	areas := make([]models.ServiceArea, 0, len(cities))
	for _, c := range cities {
		areas = append(areas, models.ServiceArea{City: c, RadiusKm: 50})
	}
	return models.VendorExpertiseProfile{
		VendorID:          vendorID,
		PrimaryEventTypes: []models.EventType{eventType},
		ServiceAreas:      areas,
	}
}

func TestSelectCandidates(t *testing.T) {
	corpus := []models.VendorExpertiseProfile{
		profileFor("v1", models.EventTypeWedding, "Mumbai"),
		profileFor("v2", models.EventTypeCorporate, "Mumbai"),
		profileFor("v3", models.EventTypeWedding, "Delhi"),
		profileFor("v4", models.EventTypeWedding, "Navi Mumbai"),
	}

	request := &models.EventRequest{
		EventType: models.EventTypeWedding,
		Location:  "Mumbai",
	}

	candidates := SelectCandidates(request, corpus)

	// v2 fails the event type gate, v3 fails geography.
	assert.Len(t, candidates, 2)
	assert.Equal(t, "v1", candidates[0].Profile.VendorID)
	assert.True(t, candidates[0].ExactCity)
	assert.Equal(t, 0, candidates[0].CorpusRank)
	assert.Equal(t, "v4", candidates[1].Profile.VendorID)
	assert.False(t, candidates[1].ExactCity)
	assert.Equal(t, 3, candidates[1].CorpusRank)
}

func TestSelectCandidates_LocationMatching(t *testing.T) {
	tests := []struct {
		name      string
		cities    []string
		location  string
		matched   bool
		exactCity bool
	}{
		{"exact city", []string{"Mumbai"}, "Mumbai", true, true},
		{"exact city case insensitive", []string{"MUMBAI"}, "mumbai", true, true},
		{"request contains city", []string{"Mumbai"}, "Navi Mumbai", true, false},
		{"city contains request", []string{"Navi Mumbai"}, "Mumbai", true, false},
		{"exact beats earlier substring", []string{"Navi Mumbai", "Mumbai"}, "Mumbai", true, true},
		{"no overlap", []string{"Delhi"}, "Mumbai", false, false},
		{"whitespace trimmed", []string{"  Mumbai  "}, "Mumbai", true, true},
		{"empty city never matches", []string{""}, "Mumbai", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			corpus := []models.VendorExpertiseProfile{
				profileFor("v1", models.EventTypeWedding, tt.cities...),
			}
			request := &models.EventRequest{
				EventType: models.EventTypeWedding,
				Location:  tt.location,
			}

			candidates := SelectCandidates(request, corpus)

			if !tt.matched {
				assert.Empty(t, candidates)
				return
			}
			assert.Len(t, candidates, 1)
			assert.Equal(t, tt.exactCity, candidates[0].ExactCity)
		})
	}
}

func TestSelectCandidates_EmptyResultIsNotAnError(t *testing.T) {
	corpus := []models.VendorExpertiseProfile{
		profileFor("v1", models.EventTypeBirthday, "Mumbai"),
	}
	request := &models.EventRequest{
		EventType: models.EventTypeWedding,
		Location:  "Mumbai",
	}

	assert.Empty(t, SelectCandidates(request, corpus))
	assert.Empty(t, SelectCandidates(request, nil))
}

func TestSelectCandidates_PreservesCorpusOrder(t *testing.T) {
	corpus := []models.VendorExpertiseProfile{
		profileFor("v3", models.EventTypeWedding, "Mumbai"),
		profileFor("v1", models.EventTypeWedding, "Mumbai"),
		profileFor("v2", models.EventTypeWedding, "Mumbai"),
	}
	request := &models.EventRequest{
		EventType: models.EventTypeWedding,
		Location:  "Mumbai",
	}

	candidates := SelectCandidates(request, corpus)

	ids := make([]string, 0, len(candidates))
	for _, c := range candidates {
		ids = append(ids, c.Profile.VendorID)
	}
	assert.Equal(t, []string{"v3", "v1", "v2"}, ids)
}
