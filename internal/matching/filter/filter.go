// internal/matching/filter/filter.go

// Package filter implements the candidate filter: the hard gate every
// vendor must pass before scoring. Vendors failing event type or
// geography never reach the scorers.
package filter

import (
	"evea-matching/internal/models"
)

// Candidate is a profile that passed the filter, annotated with whether
// its geographic match was exact. The location scorer uses the flag
// instead of re-deriving the match.
type Candidate struct {
	Profile    models.VendorExpertiseProfile
	ExactCity  bool
	CorpusRank int // position in the source corpus, the stable tie-break key
}

// SelectCandidates returns the subset of profiles supporting the
// requested event type with at least one service area matching the
// requested location (case-insensitive substring containment). The
// result preserves corpus order; an empty result is valid and means
// "no candidates", not an error.
func SelectCandidates(request *models.EventRequest, corpus []models.VendorExpertiseProfile) []Candidate {
	var candidates []Candidate
	for i := range corpus {
		profile := &corpus[i]
		if !profile.SupportsEventType(request.EventType) {
			continue
		}

		matched, exact := matchServiceAreas(profile.ServiceAreas, request.Location)
		if !matched {
			continue
		}

		candidates = append(candidates, Candidate{
			Profile:    corpus[i],
			ExactCity:  exact,
			CorpusRank: i,
		})
	}
	return candidates
}

// matchServiceAreas scans the vendor's areas in declared order. An exact
// city match anywhere wins over earlier substring matches.
func matchServiceAreas(areas []models.ServiceArea, location string) (matched, exact bool) {
	for _, area := range areas {
		m, e := area.MatchesLocation(location)
		if !m {
			continue
		}
		matched = true
		if e {
			return true, true
		}
	}
	return matched, false
}
