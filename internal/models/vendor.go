// internal/models/vendor.go
package models

import "strings"

// BudgetSegment is one of the four fixed budget bands a vendor can
// declare expertise in.
type BudgetSegment int

const (
	BudgetSegmentEconomy BudgetSegment = iota
	BudgetSegmentMid
	BudgetSegmentPremium
	BudgetSegmentLuxury
	budgetSegmentCount
)

// BudgetSegmentCount is the number of fixed budget segments per profile.
const BudgetSegmentCount = int(budgetSegmentCount)

func (s BudgetSegment) String() string {
	switch s {
	case BudgetSegmentEconomy:
		return "economy"
	case BudgetSegmentMid:
		return "mid"
	case BudgetSegmentPremium:
		return "premium"
	case BudgetSegmentLuxury:
		return "luxury"
	}
	return "unknown"
}

// SizeBand is one of the four fixed guest-count bands.
type SizeBand int

const (
	SizeBandIntimate SizeBand = iota
	SizeBandMedium
	SizeBandLarge
	SizeBandMassive
	sizeBandCount
)

// SizeBandCount is the number of fixed event-size bands per profile.
const SizeBandCount = int(sizeBandCount)

func (b SizeBand) String() string {
	switch b {
	case SizeBandIntimate:
		return "intimate"
	case SizeBandMedium:
		return "medium"
	case SizeBandLarge:
		return "large"
	case SizeBandMassive:
		return "massive"
	}
	return "unknown"
}

// ExpertiseRange is a declared [min,max] range with an expert flag. The
// same shape backs both budget segments and event-size bands, so segment
// matching is a plain iteration over a fixed array.
type ExpertiseRange struct {
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	IsExpert bool    `json:"isExpert"`
}

// Contains reports whether v falls inside the declared range, bounds
// inclusive.
func (r ExpertiseRange) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// ServiceArea is one city a vendor serves, with an optional radius.
type ServiceArea struct {
	City     string  `json:"city"`
	RadiusKm float64 `json:"radiusKm"`
}

// MatchesLocation reports whether the area's city matches the requested
// location by case-insensitive substring containment, and whether the
// match is exact.
func (a ServiceArea) MatchesLocation(location string) (matched, exact bool) {
	city := strings.ToLower(strings.TrimSpace(a.City))
	loc := strings.ToLower(strings.TrimSpace(location))
	if city == "" || loc == "" {
		return false, false
	}
	if city == loc {
		return true, true
	}
	if strings.Contains(city, loc) || strings.Contains(loc, city) {
		return true, false
	}
	return false, false
}

// AlgorithmWeights are the vendor's own declared per-criterion weights.
// They are relative contributions, not probabilities, and are never
// re-normalized: vendors with different business models emphasize
// different criteria, so overall scores are rank-comparable within one
// run only.
type AlgorithmWeights struct {
	Price        float64 `json:"priceWeight"`
	Location     float64 `json:"locationWeight"`
	Rating       float64 `json:"ratingWeight"`
	Availability float64 `json:"availabilityWeight"`
	Experience   float64 `json:"experienceWeight"`
	Style        float64 `json:"styleWeight"`
}

// VendorExpertiseProfile is one vendor's self-reported expertise record.
// It is owned by vendor onboarding and read-only to the matching engine.
type VendorExpertiseProfile struct {
	VendorID          string                             `json:"vendorId"`
	PrimaryEventTypes []EventType                        `json:"primaryEventTypes"`
	SizeBands         [SizeBandCount]ExpertiseRange      `json:"eventSizeExpertise"`
	BudgetSegments    [BudgetSegmentCount]ExpertiseRange `json:"budgetExpertise"`
	ServiceAreas      []ServiceArea                      `json:"serviceAreas"`
	AestheticStyles   []EventStyle                       `json:"aestheticStyles"`
	YearsOfExperience int                                `json:"yearsOfExperience"`
	Weights           AlgorithmWeights                   `json:"algorithmWeights"`
}

// SupportsEventType reports whether the vendor lists eventType among its
// primary event types.
func (p *VendorExpertiseProfile) SupportsEventType(eventType EventType) bool {
	for _, t := range p.PrimaryEventTypes {
		if t == eventType {
			return true
		}
	}
	return false
}

// SupportsStyle reports whether the vendor lists style among its
// aesthetic styles.
func (p *VendorExpertiseProfile) SupportsStyle(style EventStyle) bool {
	for _, s := range p.AestheticStyles {
		if s == style {
			return true
		}
	}
	return false
}

// ExpertSizeBandFor returns the size band covering guestCount with
// IsExpert set, if any.
func (p *VendorExpertiseProfile) ExpertSizeBandFor(guestCount int) (SizeBand, bool) {
	for i, band := range p.SizeBands {
		if band.IsExpert && band.Contains(float64(guestCount)) {
			return SizeBand(i), true
		}
	}
	return 0, false
}
