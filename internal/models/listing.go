// internal/models/listing.go
package models

// ListingMetrics carries the quality metrics tracked per service listing.
type ListingMetrics struct {
	Rating            float64 `json:"rating"` // 0-5
	ReviewCount       int     `json:"reviewCount"`
	ResponseTimeHours float64 `json:"responseTimeHours"`
}

// VendorServiceListing is one bookable service offered by a vendor. A
// vendor may carry zero or more listings; the engine reads them to score
// ratings and never mutates them.
type VendorServiceListing struct {
	VendorID string         `json:"vendorId"`
	Category string         `json:"category"`
	Price    float64        `json:"price"`
	Metrics  ListingMetrics `json:"metrics"`
}

// MatchesCategories reports whether the listing's category is in the
// requested set. An empty set matches everything.
func (l *VendorServiceListing) MatchesCategories(categories []string) bool {
	if len(categories) == 0 {
		return true
	}
	for _, c := range categories {
		if c == l.Category {
			return true
		}
	}
	return false
}
