// internal/recommender/validation.go
package recommender

import (
	"strings"

	"evea-matching/internal/models"
)

// ValidateRequest checks the required event request fields and returns
// the names of every missing one. The front end pre-validates, but the
// engine re-checks: it is the component accountable for the
// InvalidRequest contract.
func ValidateRequest(req *models.EventRequest) []string {
	var missing []string

	if req.EventType == "" {
		missing = append(missing, "eventType")
	}
	if req.GuestCount <= 0 {
		missing = append(missing, "guestCount")
	}
	if req.Budget <= 0 {
		missing = append(missing, "budget")
	}
	if strings.TrimSpace(req.Location) == "" {
		missing = append(missing, "location")
	}

	return missing
}
