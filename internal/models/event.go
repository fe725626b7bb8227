// internal/models/event.go
package models

// EventType identifies the kind of event a customer is planning.
type EventType string

const (
	EventTypeWedding     EventType = "wedding"
	EventTypeCorporate   EventType = "corporate"
	EventTypeBirthday    EventType = "birthday"
	EventTypeAnniversary EventType = "anniversary"
	EventTypeEngagement  EventType = "engagement"
	EventTypeConference  EventType = "conference"
)

// EventStyle is the requested aesthetic for the event.
type EventStyle string

const (
	EventStyleTraditional EventStyle = "traditional"
	EventStyleModern      EventStyle = "modern"
	EventStyleVintage     EventStyle = "vintage"
	EventStyleRustic      EventStyle = "rustic"
	EventStyleLuxury      EventStyle = "luxury"
	EventStyleMinimalist  EventStyle = "minimalist"
)

// EventRequest describes one event to match vendors against. It is built
// per call and never persisted.
type EventRequest struct {
	EventType         EventType  `json:"eventType"`
	GuestCount        int        `json:"guestCount"`
	Budget            float64    `json:"budget"`
	Location          string     `json:"location"`
	Date              string     `json:"date,omitempty"` // YYYY-MM-DD
	Style             EventStyle `json:"style,omitempty"`
	ServiceCategories []string   `json:"serviceCategories,omitempty"`
}

// HasCategoryFilter reports whether the request restricts matching to a
// subset of service categories.
func (r *EventRequest) HasCategoryFilter() bool {
	return len(r.ServiceCategories) > 0
}
