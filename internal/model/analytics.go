package model

// CollectionAnalyticsEvent is the document collection holding tracked events.
const CollectionAnalyticsEvent = "analyticsevent"

// EventType names a tracked user interaction.
type EventType string

const (
	EventPageView    EventType = "page_view"
	EventSectionView EventType = "section_view"
	EventClick       EventType = "click"
)

// AnalyticsEvent is one tracked user interaction.
// Label is a button label, section id or page name; Meta carries any extra
// data such as path or viewport. Both may be null.
type AnalyticsEvent struct {
	Type  EventType      `json:"type"  validate:"required,oneof=page_view section_view click"`
	Label *string        `json:"label"`
	Meta  map[string]any `json:"meta"`
}

// DefaultAnalyticsLimit is the number of events returned when no limit is given.
const DefaultAnalyticsLimit = 100
