package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventProfileUpserted EventType = "profile_upserted"
	EventAgencyCreated   EventType = "agency_created"
	EventAgencyUpdated   EventType = "agency_updated"
	EventAgencyVerified  EventType = "agency_verified"
	EventUserVerified    EventType = "user_verified"
	EventListingCreated  EventType = "listing_created"
	EventRequestCreated  EventType = "request_created"
	EventEmailBatchSent  EventType = "email_batch_sent"
)

// Event represents a domain event emitted by services after a successful
// privileged write.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	RecordID  string      `json:"record_id"`
	ActorID   string      `json:"actor_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload,omitempty"`
}

// ListingCreatedPayload payload.
type ListingCreatedPayload struct {
	AgencyID       string `json:"agency_id"`
	FloorPlanCount int    `json:"floor_plan_count"`
	Warning        string `json:"warning,omitempty"`
}

// EmailBatchSentPayload payload.
type EmailBatchSentPayload struct {
	TotalSent   int `json:"total_sent"`
	TotalFailed int `json:"total_failed"`
}
