package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventProductSubmitted     EventType = "product_submitted"
	EventProductStatusChanged EventType = "product_status_changed"
	EventProductReported      EventType = "product_reported"
	EventProductDeleted       EventType = "product_deleted"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	ProductID string      `json:"product_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// ProductSubmittedPayload payload.
type ProductSubmittedPayload struct {
	OwnerEmail string `json:"owner_email"`
	Name       string `json:"name"`
}

// ProductStatusChangedPayload payload. Field carries which moderation field
// moved (status, featured or report).
type ProductStatusChangedPayload struct {
	Field    string `json:"field"`
	NewValue string `json:"new_value"`
}

// ProductReportedPayload payload.
type ProductReportedPayload struct {
	Report string `json:"report"`
}
