package domain

import "time"

const ContactSubmitted = "contact_submitted"

// ContactEvent mirrors the message grill-svc publishes on the contacts topic.
type ContactEvent struct {
	Type      string    `json:"type"`
	ContactID int       `json:"contact_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}
