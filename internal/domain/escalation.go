package domain

import "time"

// Escalation reason codes
const (
	EscalationReasonUnhelpful = "unhelpful_responses"
)

// Escalation status values
const (
	EscalationStatusPending  = "pending"
	EscalationStatusResolved = "resolved"
)

// Escalation is a handoff-to-human record created when a product accumulates
// enough unhelpful responses.
type Escalation struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	Reason    string    `json:"reason"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpdateEscalationRequest is the request to change an escalation's status
type UpdateEscalationRequest struct {
	Status string `json:"status" binding:"required"`
}
