package domain

import "time"

// Message roles
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Feedback is the helpfulness flag on an exchange. The zero value means no
// feedback has been given yet.
type Feedback string

const (
	FeedbackNone      Feedback = ""
	FeedbackHelpful   Feedback = "helpful"
	FeedbackUnhelpful Feedback = "unhelpful"
)

// ChatLog is one persisted question-answer exchange for a product.
// Feedback is the only field mutated after creation.
type ChatLog struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	SessionID string    `json:"session_id"`
	Question  string    `json:"question"`
	Response  string    `json:"response"`
	Feedback  Feedback  `json:"feedback,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// DisplayMessage is one entry in a session's visible transcript.
// ExchangeID links an assistant message to its persisted ChatLog; it is empty
// for user messages, the welcome message, and degraded fallback messages,
// which makes exactly those messages ineligible for feedback.
type DisplayMessage struct {
	ID         string    `json:"id"`
	Role       string    `json:"role"` // user, assistant
	Text       string    `json:"text"`
	ExchangeID string    `json:"exchange_id,omitempty"`
	Feedback   Feedback  `json:"feedback,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// SessionState is the renderable snapshot of a chat session returned to the
// chat surface after every operation.
type SessionState struct {
	ID                string           `json:"id"`
	ProductID         string           `json:"product_id"`
	ProductName       string           `json:"product_name"`
	Messages          []DisplayMessage `json:"messages"`
	Sending           bool             `json:"sending"`
	EscalationVisible bool             `json:"escalation_visible"`
	SupportEmail      string           `json:"support_email,omitempty"`
	SupportPhone      string           `json:"support_phone,omitempty"`
}

// SendMessageRequest is the request to send a chat message
type SendMessageRequest struct {
	SessionID string `json:"session_id" binding:"required"`
	Message   string `json:"message"`
}

// SubmitFeedbackRequest is the request to rate an assistant message
type SubmitFeedbackRequest struct {
	SessionID string `json:"session_id" binding:"required"`
	MessageID string `json:"message_id" binding:"required"`
	Helpful   *bool  `json:"helpful" binding:"required"`
}

// Stats represents system statistics
type Stats struct {
	TotalBusinesses    int `json:"total_businesses"`
	TotalProducts      int `json:"total_products"`
	TotalExchanges     int `json:"total_exchanges"`
	UnhelpfulExchanges int `json:"unhelpful_exchanges"`
	OpenEscalations    int `json:"open_escalations"`
}
