package domain

import "time"

// Business represents a product owner with support contact details
type Business struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	SupportEmail string    `json:"support_email"`
	SupportPhone string    `json:"support_phone,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CreateBusinessRequest is the request to register a business
type CreateBusinessRequest struct {
	Name         string `json:"name" binding:"required"`
	SupportEmail string `json:"support_email" binding:"required,email"`
	SupportPhone string `json:"support_phone,omitempty"`
}

// UpdateBusinessRequest is the request to update a business
type UpdateBusinessRequest struct {
	Name         string `json:"name,omitempty"`
	SupportEmail string `json:"support_email,omitempty"`
	SupportPhone string `json:"support_phone,omitempty"`
}
