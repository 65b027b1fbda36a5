package domain

import "time"

// Product represents a registered product the assistant answers for
type Product struct {
	ID          string    `json:"id"`
	BusinessID  string    `json:"business_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price,omitempty"`
	ManualURL   string    `json:"manual_url,omitempty"`
	Model       string    `json:"model"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateProductRequest is the request to register a product
type CreateProductRequest struct {
	BusinessID  string  `json:"business_id" binding:"required"`
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Price       float64 `json:"price,omitempty"`
	ManualURL   string  `json:"manual_url,omitempty"`
	Model       string  `json:"model,omitempty"`
}

// UpdateProductRequest is the request to update a product
type UpdateProductRequest struct {
	Name        string  `json:"name,omitempty"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price,omitempty"`
	ManualURL   string  `json:"manual_url,omitempty"`
	Model       string  `json:"model,omitempty"`
}
