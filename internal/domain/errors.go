package domain

import "errors"

var (
	// ErrNotFound indicates resource not found
	ErrNotFound = errors.New("resource not found")
	// ErrInvalidRequest indicates invalid request
	ErrInvalidRequest = errors.New("invalid request")
	// ErrUnauthorized indicates unauthorized access
	ErrUnauthorized = errors.New("unauthorized")
	// ErrEmptyMessage indicates a blank chat message
	ErrEmptyMessage = errors.New("message is empty")
	// ErrSessionBusy indicates an exchange is already in flight for the session
	ErrSessionBusy = errors.New("session has an exchange in flight")
)
