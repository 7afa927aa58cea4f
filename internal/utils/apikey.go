package utils

import "github.com/google/uuid"

// NewAPIKey generates a fresh opaque api key.
func NewAPIKey() string {
	return uuid.NewString()
}

// NewResourceID generates an id for an embedded step resource.
func NewResourceID() string {
	return uuid.NewString()
}
