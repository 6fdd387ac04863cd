package util

import (
	"github.com/google/uuid"
)

// NewRequestID returns a random identifier for tracing a single request
func NewRequestID() string {
	return uuid.New().String()
}
