package uuid

import (
	"github.com/google/uuid"
)

// RequestID returns a fresh id for the X-Request-Id header.
func RequestID() string {
	return uuid.NewString()
}
