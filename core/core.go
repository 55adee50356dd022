package core

import "github.com/google/uuid"

// NewID returns a new random unique identifier used for sessions and
// contributions.
func NewID() string {
	return uuid.New().String()
}
