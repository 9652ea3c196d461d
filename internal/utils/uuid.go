package utils

import "github.com/google/uuid"

// NewSessionID returns a random identifier for the current process. Version
// 7 ids sort by creation time, which keeps lock markers easy to inspect; a
// random v4 id is used if the clock source fails.
func NewSessionID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
