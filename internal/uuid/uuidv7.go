// Package uuid generates the time-ordered identifiers used for line entries
// and audit rows.
package uuid

import (
	googleuuid "github.com/google/uuid"
)

// New generates a new UUIDv7. Ids sort by creation time, which keeps line
// entries in insertion order when listed by id.
func New() string {
	id, err := googleuuid.NewV7()
	if err != nil {
		// Fallback to standard UUIDv4 if the random source fails
		return googleuuid.New().String()
	}
	return id.String()
}

// IsValid checks if a string is a valid UUID
func IsValid(s string) bool {
	_, err := googleuuid.Parse(s)
	return err == nil
}
