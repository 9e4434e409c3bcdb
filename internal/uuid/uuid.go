// Package uuid wraps github.com/google/uuid so that resource IDs
// can be bound directly from URI parameters by gin.
package uuid

import (
	google_uuid "github.com/google/uuid"
)

// UUID is the ID type for all resources.
type UUID struct {
	google_uuid.UUID
}

// Nil is the zero value, used when no ID was supplied.
var Nil UUID

func New() UUID {
	return UUID{google_uuid.New()}
}

func NewString() string {
	return google_uuid.NewString()
}

// UnmarshalParam parses a URI parameter into a UUID via
// https://pkg.go.dev/github.com/google/uuid#Parse.
// An empty parameter yields Nil instead of an error.
func (u *UUID) UnmarshalParam(p string) error {
	if p == "" {
		*u = Nil
		return nil
	}

	parsed, e := google_uuid.Parse(p)
	if e != nil {
		return e
	}

	*u = UUID{parsed}
	return nil
}
