package id

import "github.com/google/uuid"

// New returns a fresh opaque record identifier.
func New() string {
	return uuid.NewString()
}
