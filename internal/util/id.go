// Package util holds small helpers shared across agentic3d packages. It
// lives in internal to avoid committing to public API stability.
package util

import "github.com/google/uuid"

// NewID returns a random UUID string used for message identifiers.
func NewID() string { return uuid.NewString() }
