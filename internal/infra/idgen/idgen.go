// Package idgen provides unique identifier generation.
package idgen

import (
	"github.com/google/uuid"

	"github.com/skosuge/taskpocket/internal/domain"
)

// Generator implements domain.IDGenerator using random UUIDs.
type Generator struct{}

// NewID returns a new unique identifier. IDs are opaque to the rest of
// the application and are never reused.
func (Generator) NewID() string {
	return uuid.NewString()
}

// Ensure Generator implements IDGenerator.
var _ domain.IDGenerator = Generator{}
