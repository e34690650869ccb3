package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewID returns a short opaque token used as a record key. Uniqueness is
// not checked anywhere; collisions are accepted.
func NewID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}
