package services

import (
	"github.com/google/uuid"
	"github.com/vinculo-social/vinculo/pkg/internal/fault"
)

// ParseID checks the shape of an identity string before anything touches
// the database. A malformed id is a validation failure, never a lookup.
func ParseID(raw string, message string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fault.Validation(message)
	}
	return id, nil
}
