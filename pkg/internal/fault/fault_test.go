package fault

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindMatching(t *testing.T) {
	err := NotFound("Publicación no encontrada")

	assert.Equal(t, "Publicación no encontrada", err.Error())
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrConflict)

	// Wrapping keeps the kind reachable.
	wrapped := fmt.Errorf("lookup: %w", err)
	assert.ErrorIs(t, wrapped, ErrNotFound)
}

func TestConstructorKinds(t *testing.T) {
	for _, tc := range []struct {
		err  *Fault
		kind error
	}{
		{Validation("x"), ErrValidation},
		{NotFound("x"), ErrNotFound},
		{Forbidden("x"), ErrForbidden},
		{Conflict("x"), ErrConflict},
		{Unauthorized("x"), ErrUnauthorized},
	} {
		assert.True(t, errors.Is(tc.err, tc.kind))
	}
}
