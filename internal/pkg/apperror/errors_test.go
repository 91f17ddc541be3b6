package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorsMatchByKind(t *testing.T) {
	err := fmt.Errorf("create note: %w", Limit(3, 3))

	assert.ErrorIs(t, err, ErrLimit)
	assert.NotErrorIs(t, err, ErrValidation)

	kind, ok := KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, KindLimit, kind)
}

func TestLimitCarriesUsage(t *testing.T) {
	err := Limit(3, 4)

	assert.Equal(t, 3, err.Details["limit"])
	assert.Equal(t, 4, err.Details["used"])
}

func TestKindOfPlainError(t *testing.T) {
	_, ok := KindOf(errors.New("boom"))
	assert.False(t, ok)
}

func TestNotFoundMessage(t *testing.T) {
	err := NotFound("note", "abc")

	assert.Equal(t, "note not found", err.Error())
	assert.ErrorIs(t, err, ErrNotFound)
}
