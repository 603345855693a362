package validator

import (
	"testing"

	domainerrors "gusto/internal/domain/errors"
	"gusto/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Email  string   `json:"email" validate:"required,email"`
	Budget *float64 `json:"budget" validate:"required,gte=0"`
	Level  int      `json:"level,omitempty" validate:"omitempty,min=1,max=5"`
}

func TestCustomValidator_Validate(t *testing.T) {
	v := New()
	budget := 10.0

	require.NoError(t, v.Validate(&sample{Email: "a@b.co", Budget: &budget}))

	negative := -1.0
	err := v.Validate(&sample{Email: "nope", Budget: &negative, Level: 9})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.ElementsMatch(t, []FieldError{
		{Field: "email", Rule: "email"},
		{Field: "budget", Rule: "gte", Param: "0"},
		{Field: "level", Rule: "max", Param: "5"},
	}, verr.Fields)
}

func TestCustomValidator_RequiredPointer(t *testing.T) {
	err := New().Validate(&sample{Email: "a@b.co"})

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []FieldError{{Field: "budget", Rule: "required"}}, verr.Fields)
}
