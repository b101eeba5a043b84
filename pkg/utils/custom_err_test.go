package utils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldErrors_ErrorIsDeterministic(t *testing.T) {
	f := FieldErrors{"sets": "This field cannot be updated.", "name": "This field cannot be updated."}

	assert.Equal(t, "name: This field cannot be updated.; sets: This field cannot be updated.", f.Error())
}

func TestFieldErrors_SurvivesErrorsAs(t *testing.T) {
	var err error = FieldErrors{"weight": "Ensure that there are no more than 2 decimal places."}

	var fields FieldErrors
	require.True(t, errors.As(err, &fields))
	assert.Equal(t, "Ensure that there are no more than 2 decimal places.", fields["weight"])
}
