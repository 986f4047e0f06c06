// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: nhat.lepham.dev@gmail.com

package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhatlepham/inkwell/internal/platform/apperr"
	"github.com/nhatlepham/inkwell/internal/platform/validate"
)

/*
TestValidator_Required verifies empty and whitespace-only values fail.
*/
func TestValidator_Required(t *testing.T) {
	v := &validate.Validator{}
	err := v.Required("visitor_id", "   ").Err()

	require.Error(t, err)
	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "VALIDATION_ERROR", appError.Code)
	assert.Len(t, appError.Details, 1)
	assert.Equal(t, "visitor_id", appError.Details[0].Field)
}

/*
TestValidator_OneOf verifies membership in a closed set.
*/
func TestValidator_OneOf(t *testing.T) {
	v := &validate.Validator{}
	assert.NoError(t, v.OneOf("reaction", "love", "like", "love", "dislike").Err())

	v2 := &validate.Validator{}
	assert.Error(t, v2.OneOf("reaction", "meh", "like", "love", "dislike").Err())
}

/*
TestValidator_UUID verifies UUID format checks accept v4 and v7 values.
*/
func TestValidator_UUID(t *testing.T) {
	v := &validate.Validator{}
	assert.NoError(t, v.UUID("visitor_id", "0190cafe-0000-7000-8000-0123456789ab").Err())

	v2 := &validate.Validator{}
	assert.Error(t, v2.UUID("visitor_id", "not-a-uuid").Err())
}

/*
TestValidator_Chaining verifies multiple failures accumulate into one error.
*/
func TestValidator_Chaining(t *testing.T) {
	v := &validate.Validator{}
	err := v.
		Required("visitor_id", "").
		OneOf("reaction", "meh", "like", "love").
		Err()

	require.Error(t, err)
	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Len(t, appError.Details, 2)
	assert.True(t, v.HasErrors())
}
