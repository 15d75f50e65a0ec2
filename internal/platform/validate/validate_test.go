// Copyright (c) 2026 Recalldash. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package validate_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/recalldash/internal/platform/apperr"
	"github.com/taibuivan/recalldash/internal/platform/validate"
)

/*
TestValidator_Required tests the mandatory field validation logic.
*/
func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		value    string
		hasError bool
	}{
		{"valid_string", "maker", "Acme Motors", false},
		{"empty_string", "maker", "", true},
		{"whitespace_only", "maker", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Required(tt.field, tt.value)

			if tt.hasError {
				assert.True(t, v.HasErrors())
				err := v.Err()
				require.NotNil(t, err)

				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, "VALIDATION_ERROR", ae.Code)
				assert.Equal(t, tt.field, ae.Details[0].Field)
			} else {
				assert.False(t, v.HasErrors())
				assert.Nil(t, v.Err())
			}
		})
	}
}

/*
TestValidator_MaxLen verifies that the length rule counts Unicode characters,
not bytes.
*/
func TestValidator_MaxLen(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		max     int
		isValid bool
	}{
		{"within_limit", "sedan", 10, true},
		{"at_limit", strings.Repeat("a", 10), 10, true},
		{"over_limit", strings.Repeat("a", 11), 10, false},
		{"multibyte_counted_as_runes", strings.Repeat("가", 10), 10, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.MaxLen("q", tt.value, tt.max)

			assert.Equal(t, !tt.isValid, v.HasErrors())
		})
	}
}

/*
TestValidator_Range checks the inclusive integer range rule.
*/
func TestValidator_Range(t *testing.T) {
	tests := []struct {
		name    string
		value   int
		isValid bool
	}{
		{"below_min", 1999, false},
		{"at_min", 2000, true},
		{"within", 2022, true},
		{"at_max", 2026, true},
		{"above_max", 2027, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Range("year", tt.value, 2000, 2026)

			assert.Equal(t, !tt.isValid, v.HasErrors())
		})
	}
}

/*
TestValidator_OneOf checks the allowed-set rule used for the scope filter.
*/
func TestValidator_OneOf(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		isValid bool
	}{
		{"all", "all", true},
		{"domestic", "domestic", true},
		{"overseas", "overseas", true},
		{"unknown_value", "imported", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.OneOf("scope", tt.value, "all", "domestic", "overseas")

			assert.Equal(t, !tt.isValid, v.HasErrors())
		})
	}
}

/*
TestValidator_Custom verifies the condition-based rule and its message.
*/
func TestValidator_Custom(t *testing.T) {
	v := &validate.Validator{}
	v.Custom("to", 2024 < 2019, "Must not precede 'from'")
	assert.False(t, v.HasErrors())

	v.Custom("to", 2019 < 2024, "Must not precede 'from'")
	require.True(t, v.HasErrors())

	ae := apperr.As(v.Err())
	require.NotNil(t, ae)
	assert.Equal(t, "to", ae.Details[0].Field)
	assert.Equal(t, "Must not precede 'from'", ae.Details[0].Message)
}

/*
TestValidator_Chain tests the fluent API (chaining multiple rules).
*/
func TestValidator_Chain(t *testing.T) {
	v := &validate.Validator{}

	// Multi-rule validation
	err := v.
		Required("maker", "Acme Motors").
		MaxLen("q", "X1", 100).
		OneOf("scope", "domestic", "all", "domestic", "overseas").
		Err()

	assert.NoError(t, err)
	assert.False(t, v.HasErrors())
}

/*
TestValidator_Chain_Failure tests error accumulation in the chain.
*/
func TestValidator_Chain_Failure(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Required("maker", "").                              // Fails
		OneOf("scope", "imported", "domestic", "overseas"). // Fails
		Custom("to", true, "Must not precede 'from'").      // Fails
		Err()

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)

	// Should accumulate all 3 errors
	assert.Len(t, ae.Details, 3)
}
