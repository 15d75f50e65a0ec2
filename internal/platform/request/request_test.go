// Copyright (c) 2026 Recalldash. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package requestutil_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	requestutil "github.com/taibuivan/recalldash/internal/platform/request"
)

/*
TestQuery verifies trimmed string extraction from the query string.
*/
func TestQuery(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		param    string
		expected string
	}{
		{"present", "/recalls?maker=Acme", "maker", "Acme"},
		{"absent", "/recalls", "maker", ""},
		{"trimmed", "/recalls?q=%20%20X1%20%20", "q", "X1"},
		{"blank_value", "/recalls?q=%20%20", "q", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest("GET", tt.target, nil)

			assert.Equal(t, tt.expected, requestutil.Query(request, tt.param))
		})
	}
}

/*
TestQueryDefault verifies fallback behavior for absent or blank parameters.
*/
func TestQueryDefault(t *testing.T) {
	request := httptest.NewRequest("GET", "/recalls?scope=domestic&maker=%20", nil)

	assert.Equal(t, "domestic", requestutil.QueryDefault(request, "scope", "all"))
	assert.Equal(t, "all", requestutil.QueryDefault(request, "maker", "all"))
	assert.Equal(t, "all", requestutil.QueryDefault(request, "missing", "all"))
}

/*
TestQueryInt verifies integer extraction with fallback on absent or malformed
values.
*/
func TestQueryInt(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		expected int
	}{
		{"valid", "/recalls?limit=250", 250},
		{"absent", "/recalls", 500},
		{"non_numeric", "/recalls?limit=abc", 500},
		{"negative_passes_through", "/recalls?limit=-1", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest("GET", tt.target, nil)

			assert.Equal(t, tt.expected, requestutil.QueryInt(request, "limit", 500))
		})
	}
}

/*
TestQueryIntPtr verifies that optional integers distinguish "absent" from any
supplied value, returning nil for the no-filter sentinel.
*/
func TestQueryIntPtr(t *testing.T) {
	t.Run("present", func(t *testing.T) {
		request := httptest.NewRequest("GET", "/recalls?year=2022", nil)

		year := requestutil.QueryIntPtr(request, "year")

		require.NotNil(t, year)
		assert.Equal(t, 2022, *year)
	})

	t.Run("absent", func(t *testing.T) {
		request := httptest.NewRequest("GET", "/recalls", nil)

		assert.Nil(t, requestutil.QueryIntPtr(request, "year"))
	})

	t.Run("non_numeric", func(t *testing.T) {
		request := httptest.NewRequest("GET", "/recalls?year=maybe", nil)

		assert.Nil(t, requestutil.QueryIntPtr(request, "year"))
	})
}
