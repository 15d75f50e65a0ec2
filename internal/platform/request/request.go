// Copyright (c) 2026 Recalldash. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package request provides utilities for extracting data from HTTP requests.

Every recall endpoint is a GET with query-string filters, so this package
focuses on safe query parameter extraction: trimmed strings, clamped
integers, and optional integers that distinguish "absent" from zero.
*/
package requestutil

import (
	"net/http"
	"strconv"
	"strings"
)

/*
Query retrieves a trimmed query-string parameter.

Returns an empty string when the parameter is absent.
*/
func Query(request *http.Request, name string) string {
	return strings.TrimSpace(request.URL.Query().Get(name))
}

/*
QueryDefault retrieves a trimmed query-string parameter, falling back to a
default when the parameter is absent or blank.
*/
func QueryDefault(request *http.Request, name, fallback string) string {
	if value := Query(request, name); value != "" {
		return value
	}
	return fallback
}

/*
QueryInt retrieves an integer query parameter with a fallback default.

Non-numeric values fall back to the default rather than erroring — filter
parameters degrade to their no-op form instead of failing the request.
*/
func QueryInt(request *http.Request, name string, fallback int) int {
	raw := Query(request, name)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}

	return value
}

/*
QueryIntPtr retrieves an optional integer query parameter.

Returns nil when the parameter is absent, blank, or non-numeric, so callers
can treat nil as the "no filter" sentinel.
*/
func QueryIntPtr(request *http.Request, name string) *int {
	raw := Query(request, name)
	if raw == "" {
		return nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}

	return &value
}
