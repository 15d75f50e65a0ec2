// Copyright (c) 2026 Recalldash. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
//
// Every storage operation funnels its failure through [Wrap], so exactly one
// error shape — DATA_ACCESS_FAILED with the operation name — crosses into the
// service layer. Raw pgx error types never reach handlers.
package dberr

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/taibuivan/recalldash/internal/platform/apperr"
)

var (
	// ErrNotFound is a standard error returned when a queried row doesn't exist.
	ErrNotFound = apperr.NotFound("Resource")
)

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the error type.
//
// The operation name (e.g. "list_recalls") travels with the error for logging
// and support diagnostics.
func Wrap(err error, operation string) error {
	if err == nil {
		return nil
	}

	// 1. Not Found mapping
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	// 2. Everything else — connection failures, bad SQL, timeouts — becomes
	// a single generic data-access error carrying the operation name.
	return apperr.DataAccess(operation, err)
}
