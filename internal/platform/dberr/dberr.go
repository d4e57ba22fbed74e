// Copyright (c) 2026 SSBackend. All rights reserved.
// Author: sri.raksha.dev@gmail.com

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
//
// # Error Mapping
//
// Storage-specific errors (pgx.ErrNoRows, SQLSTATE classes) are mapped to
// domain-friendly [apperr.AppError] kinds so flow code never inspects
// driver internals and clients never see them.
package dberr

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Sri-Raksha/SSBackend/internal/platform/apperr"
)

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
//
// # Classification
//
//   - pgx.ErrNoRows            → NOT_FOUND for the named resource
//   - SQLSTATE 23505 (unique)  → CONFLICT (duplicate key — e.g. the losing
//     side of a concurrent registration race)
//   - other 23xxx constraints  → VALIDATION_ERROR carrying the constraint
//     name, the store-side diagnostic
//   - anything else            → INTERNAL_ERROR (store unavailable/errored)
func Wrap(err error, resource string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound(resource)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == pgerrcode.UniqueViolation:
			return apperr.Conflict(resource + " already exists")
		case pgerrcode.IsIntegrityConstraintViolation(pgErr.Code):
			// The constraint name is safe to forward; it never contains
			// secret material.
			return apperr.ValidationError("Invalid " + resource + " data: " + pgErr.ConstraintName)
		}
	}

	return apperr.Internal(err)
}
