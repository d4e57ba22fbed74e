// Copyright (c) 2026 SSBackend. All rights reserved.
// Author: sri.raksha.dev@gmail.com

package auth

import (
	"context"
)

// AccountStore defines the data access contract for accounts — the external
// Account Directory this core collaborates with.
//
// # Implementations
//
// The canonical implementation is PostgreSQL ([PostgresAccountStore]);
// tests substitute in-memory fakes.
type AccountStore interface {
	// FindByEmail returns the account registered with the given email.
	//
	// Returns [apperr.NotFound] (code NOT_FOUND) if no account exists —
	// a normal outcome during registration, an AccountNotFound failure
	// during login. Any other error means the store itself failed.
	FindByEmail(ctx context.Context, email string) (*Account, error)

	// Create persists a brand-new account.
	//
	// The store enforces email uniqueness: a concurrent registration race
	// that slips past the service's pre-check surfaces here as a CONFLICT
	// error (unique-constraint violation), and shape rejections surface as
	// VALIDATION_ERROR. Creation is atomic — there is never a stored
	// account without its hash.
	Create(ctx context.Context, account *Account) error
}
