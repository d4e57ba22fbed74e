// Copyright (c) 2026 SSBackend. All rights reserved.
// Author: sri.raksha.dev@gmail.com

package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Sri-Raksha/SSBackend/internal/platform/dberr"
)

// pgPool is the subset of [pgxpool.Pool] the store uses. Narrowing to an
// interface lets tests substitute a pgxmock pool.
type pgPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresAccountStore implements [AccountStore] using pgx.
//
// # Error Mapping
//
// Driver-level errors (pgx.ErrNoRows, SQLSTATE constraint violations) are
// bridged to application error kinds via [dberr.Wrap]; callers never see
// pgx internals. The unique index on email is what resolves concurrent
// registrations of the same address — the losing insert maps to CONFLICT.
type PostgresAccountStore struct {
	pool pgPool
}

// NewAccountStore creates a new PostgreSQL implementation of [AccountStore].
func NewAccountStore(pool pgPool) *PostgresAccountStore {
	return &PostgresAccountStore{pool: pool}
}

// Create persists a new account row into auth.account.
func (store *PostgresAccountStore) Create(ctx context.Context, account *Account) error {
	const query = `
		INSERT INTO auth.account (id, email, passwordhash, createdat)
		VALUES ($1, $2, $3, $4)`

	if account.CreatedAt.IsZero() {
		account.CreatedAt = time.Now()
	}

	_, err := store.pool.Exec(ctx, query,
		account.ID,
		account.Email,
		account.PasswordHash,
		account.CreatedAt,
	)

	if err != nil {
		return dberr.Wrap(fmt.Errorf("postgres_account_store_create_failed: %w", err), "Account")
	}

	return nil
}

// FindByEmail retrieves an account by its unique email address.
//
// # Returns
//
// Returns [*Account] if found, or [apperr.NotFound] if no account exists.
func (store *PostgresAccountStore) FindByEmail(ctx context.Context, email string) (*Account, error) {
	const query = `
		SELECT id, email, passwordhash, createdat
		FROM auth.account
		WHERE email = $1`

	account := &Account{}
	err := store.pool.QueryRow(ctx, query, email).Scan(
		&account.ID,
		&account.Email,
		&account.PasswordHash,
		&account.CreatedAt,
	)

	if err != nil {
		return nil, dberr.Wrap(fmt.Errorf("postgres_account_store_find_by_email_failed: %w", err), "Account")
	}

	return account, nil
}
