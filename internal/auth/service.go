// Copyright (c) 2026 SSBackend. All rights reserved.
// Author: sri.raksha.dev@gmail.com

package auth

import (
	"context"
	"fmt"

	"github.com/Sri-Raksha/SSBackend/internal/platform/apperr"
	"github.com/Sri-Raksha/SSBackend/internal/platform/sec"
	"github.com/Sri-Raksha/SSBackend/pkg/uuidv7"
)

// TokenProvider defines the contract for minting session tokens.
type TokenProvider interface {
	// IssueSessionToken creates a signed session token carrying the
	// account reference and email, with the fixed expiry contract
	// (expiresAt = issuedAt + TTL).
	IssueSessionToken(accountID, email string) (string, error)
}

// Hasher defines the one-way secret transform used by the registration flow.
//
// Kept as injected function values so tests can count calls and the
// production wiring stays a one-liner ([sec.HashPassword]).
type Hasher struct {
	Hash  func(plaintext string) (string, error)
	Check func(plaintext, hash string) bool
}

// DefaultHasher returns the bcrypt-backed production hasher.
func DefaultHasher() Hasher {
	return Hasher{
		Hash:  sec.HashPassword,
		Check: sec.CheckPasswordHash,
	}
}

// Service implements the registration and authentication flows.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing,
// registration, or login logic must be reviewed carefully.
//
// # Concurrency
//
// Service holds no mutable state: the store and token provider are set at
// construction and only read afterwards, so one Service instance serves
// all request goroutines.
type Service struct {
	accountStore  AccountStore
	tokenProvider TokenProvider
	hasher        Hasher
}

// NewService constructs a new [Service] with its dependencies injected.
func NewService(store AccountStore, tokenProvider TokenProvider, hasher Hasher) *Service {
	return &Service{
		accountStore:  store,
		tokenProvider: tokenProvider,
		hasher:        hasher,
	}
}

// RegisterInput holds a validated credential request for account creation.
type RegisterInput struct {
	Email    string
	Password string
}

// Register checks uniqueness, hashes the secret, and persists a new account.
//
// # Flow
//  1. Look up the email. Found → CONFLICT, and no hashing is performed
//     (wasted work avoided; the exists path stays cheap).
//  2. A lookup failure other than NOT_FOUND → server error.
//  3. Hash the password, build the account, persist it.
//  4. A store-level unique violation (two registrations raced past the
//     pre-check) maps to the same CONFLICT outcome as step 1; store-side
//     shape rejections surface as VALIDATION_ERROR with the store detail.
//
// The returned account carries the hash internally but the HTTP layer only
// ever exposes the email.
func (service *Service) Register(ctx context.Context, input RegisterInput) (*Account, error) {
	// ── 1. Uniqueness Check ───────────────────────────────────────────────

	_, err := service.accountStore.FindByEmail(ctx, input.Email)
	if err == nil {
		return nil, apperr.Conflict("An account with this email already exists")
	}
	if !apperr.HasCode(err, apperr.CodeNotFound) {
		// The directory itself failed; don't mask it as a conflict.
		return nil, fmt.Errorf("auth_service_lookup_failed: %w", err)
	}

	// ── 2. Secret Hashing ─────────────────────────────────────────────────

	passwordHash, err := service.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	// ── 3. Entity Construction ────────────────────────────────────────────

	account := &Account{
		ID:           uuidv7.New(), // Time-sortable ID to keep the PK index append-friendly.
		Email:        input.Email,
		PasswordHash: passwordHash,
	}

	// ── 4. Persistence ────────────────────────────────────────────────────

	// The store maps unique violations to CONFLICT and constraint
	// rejections to VALIDATION_ERROR; both pass through unchanged.
	if err := service.accountStore.Create(ctx, account); err != nil {
		if apperr.IsAppError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("auth_service_register_failed: %w", err)
	}

	return account, nil
}

// LoginInput holds a validated credential request for authentication.
type LoginInput struct {
	Email    string
	Password string
}

// LoginSession represents a successfully authenticated request's result.
type LoginSession struct {
	Token   string
	Account *Account
}

// Login verifies the credential and issues a session token.
//
// # Flow
//  1. Look up the account — absent → NOT_FOUND.
//  2. Verify the password against the stored hash — mismatch → UNAUTHORIZED.
//  3. Mint a session token bound to this account.
//
// Unknown-email and wrong-password remain distinguishable error kinds; see
// DESIGN.md for the deliberate decision on enumeration resistance.
func (service *Service) Login(ctx context.Context, input LoginInput) (*LoginSession, error) {
	// ── 1. Fetch Account ──────────────────────────────────────────────────

	account, err := service.accountStore.FindByEmail(ctx, input.Email)
	if err != nil {
		if apperr.HasCode(err, apperr.CodeNotFound) {
			return nil, apperr.NotFound("Account")
		}
		return nil, fmt.Errorf("auth_service_lookup_failed: %w", err)
	}

	// ── 2. Secret Verification ────────────────────────────────────────────

	// bcrypt compares in constant time over the hash content and returns
	// false for malformed hashes instead of erroring.
	if !service.hasher.Check(input.Password, account.PasswordHash) {
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	// ── 3. Token Issuance ─────────────────────────────────────────────────

	token, err := service.tokenProvider.IssueSessionToken(account.ID, account.Email)
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_generation_failed: %w", err)
	}

	return &LoginSession{
		Token:   token,
		Account: account,
	}, nil
}
