// Copyright (c) 2026 SSBackend. All rights reserved.
// Author: sri.raksha.dev@gmail.com

// Package auth implements the credential lifecycle for SSBackend: account
// registration, password verification, and session token issuance.
//
// # Architecture
//
// The entity and flow logic in this package have no dependency on HTTP or
// SQL. Storage is consumed through [AccountStore]; token issuance through
// [TokenProvider]. Both are injected at construction time.
package auth

import (
	"time"
)

// Account represents a registered principal.
//
// # Rules
//   - Email is globally unique and acts as the login identifier. It is
//     stored case-sensitively; no normalization is performed.
//   - PasswordHash is produced exclusively by the registration flow via
//     bcrypt; it never equals or reversibly derives from the plaintext.
//   - Accounts are immutable once created: this core defines no update or
//     delete operations.
type Account struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Explicitly omitted from JSON for security.
	CreatedAt    time.Time `json:"created_at"`
}
