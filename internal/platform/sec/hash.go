// Copyright (c) 2026 SSBackend. All rights reserved.
// Author: sri.raksha.dev@gmail.com

// Package sec provides cryptographic primitives and token management.
//
// # Architecture
//
// This package isolates security-sensitive code (password hashing, JWT
// signing) from the domain logic. It is injected into the application layer
// behind small interfaces so tests can substitute deterministic fakes.
package sec

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/Sri-Raksha/SSBackend/internal/platform/constants"
)

// HashPassword hashes a plain-text password using the bcrypt algorithm.
//
// bcrypt embeds a fresh random salt in every output, so hashing the same
// password twice yields two different strings. That property is relied on
// by the registration flow and asserted in tests.
func HashPassword(plainTextPassword string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(plainTextPassword), constants.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("sec: failed to hash password: %w", err)
	}
	return string(hashedBytes), nil
}

// CheckPasswordHash compares a plain-text password with its stored hash.
//
// # Security
//
// bcrypt's comparison is constant-time over the hash content, so the result
// does not leak which byte mismatched. A malformed stored hash simply
// returns false — callers must never use this function to infer whether an
// account exists.
func CheckPasswordHash(plainTextPassword, existingHash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(existingHash), []byte(plainTextPassword))
	return err == nil
}
