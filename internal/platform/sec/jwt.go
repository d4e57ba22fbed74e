// Copyright (c) 2026 SSBackend. All rights reserved.
// Author: sri.raksha.dev@gmail.com

package sec

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrSigningKeyMissing is returned by [NewTokenService] when the signing
// secret is empty. It is a fatal misconfiguration: the issuer must never
// silently sign tokens with a weak or absent key.
var ErrSigningKeyMissing = errors.New("sec: JWT signing secret is not configured")

// SessionClaims represents the payload embedded inside a session token.
//
// # Shape
//
// The custom claims mirror the public response contract: "id" is the
// opaque account reference, "email" is the account identifier. Together
// with RegisteredClaims they make the expiry contract
// (ExpiresAt = IssuedAt + TTL) externally checkable.
type SessionClaims struct {
	jwt.RegisteredClaims

	AccountID string `json:"id"`
	Email     string `json:"email"`
}

// TokenService issues and verifies session tokens using HS256.
//
// # Concurrency
//
// The signing secret, issuer, and TTL are set once at construction and
// never mutated, so a single TokenService is safe for unsynchronized
// concurrent use across request goroutines.
type TokenService struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewTokenService creates a TokenService with a process-wide signing secret.
//
// An empty secret returns [ErrSigningKeyMissing]; main treats that as a
// fatal startup condition rather than a per-request error.
func NewTokenService(secret, issuer string, ttl time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, ErrSigningKeyMissing
	}

	return &TokenService{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
	}, nil
}

// IssueSessionToken creates a signed session token bound to an account.
//
// # Contract
//
//   - claims carry {id: accountID, email: email}
//   - IssuedAt = now, ExpiresAt = now + fixed TTL (1 hour in production wiring)
//   - output is a compact, URL-safe JWS string owned by the caller
func (service *TokenService) IssueSessionToken(accountID, email string) (string, error) {
	currentTime := time.Now()
	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID,
			Issuer:    service.issuer,
			IssuedAt:  jwt.NewNumericDate(currentTime),
			ExpiresAt: jwt.NewNumericDate(currentTime.Add(service.ttl)),
		},
		AccountID: accountID,
		Email:     email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(service.secret)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign token: %w", err)
	}

	return signedToken, nil
}

// VerifyToken checks the signature, algorithm, and expiry of a token string.
//
// Verification belongs to the request-authorization middleware, not the
// issuance path; it lives here so both sides share one claims definition.
func (service *TokenService) VerifyToken(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Reject any algorithm other than HMAC to prevent key-confusion attacks.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("sec: unexpected signing method: %v", token.Header["alg"])
		}
		return service.secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("sec: invalid token: %w", err)
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("sec: invalid token claims")
	}

	return claims, nil
}

// TTL returns the fixed token lifetime this service issues with.
func (service *TokenService) TTL() time.Duration {
	return service.ttl
}
