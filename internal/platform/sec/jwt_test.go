// Copyright (c) 2026 SSBackend. All rights reserved.
// Author: sri.raksha.dev@gmail.com

package sec_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sri-Raksha/SSBackend/internal/platform/sec"
)

/*
TestNewTokenService_MissingSecret verifies that an empty signing secret is a
construction-time failure, never a silently unsigned token.
*/
func TestNewTokenService_MissingSecret(t *testing.T) {
	service, err := sec.NewTokenService("", "ssbackend-test", time.Hour)

	require.ErrorIs(t, err, sec.ErrSigningKeyMissing)
	assert.Nil(t, service)
}

/*
TestTokenService_IssueAndVerify verifies the full issue → verify roundtrip
and that the identity claims survive intact.
*/
func TestTokenService_IssueAndVerify(t *testing.T) {
	service, err := sec.NewTokenService("unit-test-secret", "ssbackend-test", time.Hour)
	require.NoError(t, err)

	token, err := service.IssueSessionToken("account-123", "user@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.VerifyToken(token)
	require.NoError(t, err)

	assert.Equal(t, "account-123", claims.AccountID)
	assert.Equal(t, "account-123", claims.Subject)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, "ssbackend-test", claims.Issuer)
}

/*
TestTokenService_ExpiryContract verifies ExpiresAt == IssuedAt + TTL exactly.
*/
func TestTokenService_ExpiryContract(t *testing.T) {
	service, err := sec.NewTokenService("unit-test-secret", "ssbackend-test", time.Hour)
	require.NoError(t, err)

	token, err := service.IssueSessionToken("account-123", "user@example.com")
	require.NoError(t, err)

	claims, err := service.VerifyToken(token)
	require.NoError(t, err)

	require.NotNil(t, claims.IssuedAt)
	require.NotNil(t, claims.ExpiresAt)
	assert.Equal(t,
		claims.IssuedAt.Time.Add(time.Hour),
		claims.ExpiresAt.Time,
	)
}

/*
TestTokenService_RejectsExpiredToken verifies that a token past its
ExpiresAt claim is treated as invalid by the verifier.
*/
func TestTokenService_RejectsExpiredToken(t *testing.T) {
	// A negative TTL produces a token that is already expired on arrival.
	service, err := sec.NewTokenService("unit-test-secret", "ssbackend-test", -1*time.Second)
	require.NoError(t, err)

	token, err := service.IssueSessionToken("account-123", "user@example.com")
	require.NoError(t, err)

	claims, err := service.VerifyToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

/*
TestTokenService_RejectsForeignSignatures verifies tokens signed with a
different key or a non-HMAC algorithm are rejected.
*/
func TestTokenService_RejectsForeignSignatures(t *testing.T) {
	service, err := sec.NewTokenService("unit-test-secret", "ssbackend-test", time.Hour)
	require.NoError(t, err)

	t.Run("wrong_key", func(t *testing.T) {
		otherService, err := sec.NewTokenService("a-different-secret", "ssbackend-test", time.Hour)
		require.NoError(t, err)

		token, err := otherService.IssueSessionToken("account-123", "user@example.com")
		require.NoError(t, err)

		_, err = service.VerifyToken(token)
		assert.Error(t, err)
	})

	t.Run("alg_none", func(t *testing.T) {
		unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
			Subject:   "account-123",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		})
		token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = service.VerifyToken(token)
		assert.Error(t, err)
	})

	t.Run("garbage_string", func(t *testing.T) {
		_, err := service.VerifyToken("not.a.jwt")
		assert.Error(t, err)
	})
}
