// Copyright (c) 2026 SSBackend. All rights reserved.
// Author: sri.raksha.dev@gmail.com

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sri-Raksha/SSBackend/internal/platform/constants"
	"github.com/Sri-Raksha/SSBackend/internal/platform/ctxutil"
	"github.com/Sri-Raksha/SSBackend/internal/platform/middleware"
	"github.com/Sri-Raksha/SSBackend/internal/platform/sec"
)

// corsConfig is a minimal CORSConfig stub.
type corsConfig struct {
	development bool
	extra       []string
}

func (c corsConfig) IsDevelopment() bool { return c.development }

func (c corsConfig) ExtraOriginList() []string { return c.extra }

func okHandler() http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusOK)
	})
}

/*
TestCORS_OriginAllowlist verifies the production allowlist behavior,
including the EXTRA_ORIGINS extension and preflight handling.
*/
func TestCORS_OriginAllowlist(t *testing.T) {
	tests := []struct {
		name        string
		cfg         corsConfig
		origin      string
		method      string
		wantStatus  int
		wantAllowed bool
	}{
		{
			name:        "no_origin_passes_through",
			cfg:         corsConfig{},
			origin:      "",
			method:      http.MethodGet,
			wantStatus:  http.StatusOK,
			wantAllowed: false,
		},
		{
			name:        "allowlisted_production_frontend",
			cfg:         corsConfig{},
			origin:      constants.AllowedOrigins[0],
			method:      http.MethodGet,
			wantStatus:  http.StatusOK,
			wantAllowed: true,
		},
		{
			name:        "localhost_dev_frontend",
			cfg:         corsConfig{},
			origin:      "http://localhost:3000",
			method:      http.MethodGet,
			wantStatus:  http.StatusOK,
			wantAllowed: true,
		},
		{
			name:        "extra_origin_from_env",
			cfg:         corsConfig{extra: []string{"https://staging.example.com"}},
			origin:      "https://staging.example.com",
			method:      http.MethodGet,
			wantStatus:  http.StatusOK,
			wantAllowed: true,
		},
		{
			name:        "unknown_origin_gets_no_cors_headers",
			cfg:         corsConfig{},
			origin:      "https://evil.example.com",
			method:      http.MethodGet,
			wantStatus:  http.StatusOK,
			wantAllowed: false,
		},
		{
			name:        "unknown_origin_preflight_forbidden",
			cfg:         corsConfig{},
			origin:      "https://evil.example.com",
			method:      http.MethodOptions,
			wantStatus:  http.StatusForbidden,
			wantAllowed: false,
		},
		{
			name:        "allowed_preflight_short_circuits",
			cfg:         corsConfig{},
			origin:      "http://localhost:3000",
			method:      http.MethodOptions,
			wantStatus:  http.StatusNoContent,
			wantAllowed: true,
		},
		{
			name:        "development_allows_anything",
			cfg:         corsConfig{development: true},
			origin:      "https://evil.example.com",
			method:      http.MethodGet,
			wantStatus:  http.StatusOK,
			wantAllowed: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := middleware.CORS(tt.cfg)(okHandler())

			request := httptest.NewRequest(tt.method, "/api/auth/login", nil)
			if tt.origin != "" {
				request.Header.Set(constants.HeaderOrigin, tt.origin)
			}
			recorder := httptest.NewRecorder()

			handler.ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			if tt.wantAllowed {
				assert.Equal(t, tt.origin, recorder.Header().Get("Access-Control-Allow-Origin"))
			} else {
				assert.Empty(t, recorder.Header().Get("Access-Control-Allow-Origin"))
			}
		})
	}
}

/*
TestAuthenticate verifies bearer-token extraction, verification, and
context injection.
*/
func TestAuthenticate(t *testing.T) {
	tokenService, err := sec.NewTokenService("middleware-test-secret", "ssbackend-test", time.Hour)
	require.NoError(t, err)

	token, err := tokenService.IssueSessionToken("account-123", "user@example.com")
	require.NoError(t, err)

	var seenCaller *sec.SessionClaims
	inner := http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		seenCaller = ctxutil.GetCaller(request.Context())
		writer.WriteHeader(http.StatusOK)
	})
	handler := middleware.Authenticate(tokenService)(inner)

	t.Run("valid_bearer_token", func(t *testing.T) {
		seenCaller = nil
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.Header.Set("Authorization", "Bearer "+token)
		recorder := httptest.NewRecorder()

		handler.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		require.NotNil(t, seenCaller)
		assert.Equal(t, "account-123", seenCaller.AccountID)
	})

	t.Run("missing_header_is_anonymous", func(t *testing.T) {
		seenCaller = nil
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		recorder := httptest.NewRecorder()

		handler.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Nil(t, seenCaller)
	})

	t.Run("malformed_header_rejected", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.Header.Set("Authorization", "Token abc")
		recorder := httptest.NewRecorder()

		handler.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("expired_token_rejected", func(t *testing.T) {
		expiredService, err := sec.NewTokenService("middleware-test-secret", "ssbackend-test", -1*time.Second)
		require.NoError(t, err)
		expired, err := expiredService.IssueSessionToken("account-123", "user@example.com")
		require.NoError(t, err)

		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.Header.Set("Authorization", "Bearer "+expired)
		recorder := httptest.NewRecorder()

		handler.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}

/*
TestRequestID verifies correlation ID generation and client override.
*/
func TestRequestID(t *testing.T) {
	var seenID string
	inner := http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		seenID = ctxutil.GetRequestID(request.Context())
	})
	handler := middleware.RequestID()(inner)

	t.Run("generates_when_missing", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		recorder := httptest.NewRecorder()

		handler.ServeHTTP(recorder, request)

		assert.NotEmpty(t, seenID)
		assert.Equal(t, seenID, recorder.Header().Get(constants.HeaderXRequestID))
	})

	t.Run("honors_client_provided_id", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.Header.Set(constants.HeaderXRequestID, "client-supplied")
		recorder := httptest.NewRecorder()

		handler.ServeHTTP(recorder, request)

		assert.Equal(t, "client-supplied", seenID)
	})
}
