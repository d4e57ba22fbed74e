// Copyright (c) 2026 SSBackend. All rights reserved.
// Author: sri.raksha.dev@gmail.com

/*
Package requestutil provides utilities for extracting data from HTTP requests.

It abstracts common body decoding and identity extraction patterns so that
handlers stay free of boilerplate and share one error shape for bad input.
*/
package requestutil

import (
	"encoding/json"
	"net/http"

	"github.com/Sri-Raksha/SSBackend/internal/platform/apperr"
	"github.com/Sri-Raksha/SSBackend/internal/platform/ctxutil"
	"github.com/Sri-Raksha/SSBackend/internal/platform/sec"
	"github.com/Sri-Raksha/SSBackend/internal/platform/validate"
)

// DecodeJSON reads the request body and decodes it into the target structure.
//
// Returns [validate.ErrInvalidJSON] if decoding fails.
func DecodeJSON(request *http.Request, target interface{}) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

// Caller extracts the verified session claims from the request context.
//
// Returns nil if the request is anonymous.
func Caller(request *http.Request) *sec.SessionClaims {
	return ctxutil.GetCaller(request.Context())
}

// RequiredCaller ensures the request is authenticated and returns its claims.
func RequiredCaller(request *http.Request) (*sec.SessionClaims, error) {
	claims := ctxutil.GetCaller(request.Context())
	if claims == nil {
		return nil, apperr.Unauthorized("Authentication required")
	}
	return claims, nil
}
