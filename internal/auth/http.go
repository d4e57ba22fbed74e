// Copyright (c) 2026 SSBackend. All rights reserved.
// Author: sri.raksha.dev@gmail.com

package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Sri-Raksha/SSBackend/internal/platform/requestutil"
	"github.com/Sri-Raksha/SSBackend/internal/platform/respond"
	"github.com/Sri-Raksha/SSBackend/internal/platform/validate"
)

// Handler implements the authentication HTTP endpoints.
//
// # Scope
//
// Handlers are gatekeepers: JSON parsing, the front-line credential
// request validation (both fields present and non-empty), and response
// shaping. They contain no flow logic and no store access.
type Handler struct {
	authService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{authService: service}
}

// Routes returns a [chi.Router] configured with authentication routes.
//
// # Endpoints
//   - POST /signup : Creates a new account.
//   - POST /login  : Authenticates and returns a session token.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/signup", handler.signup)
	router.Post("/login", handler.login)

	return router
}

// credentialRequest is the JSON payload shared by both endpoints.
type credentialRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// validateCredentials is the front-line guard: a request missing email or
// password short-circuits here, before any store lookup or hashing runs.
func (input credentialRequest) validateCredentials() error {
	v := &validate.Validator{}
	return v.
		Required("email", input.Email).
		Required("password", input.Password).
		Err()
}

// signup handles POST /api/auth/signup.
//
// # Returns
//   - 201 Created with {email} on success — the hash is never echoed back.
//   - 400 Bad Request for missing fields or store-side shape rejection.
//   - 409 Conflict if the email is already registered.
func (handler *Handler) signup(writer http.ResponseWriter, request *http.Request) {
	// ── 1. Payload Extraction ─────────────────────────────────────────────

	var input credentialRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ── 2. Boundary Validation ────────────────────────────────────────────

	if err := input.validateCredentials(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ── 3. Application Execution ──────────────────────────────────────────

	account, err := handler.authService.Register(request.Context(), RegisterInput{
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ── 4. Presentation Output ────────────────────────────────────────────

	respond.Created(writer, map[string]any{
		"email": account.Email,
	})
}

// login handles POST /api/auth/login.
//
// # Returns
//   - 200 OK with {token, email} on success.
//   - 404 Not Found for an unknown email.
//   - 401 Unauthorized for a wrong password.
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	// ── 1. Payload Extraction ─────────────────────────────────────────────

	var input credentialRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ── 2. Boundary Validation ────────────────────────────────────────────

	if err := input.validateCredentials(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ── 3. Application Execution ──────────────────────────────────────────

	session, err := handler.authService.Login(request.Context(), LoginInput{
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ── 4. Presentation Output ────────────────────────────────────────────

	respond.OK(writer, map[string]any{
		"token": session.Token,
		"email": session.Account.Email,
	})
}
