package api

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/rfenton/volcano-api/internal/api/shared"
	"github.com/rfenton/volcano-api/internal/domain"
	"github.com/rfenton/volcano-api/internal/service/auth"
	"github.com/rfenton/volcano-api/internal/store"
)

// Client-facing messages for the credential endpoints.
const (
	msgCredentialsIncomplete = "Request body incomplete, both email and password are required"
	msgIncorrectCredentials  = "Incorrect email or password"
	msgUserExists            = "User already exists"
	msgUserCreated           = "User created"
)

// AuthHandler handles registration and login.
type AuthHandler struct {
	userStore        store.UserStore
	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier
	passwordHasher   auth.PasswordHasher
	validator        *validator.Validate
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	userStore store.UserStore,
	jwtService auth.JWTService,
	passwordVerifier auth.PasswordVerifier,
	passwordHasher auth.PasswordHasher,
) *AuthHandler {
	return &AuthHandler{
		userStore:        userStore,
		jwtService:       jwtService,
		passwordVerifier: passwordVerifier,
		passwordHasher:   passwordHasher,
		validator:        validator.New(),
	}
}

// Register handles the /register endpoint.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, msgCredentialsIncomplete)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, msgCredentialsIncomplete)
		return
	}

	hash, err := h.passwordHasher.Hash(req.Password)
	if err != nil {
		slog.Error("failed to hash password", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, msgInternal)
		return
	}

	user, err := domain.NewUser(req.Email, hash)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, msgCredentialsIncomplete)
		return
	}

	if err := h.userStore.Create(r.Context(), user); err != nil {
		switch MapErrorToStatusCode(err) {
		case http.StatusConflict:
			shared.RespondWithError(w, r, http.StatusConflict, msgUserExists)
		default:
			slog.Error("failed to create user", "error", err, "email", req.Email)
			shared.RespondWithError(w, r, http.StatusInternalServerError, msgInternal)
		}
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, MessageResponse{Message: msgUserCreated})
}

// Login handles the /login endpoint.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, msgCredentialsIncomplete)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, msgCredentialsIncomplete)
		return
	}

	user, err := h.userStore.GetByEmail(r.Context(), req.Email)
	if err != nil {
		if MapErrorToStatusCode(err) == http.StatusNotFound {
			// Same message as a wrong password so the endpoint does not
			// reveal which emails are registered.
			shared.RespondWithError(w, r, http.StatusUnauthorized, msgIncorrectCredentials)
			return
		}
		slog.Error("failed to get user by email", "error", err, "email", req.Email)
		shared.RespondWithError(w, r, http.StatusInternalServerError, msgInternal)
		return
	}

	if err := h.passwordVerifier.Compare(user.HashedPassword, req.Password); err != nil {
		shared.RespondWithError(w, r, http.StatusUnauthorized, msgIncorrectCredentials)
		return
	}

	token, err := h.jwtService.GenerateToken(r.Context(), user.Email)
	if err != nil {
		slog.Error("failed to generate token", "error", err, "email", user.Email)
		shared.RespondWithError(w, r, http.StatusInternalServerError, msgInternal)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, TokenResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: int(h.jwtService.Lifetime().Seconds()),
	})
}
