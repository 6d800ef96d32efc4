package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rfenton/volcano-api/internal/api/shared"
	"github.com/rfenton/volcano-api/internal/domain"
	"github.com/rfenton/volcano-api/internal/mocks"
)

func strPtr(s string) *string { return &s }

// withURLParam attaches a chi route parameter so handlers can be called
// outside a router.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// asIdentity marks the request as authenticated, the way the auth gate
// does after verifying a credential.
func asIdentity(r *http.Request, email string) *http.Request {
	return r.WithContext(shared.WithIdentity(r.Context(), email))
}

func seededProfileStore() *mocks.MockUserStore {
	return mocks.NewMockUserStore().WithUser(&domain.User{
		Email:       "owner@example.com",
		FirstName:   strPtr("Marge"),
		LastName:    strPtr("Olmstead"),
		DateOfBirth: strPtr("1960-03-07"),
		Address:     strPtr("Paul Bunyan Drive"),
	})
}

func TestProfileGet(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		email       string
		caller      string
		wantStatus  int
		wantPrivate bool
	}{
		{
			name:       "anonymous caller gets public fields",
			email:      "owner@example.com",
			wantStatus: http.StatusOK,
		},
		{
			name:       "other authenticated caller gets public fields",
			email:      "owner@example.com",
			caller:     "visitor@example.com",
			wantStatus: http.StatusOK,
		},
		{
			name:        "owner gets private fields",
			email:       "owner@example.com",
			caller:      "owner@example.com",
			wantStatus:  http.StatusOK,
			wantPrivate: true,
		},
		{
			name:       "unknown user",
			email:      "nobody@example.com",
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			handler := NewProfileHandler(seededProfileStore())

			req := httptest.NewRequest("GET", "/"+tt.email+"/profile", nil)
			req = withURLParam(req, "email", tt.email)
			if tt.caller != "" {
				req = asIdentity(req, tt.caller)
			}

			recorder := httptest.NewRecorder()
			handler.Get(recorder, req)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			if tt.wantStatus != http.StatusOK {
				assert.Equal(t, "User not found", decodeError(t, recorder).Message)
				return
			}

			var body map[string]any
			require.NoError(t, json.NewDecoder(recorder.Body).Decode(&body))
			assert.Equal(t, tt.email, body["email"])
			assert.Equal(t, "Marge", body["firstName"])
			if tt.wantPrivate {
				assert.Equal(t, "1960-03-07", body["dob"])
				assert.Equal(t, "Paul Bunyan Drive", body["address"])
			} else {
				assert.NotContains(t, body, "dob")
				assert.NotContains(t, body, "address")
			}
		})
	}
}

func TestProfileUpdate(t *testing.T) {
	t.Parallel()

	validBody := map[string]any{
		"firstName": "Norm",
		"lastName":  "Gunderson",
		"dob":       "1980-04-11",
		"address":   "Brainerd, Minnesota",
	}

	tests := []struct {
		name        string
		body        map[string]any
		caller      string
		wantStatus  int
		wantMessage string
	}{
		{
			name:       "owner updates profile",
			body:       validBody,
			caller:     "owner@example.com",
			wantStatus: http.StatusOK,
		},
		{
			name: "incomplete body rejected even without credential",
			body: map[string]any{
				"firstName": "Norm",
			},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Request body incomplete: firstName, lastName, dob and address are required.",
		},
		{
			name: "non-string fields rejected",
			body: map[string]any{
				"firstName": 42,
				"lastName":  "Gunderson",
				"dob":       "1980-04-11",
				"address":   "Brainerd, Minnesota",
			},
			caller:      "owner@example.com",
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Request body invalid: firstName, lastName and address must be strings only.",
		},
		{
			name: "invalid dob rejected",
			body: map[string]any{
				"firstName": "Norm",
				"lastName":  "Gunderson",
				"dob":       "2025-02-30",
				"address":   "Brainerd, Minnesota",
			},
			caller:      "owner@example.com",
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid input: dob must be a real date in format YYYY-MM-DD.",
		},
		{
			name: "future dob rejected",
			body: map[string]any{
				"firstName": "Norm",
				"lastName":  "Gunderson",
				"dob":       "2999-01-01",
				"address":   "Brainerd, Minnesota",
			},
			caller:      "owner@example.com",
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid input: dob must be a date in the past.",
		},
		{
			name:        "anonymous caller with valid body gets 401",
			body:        validBody,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Authorization header ('Bearer token') not found",
		},
		{
			name:        "different identity gets 403",
			body:        validBody,
			caller:      "visitor@example.com",
			wantStatus:  http.StatusForbidden,
			wantMessage: "Forbidden",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			handler := NewProfileHandler(seededProfileStore())
			handler.timeFunc = func() time.Time {
				return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
			}

			req := postJSON(t, "/owner@example.com/profile", tt.body)
			req.Method = "PUT"
			req = withURLParam(req, "email", "owner@example.com")
			if tt.caller != "" {
				req = asIdentity(req, tt.caller)
			}

			recorder := httptest.NewRecorder()
			handler.Update(recorder, req)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			if tt.wantStatus != http.StatusOK {
				assert.Equal(t, tt.wantMessage, decodeError(t, recorder).Message)
				return
			}

			// The owner gets the full field set back.
			var body map[string]any
			require.NoError(t, json.NewDecoder(recorder.Body).Decode(&body))
			assert.Equal(t, "Norm", body["firstName"])
			assert.Equal(t, "Gunderson", body["lastName"])
			assert.Equal(t, "1980-04-11", body["dob"])
			assert.Equal(t, "Brainerd, Minnesota", body["address"])
		})
	}
}
