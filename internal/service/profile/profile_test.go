package profile

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rfenton/volcano-api/internal/domain"
)

func strPtr(s string) *string { return &s }

func TestParseUpdate(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	validBody := func() map[string]any {
		return map[string]any{
			"firstName": "Norm",
			"lastName":  "Gunderson",
			"dob":       "1980-04-11",
			"address":   "Brainerd, Minnesota",
		}
	}

	tests := []struct {
		name    string
		mutate  func(map[string]any)
		wantErr error
	}{
		{
			name:   "valid body",
			mutate: func(m map[string]any) {},
		},
		{
			name:    "missing firstName",
			mutate:  func(m map[string]any) { delete(m, "firstName") },
			wantErr: ErrIncomplete,
		},
		{
			name:    "missing lastName",
			mutate:  func(m map[string]any) { delete(m, "lastName") },
			wantErr: ErrIncomplete,
		},
		{
			name:    "missing dob",
			mutate:  func(m map[string]any) { delete(m, "dob") },
			wantErr: ErrIncomplete,
		},
		{
			name:    "missing address",
			mutate:  func(m map[string]any) { delete(m, "address") },
			wantErr: ErrIncomplete,
		},
		{
			name:    "numeric firstName",
			mutate:  func(m map[string]any) { m["firstName"] = 42.0 },
			wantErr: ErrNonString,
		},
		{
			name:    "boolean address",
			mutate:  func(m map[string]any) { m["address"] = true },
			wantErr: ErrNonString,
		},
		{
			name:    "numeric dob",
			mutate:  func(m map[string]any) { m["dob"] = 19800411.0 },
			wantErr: ErrInvalidDate,
		},
		{
			name:    "dob wrong format",
			mutate:  func(m map[string]any) { m["dob"] = "11/04/1980" },
			wantErr: ErrInvalidDate,
		},
		{
			name:    "dob not zero padded",
			mutate:  func(m map[string]any) { m["dob"] = "1980-4-11" },
			wantErr: ErrInvalidDate,
		},
		{
			name:    "dob impossible day",
			mutate:  func(m map[string]any) { m["dob"] = "2025-02-30" },
			wantErr: ErrInvalidDate,
		},
		{
			name:    "dob impossible month",
			mutate:  func(m map[string]any) { m["dob"] = "1980-13-01" },
			wantErr: ErrInvalidDate,
		},
		{
			name:    "dob in the future",
			mutate:  func(m map[string]any) { m["dob"] = "2031-01-01" },
			wantErr: ErrFutureDate,
		},
		{
			name:    "dob day after now",
			mutate:  func(m map[string]any) { m["dob"] = "2025-06-16" },
			wantErr: ErrFutureDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			body := validBody()
			tt.mutate(body)

			upd, err := ParseUpdate(body, now)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Norm", upd.FirstName)
			assert.Equal(t, "Gunderson", upd.LastName)
			assert.Equal(t, "1980-04-11", upd.DateOfBirth)
			assert.Equal(t, "Brainerd, Minnesota", upd.Address)
		})
	}
}

func TestParseUpdateAcceptsTodayAndEmptyStrings(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	// A dob equal to today's date is not in the future.
	upd, err := ParseUpdate(map[string]any{
		"firstName": "",
		"lastName":  "",
		"dob":       "2025-06-15",
		"address":   "",
	}, now)
	require.NoError(t, err)
	assert.Equal(t, "2025-06-15", upd.DateOfBirth)
	assert.Equal(t, "", upd.FirstName)
}

func TestResolve(t *testing.T) {
	t.Parallel()

	user := &domain.User{
		Email:       "owner@example.com",
		FirstName:   strPtr("Marge"),
		LastName:    strPtr("Olmstead"),
		DateOfBirth: strPtr("1960-03-07"),
		Address:     strPtr("Paul Bunyan Drive"),
	}

	t.Run("anonymous caller sees public fields", func(t *testing.T) {
		t.Parallel()
		got, ok := Resolve(user, "").(View)
		require.True(t, ok, "expected the public view, got %T", Resolve(user, ""))
		assert.Equal(t, "owner@example.com", got.Email)
		assert.Equal(t, "Marge", *got.FirstName)
		assert.Equal(t, "Olmstead", *got.LastName)
	})

	t.Run("other authenticated caller sees public fields", func(t *testing.T) {
		t.Parallel()
		_, ok := Resolve(user, "someone-else@example.com").(View)
		assert.True(t, ok)
	})

	t.Run("owner sees private fields", func(t *testing.T) {
		t.Parallel()
		got, ok := Resolve(user, "owner@example.com").(OwnerView)
		require.True(t, ok)
		assert.Equal(t, "1960-03-07", *got.DateOfBirth)
		assert.Equal(t, "Paul Bunyan Drive", *got.Address)
	})

	t.Run("owner match is case sensitive", func(t *testing.T) {
		t.Parallel()
		_, ok := Resolve(user, "Owner@example.com").(View)
		assert.True(t, ok)
	})

	t.Run("unset optional fields stay nil", func(t *testing.T) {
		t.Parallel()
		bare := &domain.User{Email: "new@example.com"}
		got, ok := Resolve(bare, "new@example.com").(OwnerView)
		require.True(t, ok)
		assert.Nil(t, got.FirstName)
		assert.Nil(t, got.DateOfBirth)
		assert.Nil(t, got.Address)
	})
}
