// Package profile implements the profile-specific business rules: deciding
// which fields of a user record a caller may see, and validating profile
// updates. Both are pure functions, unit-testable without any HTTP context.
package profile

import (
	"errors"
	"regexp"
	"time"

	"github.com/rfenton/volcano-api/internal/domain"
)

// Validation errors surfaced by ParseUpdate. The HTTP layer maps each to a
// 400 response with the matching client message.
var (
	// ErrIncomplete indicates one of firstName, lastName, dob, address is
	// absent from the update body.
	ErrIncomplete = errors.New("profile update is incomplete")

	// ErrNonString indicates firstName, lastName or address is present but
	// not a string.
	ErrNonString = errors.New("profile fields must be strings")

	// ErrInvalidDate indicates dob is not a real calendar date in strict
	// YYYY-MM-DD form.
	ErrInvalidDate = errors.New("dob is not a valid date")

	// ErrFutureDate indicates dob is after the current time.
	ErrFutureDate = errors.New("dob is in the future")
)

// dobLayout is the strict zero-padded date format carried by dob fields.
const dobLayout = "2006-01-02"

var dobPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ParseUpdate validates a decoded JSON update body and returns the
// normalized profile fields. All four fields are required; firstName,
// lastName and address must be strings; dob must be a real calendar date in
// YYYY-MM-DD form that is not in the future relative to now.
func ParseUpdate(body map[string]any, now time.Time) (domain.ProfileUpdate, error) {
	var upd domain.ProfileUpdate

	for _, field := range []string{"firstName", "lastName", "dob", "address"} {
		if _, ok := body[field]; !ok {
			return upd, ErrIncomplete
		}
	}

	firstName, firstOK := body["firstName"].(string)
	lastName, lastOK := body["lastName"].(string)
	address, addrOK := body["address"].(string)
	if !firstOK || !lastOK || !addrOK {
		return upd, ErrNonString
	}

	dob, ok := body["dob"].(string)
	if !ok {
		return upd, ErrInvalidDate
	}

	normalized, err := parseDOB(dob, now)
	if err != nil {
		return upd, err
	}

	upd.FirstName = firstName
	upd.LastName = lastName
	upd.Address = address
	upd.DateOfBirth = normalized
	return upd, nil
}

// parseDOB enforces the strict date format and range rules and returns the
// normalized zero-padded form. time.Parse rejects impossible calendar dates
// such as 2025-02-30, which covers the intended month/day range checks.
func parseDOB(dob string, now time.Time) (string, error) {
	if !dobPattern.MatchString(dob) {
		return "", ErrInvalidDate
	}

	parsed, err := time.Parse(dobLayout, dob)
	if err != nil {
		return "", ErrInvalidDate
	}
	if parsed.After(now) {
		return "", ErrFutureDate
	}

	return parsed.Format(dobLayout), nil
}

// View is the profile field set disclosed to anonymous callers and to
// authenticated callers other than the owner.
type View struct {
	Email     string  `json:"email"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
}

// OwnerView extends View with the private fields disclosed only when the
// caller identity equals the profile owner.
type OwnerView struct {
	View
	DateOfBirth *string `json:"dob"`
	Address     *string `json:"address"`
}

// Resolve returns the field set of u visible to the caller identity.
// caller is empty for anonymous requests. The owner match is a
// case-sensitive exact comparison.
func Resolve(u *domain.User, caller string) any {
	base := View{
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
	if caller == "" || caller != u.Email {
		return base
	}
	return OwnerView{
		View:        base,
		DateOfBirth: u.DateOfBirth,
		Address:     u.Address,
	}
}
