// Package redact strips credentials out of strings before they reach logs.
// Database errors in particular tend to echo the connection string, which
// carries the password.
package redact

import "regexp"

// Placeholder replaces redacted credential material.
const Placeholder = "[REDACTED]"

var (
	// user:password@ in connection URLs.
	urlCredentialsRegex = regexp.MustCompile(`(?i)([a-z][a-z0-9+.-]*://)[^@/\s]+@`)

	// password=... in keyword/value connection strings.
	passwordKVRegex = regexp.MustCompile(`(?i)(password|passwd|pwd)(\s*=\s*)[^\s&'"]+`)
)

// String redacts credential material from s.
func String(s string) string {
	s = urlCredentialsRegex.ReplaceAllString(s, "${1}"+Placeholder+"@")
	s = passwordKVRegex.ReplaceAllString(s, "${1}${2}"+Placeholder)
	return s
}

// Error redacts credential material from an error's message. Returns the
// empty string for a nil error.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
