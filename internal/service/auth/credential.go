package auth

import "strings"

// bearerScheme is the expected Authorization scheme marker.
const bearerScheme = "Bearer "

// ExtractBearerToken pulls the token out of a raw Authorization header
// value. An empty header returns ErrMissingToken, which is distinct from a
// verification failure: endpoints tolerating anonymous access treat it as
// "no credential presented". A non-empty header without the Bearer prefix
// returns ErrMalformedHeader.
func ExtractBearerToken(header string) (string, error) {
	if header == "" {
		return "", ErrMissingToken
	}
	if !strings.HasPrefix(header, bearerScheme) {
		return "", ErrMalformedHeader
	}
	return strings.TrimPrefix(header, bearerScheme), nil
}
