package shared

import (
	"encoding/json"
	"net/http"
	"net/url"
)

// DecodeJSON decodes the request body into the given struct.
func DecodeJSON(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return err
	}
	return nil
}

// ValidateQueryParams reports whether every query parameter name present is
// in the allowed list. An empty allowed list permits no parameters at all.
func ValidateQueryParams(query url.Values, allowed ...string) bool {
	for name := range query {
		permitted := false
		for _, a := range allowed {
			if name == a {
				permitted = true
				break
			}
		}
		if !permitted {
			return false
		}
	}
	return true
}
