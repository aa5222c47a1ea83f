package shared

import (
	"encoding/json"
	"errors"
	"net/http"
)

// ErrEmptyBody is returned when a request that requires a JSON body
// arrives without one.
var ErrEmptyBody = errors.New("request body is empty")

// DecodeJSON decodes the request body into v. Unknown fields are
// rejected so clients notice typos in option names instead of having
// them silently dropped.
func DecodeJSON(r *http.Request, v any) error {
	if r.Body == nil {
		return ErrEmptyBody
	}
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
