package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized indicates the bearer token was rejected. Callers
	// should prompt for re-authentication instead of retrying.
	ErrUnauthorized = errors.New("authorization rejected by server")
)

// APIError is a business-rule rejection from the backend, carried
// verbatim from the {success:false, error:{code,message}} envelope.
type APIError struct {
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}
