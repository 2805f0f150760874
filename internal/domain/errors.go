package domain

import "fmt"

// AuthError: login rejected by the API (bad credentials, non-2xx).
type AuthError struct {
	Status     int
	StatusText string
}

func (e *AuthError) Error() string { return fmt.Sprintf("auth failed: %s", e.StatusText) }

// FetchError: a listing or detail load came back non-2xx.
type FetchError struct {
	Status   int
	Resource string
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s failed: status %d", e.Resource, e.Status)
}

// ReviewError: review submission rejected; Message is the server-provided
// error when the body could be parsed, a generic fallback otherwise.
type ReviewError struct {
	Status  int
	Message string
}

func (e *ReviewError) Error() string { return e.Message }
