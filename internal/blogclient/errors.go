package blogclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNotFound = errors.New("resource not found")
	ErrDecode   = errors.New("failed to decode response")
)

// APIError is a non-2xx response. Message holds the structured {error} or
// {message} body when the server sent one, otherwise a generic description.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

// newAPIError surfaces the server's structured error message when the body
// carries one; every other non-2xx body collapses to a uniform server error.
func newAPIError(status int, body []byte) *APIError {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}

	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Error != "" {
			return &APIError{StatusCode: status, Message: payload.Error}
		}
		if payload.Message != "" {
			return &APIError{StatusCode: status, Message: payload.Message}
		}
	}

	return &APIError{StatusCode: status, Message: fmt.Sprintf("server error (HTTP %d)", status)}
}
