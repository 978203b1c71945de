package api

import (
	"encoding/json"
	"fmt"
)

// APIError is a failure reported by the Moltbook API, either as a non-2xx
// HTTP status or as an envelope with success == false.
type APIError struct {
	StatusCode int
	Message    string
	ErrHint    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with HTTP %d", e.StatusCode)
}

// Hint returns remediation text from the API, if any.
func (e *APIError) Hint() string {
	return e.ErrHint
}

// apiErrorFromBody builds an APIError from a non-2xx response body,
// extracting the API's error/hint fields when the body is parseable JSON.
func apiErrorFromBody(statusCode int, raw []byte) *APIError {
	apiErr := &APIError{StatusCode: statusCode}

	var env Envelope
	if err := json.Unmarshal(raw, &env); err == nil {
		apiErr.Message = env.Error
		apiErr.ErrHint = env.Hint
	}

	return apiErr
}
