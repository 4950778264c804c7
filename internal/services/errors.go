package services

import "fmt"

// InvalidRequestError rejects a request before any external call is made.
type InvalidRequestError struct {
	Message string
	Fields  map[string]string
}

func (e *InvalidRequestError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "invalid request"
}

// AIServiceError wraps a failure of the external AI service (network error,
// timeout, or an empty completion).
type AIServiceError struct {
	Cause error
}

func (e *AIServiceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("AI service error: %v", e.Cause)
	}
	return "AI service error"
}

func (e *AIServiceError) Unwrap() error { return e.Cause }

type NotFoundError struct{ Message string }

func (e *NotFoundError) Error() string { return e.Message }

type ConflictError struct{ Message string }

func (e *ConflictError) Error() string { return e.Message }

type RateLimitError struct{ Message string }

func (e *RateLimitError) Error() string { return e.Message }
