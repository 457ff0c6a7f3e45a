package openrouter

import "fmt"

// ValidationError reports input that failed the pre-request gate. It is
// surfaced to the caller verbatim and never retried.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s", e.Message)
}

// UpstreamError represents a failed call to the OpenRouter API: network
// errors, non-2xx responses, and unrecoverable response parse failures.
type UpstreamError struct {
	Op    string
	Cause error
}

func (e *UpstreamError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("openrouter %s failed: %v", e.Op, e.Cause)
	}
	return fmt.Sprintf("openrouter %s failed", e.Op)
}

func (e *UpstreamError) Unwrap() error {
	return e.Cause
}

// TruncatedResponseError marks a response that was cut off mid-JSON, detected
// from the parse error after the repair step gave up. Callers may retry with
// a smaller prompt; nothing retries automatically.
type TruncatedResponseError struct {
	Cause error
}

func (e *TruncatedResponseError) Error() string {
	return fmt.Sprintf("response truncated, retry: %v", e.Cause)
}

func (e *TruncatedResponseError) Unwrap() error {
	return e.Cause
}

// StatusError reports a non-2xx HTTP response from the API.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}
