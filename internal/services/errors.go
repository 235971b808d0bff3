package services

import "fmt"

const (
	msgPromptRequired = "Prompt is required"
	msgUpstreamFailed = "Gemini API failed to return a response"
)

// InvalidRequestError is returned when the caller supplied no prompt.
type InvalidRequestError struct{ Message string }

func (e *InvalidRequestError) Error() string { return e.Message }

// UpstreamError wraps any failure raised by the provider. Message is safe to return to
// callers; Err is the root cause and is only logged.
type UpstreamError struct {
	Message string
	Err     error
}

func (e *UpstreamError) Error() string { return fmt.Sprintf("%s: %v", e.Message, e.Err) }

func (e *UpstreamError) Unwrap() error { return e.Err }
