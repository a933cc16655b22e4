package ai

import "fmt"

// ValidationError reports malformed input (e.g. an empty message list).
// Never retried.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return "validation: " + e.Msg
}

// UpstreamError reports a non-success response from the model provider.
// Surfaced to the caller with status and body; the turn is failed.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream error: status %d: %s", e.Status, e.Body)
}

// TransportError reports a network failure or timeout. Retryable by the
// caller; never auto-retried here.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "transport: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
