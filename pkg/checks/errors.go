package checks

import "fmt"

// ValidationError reports an input that failed a local precondition. No
// request has been sent when one is returned.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// TransportError wraps a connection-level failure: dial, DNS, TLS or a
// timeout fired by the transport.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// APIStatusError reports a non-2xx response from the service, carrying the
// status code and a best-effort copy of the response body.
type APIStatusError struct {
	StatusCode int
	Body       string
}

func (e *APIStatusError) Error() string {
	return fmt.Sprintf("API error: unexpected status code %d: %s", e.StatusCode, e.Body)
}

// DecodeError wraps a response body that was not the expected JSON shape.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
