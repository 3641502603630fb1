package api

import "fmt"

// Category describes how a call failed at the transport level.
type Category string

const (
	// CategoryNoResponse means no HTTP response was received at all
	// (DNS failure, connection refused, client offline).
	CategoryNoResponse Category = "no-response"

	// CategoryTimeout means the fixed per-request timeout elapsed.
	CategoryTimeout Category = "timeout"

	// CategoryServer means the server answered with a non-2xx status.
	CategoryServer Category = "server-returned-error"
)

// TransportError carries everything the error classifier needs about a
// failed call: the failure category, the status code when a response was
// received, and the raw response body.
type TransportError struct {
	Category Category

	// Status is the HTTP status code; zero when no response arrived.
	Status int

	// Body is the raw response body; nil when no response arrived.
	Body []byte

	// Err is the underlying transport error, if any.
	Err error
}

func (e *TransportError) Error() string {
	switch e.Category {
	case CategoryTimeout:
		return "request timed out"
	case CategoryNoResponse:
		return fmt.Sprintf("no response from server: %v", e.Err)
	default:
		return fmt.Sprintf("server returned status %d", e.Status)
	}
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
