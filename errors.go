package twitterx

import (
	"errors"
	"fmt"
)

// ErrMissingUserIdentifier is returned by user-scoped operations when neither
// a username nor a user id is provided. It is raised before any network I/O.
var ErrMissingUserIdentifier = errors.New("either username or user id must be provided")

// ErrClientClosed is returned when an operation is invoked after Close.
var ErrClientClosed = errors.New("client is closed")

var errHeaderMissing = errors.New("header missing")

// RateLimitHeaderError reports a 200 response whose quota headers are absent
// or unparsable. It indicates a contract break with the remote API, so it is
// surfaced rather than swallowed.
type RateLimitHeaderError struct {
	Header string // the offending header name
	Value  string // raw value as received, empty when missing
	Err    error
}

func (e *RateLimitHeaderError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("rate limit header %q missing on 200 response", e.Header)
	}
	return fmt.Sprintf("rate limit header %q: bad value %q: %v", e.Header, e.Value, e.Err)
}

func (e *RateLimitHeaderError) Unwrap() error { return e.Err }
