package evaluate

import "errors"

var (
	// ErrMalformedRequest means the submission is missing required
	// fields. Surfaced to the caller as a client error; never reaches
	// classification.
	ErrMalformedRequest = errors.New("malformed grading request")

	// ErrClassifierUnavailable means the primary classifier could not
	// be reached or timed out. Recovered internally by falling back to
	// keyword grading.
	ErrClassifierUnavailable = errors.New("classifier unavailable")

	// ErrClassifierMalformed means the primary classifier replied with
	// something that is not a usable verdict. Recovered the same way.
	ErrClassifierMalformed = errors.New("classifier returned malformed verdict")
)
