package api

import "errors"

// ErrUnauthenticated marks the expected "no valid session" condition.
// During bootstrap this is a normal outcome, not a failure; match it with
// errors.Is.
var ErrUnauthenticated = errors.New("unauthenticated")

// genericMessage is substituted whenever an error response body cannot be
// decoded into the service's {detail: ...} shape.
const genericMessage = "something went wrong"

// Error is the single error shape the transport produces. Callers never see
// HTTP status codes, only the human-readable Message and, for 401 responses,
// the unauthenticated marker via errors.Is(err, ErrUnauthenticated).
type Error struct {
	Message         string
	Unauthenticated bool
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	if e.Unauthenticated {
		return ErrUnauthenticated
	}
	return nil
}
