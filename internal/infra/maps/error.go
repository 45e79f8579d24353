package maps

import "errors"

type ErrorKind string

// Each lookup failure mode is distinguishable so callers can branch on the
// kind instead of string-matching messages.
const (
	KindTransport      ErrorKind = "TRANSPORT"       // request never completed
	KindHTTPStatus     ErrorKind = "HTTP_STATUS"     // non-2xx response
	KindProviderStatus ErrorKind = "PROVIDER_STATUS" // top-level status not OK
	KindNoRoute        ErrorKind = "NO_ROUTE"        // empty rows or elements
	KindRouteStatus    ErrorKind = "ROUTE_STATUS"    // element-level status not OK
)

type Error struct {
	Kind ErrorKind
	msg  string
	err  error
}

func (e *Error) Error() string {
	if e.err != nil {
		return e.msg + ": " + e.err.Error()
	}
	return e.msg
}

func (e *Error) Unwrap() error {
	return e.err
}

func NewError(kind ErrorKind, msg string, err error) *Error {
	return &Error{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
