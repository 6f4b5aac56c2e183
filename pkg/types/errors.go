package domain

import "errors"

// ErrorKind tags the variant of a screen-level Error.
type ErrorKind int

// Error kinds. Presentation code switches exhaustively over these.
const (
	// KindInvalidIdentifier is a local precondition failure; the network
	// is never reached.
	KindInvalidIdentifier ErrorKind = iota + 1
	// KindRequestFailed covers every network or decoding failure.
	KindRequestFailed
)

// String implements fmt.Stringer.
func (k ErrorKind) String() string {
	switch k {
	case KindInvalidIdentifier:
		return "invalid_identifier"
	case KindRequestFailed:
		return "request_failed"
	default:
		return "unknown"
	}
}

// Error is the single error taxonomy surfaced to screen state.
type Error struct {
	Kind    ErrorKind
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.Kind {
	case KindInvalidIdentifier:
		return "invalid product identifier"
	case KindRequestFailed:
		return e.Message
	default:
		return "unknown error"
	}
}

// InvalidIdentifier returns the error for a missing product id.
func InvalidIdentifier() *Error {
	return &Error{Kind: KindInvalidIdentifier}
}

// RequestFailed returns a request failure carrying msg verbatim.
func RequestFailed(msg string) *Error {
	return &Error{Kind: KindRequestFailed, Message: msg}
}

// AsError converts err into an *Error. Errors that are not already an
// *Error become RequestFailed with the original message.
func AsError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return RequestFailed(err.Error())
}

// IsKind reports whether err is an *Error of kind k.
func IsKind(err error, k ErrorKind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == k
}
