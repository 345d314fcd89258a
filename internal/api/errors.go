package api

import (
	"errors"
	"fmt"
)

type Kind int

const (
	// KindTransport means the request could not be completed.
	KindTransport Kind = iota
	// KindProtocol means the body was not the expected envelope.
	KindProtocol
	// KindBusiness means the service answered with a failure status or
	// success=false.
	KindBusiness
	// KindAuth is reserved for credential rejection. Nothing in the client
	// raises it yet; see ErrAuth.
	KindAuth
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindProtocol:
		return "protocol"
	case KindBusiness:
		return "business"
	case KindAuth:
		return "auth"
	default:
		return "unknown"
	}
}

// Error is the single error type returned by Client. Error() is the message
// shown to the user.
type Error struct {
	Kind    Kind
	Code    int
	Message string
	Err     error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindTransport:
		return fmt.Sprintf("network error: %v", e.Err)
	case KindProtocol:
		return fmt.Sprintf("parse error: %v", e.Err)
	case KindBusiness:
		return fmt.Sprintf("API error %d: %s", e.Code, e.Message)
	case KindAuth:
		if e.Message != "" {
			return "authentication error: " + e.Message
		}
		return "authentication error"
	default:
		return e.Message
	}
}

func (e *Error) Unwrap() error { return e.Err }

func transportErr(err error) error { return &Error{Kind: KindTransport, Err: err} }

func protocolErr(err error) error { return &Error{Kind: KindProtocol, Err: err} }

func businessErr(code int, message string) error {
	return &Error{Kind: KindBusiness, Code: code, Message: message}
}

// ErrAuth builds an auth error for callers that reject credentials locally.
func ErrAuth(message string) error {
	return &Error{Kind: KindAuth, Code: 401, Message: message}
}

// KindOf returns the kind of an api error, or false for foreign errors.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
