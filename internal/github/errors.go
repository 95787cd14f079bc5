package github

import (
	"errors"
	"fmt"
)

// Kind classifies every failure the events pipeline can produce.
type Kind int

const (
	KindIO Kind = iota + 1
	KindTLS
	KindNotFound
	KindForbidden
	KindServerUnavailable
	KindNotModified
	KindUnexpectedStatus
	KindHTTPParse
	KindUnexpectedResponse
	KindJSONParse
)

func (k Kind) String() string {
	switch k {
	case KindIO:
		return "IoError"
	case KindTLS:
		return "TlsError"
	case KindNotFound:
		return "NotFound"
	case KindForbidden:
		return "Forbidden"
	case KindServerUnavailable:
		return "ServerUnavailable"
	case KindNotModified:
		return "NotModified"
	case KindUnexpectedStatus:
		return "UnexpectedStatus"
	case KindHTTPParse:
		return "HttpParseError"
	case KindUnexpectedResponse:
		return "UnexpectedResponse"
	case KindJSONParse:
		return "JsonParseError"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error is the single error type returned by the pipeline stages.
// Code is only set for KindUnexpectedStatus.
type Error struct {
	Kind   Kind
	Code   int
	Detail string
	Err    error
}

// Sentinels for the status-derived kinds; errors.Is matches on Kind.
var (
	ErrNotFound          = &Error{Kind: KindNotFound}
	ErrForbidden         = &Error{Kind: KindForbidden}
	ErrServerUnavailable = &Error{Kind: KindServerUnavailable}
	ErrNotModified       = &Error{Kind: KindNotModified}
)

func (e *Error) Error() string {
	switch e.Kind {
	case KindIO:
		return "I/O error " + e.cause()
	case KindTLS:
		return "TLS error " + e.cause()
	case KindNotFound:
		return "GitHub user not found"
	case KindForbidden:
		return "access forbidden (rate-limited or unauthorized)"
	case KindServerUnavailable:
		return "GitHub service not available"
	case KindNotModified:
		return "not modified (no new events)"
	case KindUnexpectedStatus:
		return fmt.Sprintf("unexpected HTTP status code: %d", e.Code)
	case KindHTTPParse:
		return "HTTP response parsing error: " + e.Detail
	case KindUnexpectedResponse:
		return "unexpected response: " + e.Detail
	case KindJSONParse:
		return "failed to parse JSON: " + e.Detail
	default:
		return e.Kind.String()
	}
}

func (e *Error) cause() string {
	switch {
	case e.Detail != "" && e.Err != nil:
		return e.Detail + ": " + e.Err.Error()
	case e.Err != nil:
		return e.Err.Error()
	default:
		return e.Detail
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error of the same kind. UnexpectedStatus
// additionally compares codes when the target carries one.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	if t.Kind == KindUnexpectedStatus && t.Code != 0 {
		return t.Code == e.Code
	}
	return true
}

// KindOf returns the Kind of the first *Error in err's chain, or zero.
func KindOf(err error) Kind {
	var gerr *Error
	if errors.As(err, &gerr) {
		return gerr.Kind
	}
	return 0
}

func ioError(detail string, err error) *Error {
	return &Error{Kind: KindIO, Detail: detail, Err: err}
}

func tlsError(detail string, err error) *Error {
	return &Error{Kind: KindTLS, Detail: detail, Err: err}
}

func httpParseError(format string, args ...any) *Error {
	return &Error{Kind: KindHTTPParse, Detail: fmt.Sprintf(format, args...)}
}

func jsonParseError(format string, args ...any) *Error {
	return &Error{Kind: KindJSONParse, Detail: fmt.Sprintf(format, args...)}
}
