package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// Common domain errors
	ErrNotFound        = errors.New("entity not found")
	ErrInvalidArgument = errors.New("invalid argument")
)

// ErrorKind classifies a failure so the transport layer can map it to a
// status code without inspecting concrete causes.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindValidation
	KindPersistence
	KindUnauthorized
	KindDispatch
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindPersistence:
		return "persistence"
	case KindUnauthorized:
		return "unauthorized"
	case KindDispatch:
		return "dispatch"
	default:
		return "unknown"
	}
}

// Error is a kinded error carrying an optional wrapped cause. The top-level
// message and every cause stay individually inspectable via Unwrap/Chain.
type Error struct {
	Kind  ErrorKind
	Msg   string
	Cause error
}

func NewError(kind ErrorKind, msg string, cause error) *Error {
	return &Error{Kind: kind, Msg: msg, Cause: cause}
}

func (e *Error) Error() string { return e.Msg }

func (e *Error) Unwrap() error { return e.Cause }

// Chain renders the full cause chain, one cause per line.
func (e *Error) Chain() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", e.Msg)
	for cause := errors.Unwrap(e); cause != nil; cause = errors.Unwrap(cause) {
		fmt.Fprintf(&b, "Caused by:\n\t%s\n", cause.Error())
	}
	return b.String()
}

// KindOf extracts the kind from err, or KindUnknown if err carries none.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
