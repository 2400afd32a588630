package resynth

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorKind is the closed error taxonomy of §7.
type ErrorKind int

const (
	// NameError is a reference to an unknown import, register, or module member.
	NameError ErrorKind = iota
	// TypeError is an argument binding failure, type mismatch, or
	// post-call return-type violation.
	TypeError
	// MultipleAssignError is an assignment to an already-bound register.
	MultipleAssignError
	// ImportError is a reference to an unregistered top-level module.
	ImportError
	// RuntimeError is a builder-level failure, e.g. a malformed address or
	// an unimplemented call.
	RuntimeError
	// ParseError is propagated from the (external) lexer/parser.
	ParseError
	// IoError is propagated from the pcap sink.
	IoError
)

func (k ErrorKind) String() string {
	switch k {
	case NameError:
		return "NameError"
	case TypeError:
		return "TypeError"
	case MultipleAssignError:
		return "MultipleAssignError"
	case ImportError:
		return "ImportError"
	case RuntimeError:
		return "RuntimeError"
	case ParseError:
		return "ParseError"
	case IoError:
		return "IoError"
	default:
		return "UnknownError"
	}
}

// Error is the interpreter's error type: a Kind from the closed taxonomy,
// the Loc of the statement that raised it, and (optionally) a wrapped cause.
type Error struct {
	Kind  ErrorKind
	Loc   Loc
	Name  string
	cause error
}

func (e *Error) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("%s at %s: %s", e.Kind, e.Loc, e.Name)
	}
	if e.cause != nil {
		return fmt.Sprintf("%s at %s: %s", e.Kind, e.Loc, e.cause)
	}
	return fmt.Sprintf("%s at %s", e.Kind, e.Loc)
}

// Unwrap lets errors.Is/errors.As see through to the wrapped cause.
func (e *Error) Unwrap() error {
	return e.cause
}

// newErr builds an *Error, stack-wrapping the cause (if any) the way
// github.com/pkg/errors is used elsewhere in the pack to attach a stack
// trace at the point a failure is first observed.
func newErr(kind ErrorKind, loc Loc, name string, cause error) *Error {
	if cause != nil {
		cause = errors.WithStack(cause)
	}
	return &Error{Kind: kind, Loc: loc, Name: name, cause: cause}
}

func errName(kind ErrorKind, loc Loc, name string) *Error {
	return newErr(kind, loc, name, nil)
}

func errWrap(kind ErrorKind, loc Loc, cause error) *Error {
	return newErr(kind, loc, "", cause)
}
