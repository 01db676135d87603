package m1asm

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrKind discriminates the error kinds a caller can branch on; the Error
// type itself carries the human-readable message.
type ErrKind int

const (
	ErrLex ErrKind = iota
	ErrParse
	ErrBadAlignment
	ErrUnresolvedLabel
	ErrIllegalEncoding
)

func (k ErrKind) String() string {
	switch k {
	case ErrLex:
		return "lex error"
	case ErrParse:
		return "parse error"
	case ErrBadAlignment:
		return "bad alignment"
	case ErrUnresolvedLabel:
		return "unresolved label"
	case ErrIllegalEncoding:
		return "illegal encoding"
	default:
		return "error"
	}
}

// Error is the single error type surfaced by every pipeline stage. Lex and
// parse errors carry the span of the offending input; BadAlignment and
// IllegalEncoding errors carry the span of the offending instruction. Span
// is zero-valued ({0,0}) for unresolved-label errors, which are not tied to
// one source location.
type Error struct {
	Kind    ErrKind
	Span    Span
	Message string
	Label   string // set for ErrUnresolvedLabel
	cause   error
}

func (e *Error) Error() string {
	if e.Message == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// Wrap attaches additional context to an existing *Error using pkg/errors,
// keeping the original Kind inspectable via errors.Cause.
func Wrap(err *Error, context string) *Error {
	return &Error{
		Kind:    err.Kind,
		Span:    err.Span,
		Message: err.Message,
		Label:   err.Label,
		cause:   errors.Wrap(err, context),
	}
}

// Cause unwraps a wrapped pipeline error back to its root *Error, mirroring
// github.com/pkg/errors.Cause for callers that only hold the wrapper.
func Cause(err error) error {
	for {
		err = errors.Cause(err)
		e, ok := err.(*Error)
		if !ok || e.cause == nil {
			return err
		}
		err = e.cause
	}
}
