// Package sqerr defines the single error kind surfaced by every SmartQuery
// stage (lexer, parser, evaluator, intrinsics). Hosts never need to type-
// switch on more than one error type to catch a SmartQuery failure.
package sqerr

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// Kind classifies why an Error occurred, without introducing a second
// exported error type: parsing and evaluation both fail with *Error.
type Kind string

const (
	Syntax   Kind = "syntax"
	Runtime  Kind = "runtime"
	OpLimit  Kind = "op_limit"
	KeyError Kind = "key_error"
	Overflow Kind = "overflow"
	Timeout  Kind = "timeout"
)

// Error is the one error kind produced anywhere in SmartQuery.
type Error struct {
	Kind    Kind
	Message string
	Line    int
	Column  int
}

func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s at line %d: %s", kindLabel(e.Kind), e.Line, e.Message)
	}
	return fmt.Sprintf("%s: %s", kindLabel(e.Kind), e.Message)
}

func kindLabel(k Kind) string {
	switch k {
	case Syntax:
		return "syntax error"
	case OpLimit:
		return "op limit exceeded"
	case KeyError:
		return "key error"
	case Overflow:
		return "overflow"
	case Timeout:
		return "timeout"
	default:
		return "runtime error"
	}
}

// Syntaxf builds a Syntax error with a formatted message.
func Syntaxf(line, col int, format string, args ...any) *Error {
	return &Error{Kind: Syntax, Message: fmt.Sprintf(format, args...), Line: line, Column: col}
}

// Runtimef builds a Runtime error with a formatted message.
func Runtimef(format string, args ...any) *Error {
	return &Error{Kind: Runtime, Message: fmt.Sprintf(format, args...)}
}

// KeyErrorf builds a KeyError error.
func KeyErrorf(format string, args ...any) *Error {
	return &Error{Kind: KeyError, Message: fmt.Sprintf(format, args...)}
}

// OpLimitExceeded builds the fatal op-count-budget error (§5: "exceeding it
// is fatal and terminates the evaluation").
func OpLimitExceeded(maxOps int) *Error {
	return &Error{
		Kind:    OpLimit,
		Message: fmt.Sprintf("ops execution limit exceeded: %s", humanize.Comma(int64(maxOps))),
	}
}

// ArrayOverflow builds the container-size-cap error (§4.5/§5).
func ArrayOverflow(maxSize int) *Error {
	return &Error{
		Kind:    Overflow,
		Message: fmt.Sprintf("array size overflow: %s", humanize.Comma(int64(maxSize))),
	}
}

// RegexTimeout builds the regex-timeout error (§6.3).
func RegexTimeout(pattern string) *Error {
	return &Error{Kind: Timeout, Message: fmt.Sprintf("regex timed out: %q", pattern)}
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}
