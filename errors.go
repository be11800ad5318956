// errors.go: evaluation errors and caret-snippet rendering
//
// Every failure the tokenizer or the machine can produce is a *Error
// carrying one of the closed ErrorKind values plus the offending lexeme and
// its position. Callers branch on the kind with errors.As:
//
//	var rerr *rpn.Error
//	if errors.As(err, &rerr) && rerr.Kind == rpn.ErrDivisionByZero { ... }
//
// WrapErrorWithSource turns such an error into a readable snippet with a
// caret pointing at the offending column:
//
//	EVAL ERROR at 1:5: division by zero (token 2)
//
//	   1 | 3 0 /
//	     |     ^
//
// If err is anything other than *Error it is returned unchanged. Output is
// plain text; terminal styling is the caller's business.
package rpn

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind enumerates every way an evaluation can fail.
type ErrorKind int

const (
	// ErrMalformedToken: an input field is neither a number nor a
	// recognized operator symbol.
	ErrMalformedToken ErrorKind = iota
	// ErrUnknownOperator: the machine met an operator token outside its
	// recognized set. Unreachable through the tokenizer; guards token
	// sequences constructed by hand.
	ErrUnknownOperator
	// ErrStackUnderflow: an operator needs more operands than the stack
	// holds.
	ErrStackUnderflow
	// ErrDivisionByZero: "/" with a zero right-hand operand.
	ErrDivisionByZero
	// ErrMemoryUndefined: "@" before any "!" in the same evaluation.
	ErrMemoryUndefined
	// ErrMalformedExpression: after the last token the stack does not hold
	// exactly one value.
	ErrMalformedExpression
)

func (k ErrorKind) String() string {
	switch k {
	case ErrMalformedToken:
		return "MalformedToken"
	case ErrUnknownOperator:
		return "UnknownOperator"
	case ErrStackUnderflow:
		return "StackUnderflow"
	case ErrDivisionByZero:
		return "DivisionByZero"
	case ErrMemoryUndefined:
		return "MemoryUndefined"
	case ErrMalformedExpression:
		return "MalformedExpression"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Error is the single error type produced by this package.
type Error struct {
	Kind   ErrorKind
	Lexeme string // offending token text, "" when there is none
	Index  int    // 0-based token ordinal
	Line   int    // 1-based
	Col    int    // 1-based

	// StackUnderflow context
	Have int
	Need int

	// MalformedExpression context
	Leftover int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at %d:%d: %s", e.header(), e.Line, e.Col, e.message())
}

func (e *Error) header() string {
	if e.Kind == ErrMalformedToken {
		return "LEXICAL ERROR"
	}
	return "EVAL ERROR"
}

func (e *Error) message() string {
	switch e.Kind {
	case ErrMalformedToken:
		return fmt.Sprintf("malformed token %q (token %d)", e.Lexeme, e.Index)
	case ErrUnknownOperator:
		return fmt.Sprintf("unknown operator %q (token %d)", e.Lexeme, e.Index)
	case ErrStackUnderflow:
		return fmt.Sprintf("stack underflow: %q requires %d operands, stack has %d (token %d)",
			e.Lexeme, e.Need, e.Have, e.Index)
	case ErrDivisionByZero:
		return fmt.Sprintf("division by zero (token %d)", e.Index)
	case ErrMemoryUndefined:
		return fmt.Sprintf("memory recalled before any store (token %d)", e.Index)
	case ErrMalformedExpression:
		return fmt.Sprintf("expression leaves %d values on the stack, expected exactly 1", e.Leftover)
	default:
		return "unknown error"
	}
}

/* ===========================
   caret-snippet rendering
   =========================== */

// WrapErrorWithSource returns an error whose message is a caret-annotated
// snippet of src. Errors that are not *Error pass through untouched.
func WrapErrorWithSource(err error, src string) error {
	return WrapErrorWithName(err, "", src)
}

// WrapErrorWithName is WrapErrorWithSource with a source label ("in <name>")
// in the header, for inputs that have one.
func WrapErrorWithName(err error, srcName, src string) error {
	var e *Error
	if !errors.As(err, &e) {
		return err
	}
	return fmt.Errorf("%s", prettySnippet(src, e.header(), srcName, e.Line, e.Col, e.message()))
}

// prettySnippet builds a snippet with a header, up to one line of context on
// each side, and a caret under the 1-based column. Coordinates are clamped
// to the source bounds so stale positions cannot crash rendering.
func prettySnippet(src, header, name string, line, col int, msg string) string {
	lines := strings.Split(src, "\n")
	if line < 1 {
		line = 1
	}
	if line > len(lines) {
		line = len(lines)
	}
	if col < 1 {
		col = 1
	}

	var b strings.Builder
	if name != "" {
		fmt.Fprintf(&b, "%s in %s at %d:%d: %s\n\n", header, name, line, col, msg)
	} else {
		fmt.Fprintf(&b, "%s at %d:%d: %s\n\n", header, line, col, msg)
	}
	if line > 1 {
		fmt.Fprintf(&b, "%4d | %s\n", line-1, lines[line-2])
	}
	fmt.Fprintf(&b, "%4d | %s\n", line, lines[line-1])
	fmt.Fprintf(&b, "     | %s^\n", strings.Repeat(" ", col-1))
	if line < len(lines) {
		fmt.Fprintf(&b, "%4d | %s\n", line+1, lines[line])
	}
	return b.String()
}
