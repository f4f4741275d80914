package common

import (
	"errors"
	"fmt"
)

type ErrorKind int

const (
	// SyntaxMismatch: a literal, character class or sub-grammar did not
	// match at the current position.
	SyntaxMismatch ErrorKind = iota
	// NumericConversion: digits did not fit the integer type, or an
	// exponent was negative.
	NumericConversion
	// Arithmetic: division by zero or overflow while evaluating.
	Arithmetic
	// StructuralMismatch: the tree cannot be converted into a value.
	StructuralMismatch
	// TrailingData: a complete value was parsed but input remains.
	TrailingData
)

func (k ErrorKind) String() string {
	switch k {
	case SyntaxMismatch:
		return "syntax mismatch"
	case NumericConversion:
		return "numeric conversion failure"
	case Arithmetic:
		return "arithmetic failure"
	case StructuralMismatch:
		return "structural mismatch"
	case TrailingData:
		return "trailing data"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// PrefixLength is how many characters of the offending input a
// diagnostic quotes.
const PrefixLength = 10

type ParseError struct {
	Kind    ErrorKind
	Message string
	Loc     StringPos
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at %s: %s", e.Kind, e.Loc, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func NewError(kind ErrorKind, input MetaString, format string, args ...any) *ParseError {
	return &ParseError{Kind: kind, Message: fmt.Sprintf(format, args...), Loc: input.Loc}
}

// Mismatch reports that input did not start with what was expected.
func Mismatch(input MetaString, expected string) *ParseError {
	return NewError(SyntaxMismatch, input, "string %q did not start with %s", input.Prefix(PrefixLength), expected)
}

// IsKind reports whether any error in err's chain is a ParseError of the
// given kind.
func IsKind(err error, kind ErrorKind) bool {
	var parseErr *ParseError

	if !errors.As(err, &parseErr) {
		return false
	}

	return parseErr.Kind == kind
}

// Recoverable reports whether err only means "did not match here", so an
// enclosing parser may backtrack and try something else. Numeric and
// evaluation failures are not recoverable.
func Recoverable(err error) bool {
	return IsKind(err, SyntaxMismatch)
}
