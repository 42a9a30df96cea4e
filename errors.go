package gocalc

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrDivisionByZero    = errors.New("division by zero")
	ErrNativeUnavailable = errors.New("native backend unavailable")
)

type LexErrorKind int

const (
	UnexpectedCharacter LexErrorKind = iota
	MalformedNumber
	ExpectedKeyword
)

// LexError reports a failure to tokenize the input at byte offset Pos.
type LexError struct {
	Kind     LexErrorKind
	Pos      int
	Char     rune
	Text     string
	Expected string
	AtEnd    bool
	Err      error
}

func (e *LexError) Error() string {
	switch e.Kind {
	case UnexpectedCharacter:
		return fmt.Sprintf("unexpected character '%c' at %d", e.Char, e.Pos)
	case MalformedNumber:
		return fmt.Sprintf("malformed number %q at %d: %v", e.Text, e.Pos, e.Err)
	case ExpectedKeyword:
		if e.AtEnd {
			return fmt.Sprintf("expected %q, found end of input at %d", e.Expected, e.Pos)
		}
		return fmt.Sprintf("expected %q, found '%c' at %d", e.Expected, e.Char, e.Pos)
	}
	return fmt.Sprintf("lex error at %d", e.Pos)
}

func (e *LexError) Unwrap() error {
	return e.Err
}

type ParseErrorKind int

const (
	UnexpectedToken ParseErrorKind = iota
	TrailingInput
	LexFailure
)

// ParseError reports the first syntax error of a line. For LexFailure the
// underlying lexer error is available through errors.As.
type ParseError struct {
	Kind     ParseErrorKind
	Found    Token
	Expected []TokenKind
	Err      error
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case UnexpectedToken:
		names := make([]string, len(e.Expected))
		for i, k := range e.Expected {
			names[i] = k.String()
		}
		return fmt.Sprintf("unexpected %v at %d, expected %s", e.Found, e.Found.Pos, strings.Join(names, " or "))
	case TrailingInput:
		return fmt.Sprintf("unexpected %v at %d after end of expression", e.Found, e.Found.Pos)
	}
	return e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
