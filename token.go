package gocalc

import (
	"fmt"
)

type TokenKind int

const (
	EndOfInput TokenKind = iota
	Number
	Plus
	Minus
	Star
	Slash
	Print
	LParen
	RParen
)

var kindNames = [...]string{
	EndOfInput: "end of input",
	Number:     "number",
	Plus:       "'+'",
	Minus:      "'-'",
	Star:       "'*'",
	Slash:      "'/'",
	Print:      "print",
	LParen:     "'('",
	RParen:     "')'",
}

func (k TokenKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("TokenKind(%d)", int(k))
	}
	return kindNames[k]
}

// Token is a single lexical unit. Value is only set for Number tokens.
type Token struct {
	Kind  TokenKind
	Value int32
	Pos   int
}

func (t Token) String() string {
	if t.Kind == Number {
		return fmt.Sprintf("number %d", t.Value)
	}
	return t.Kind.String()
}
