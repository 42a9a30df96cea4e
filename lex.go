package gocalc

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const keywordPrint = "print"

// Lexer produces tokens on demand from r. It never buffers more than one
// rune beyond the token being returned.
type Lexer struct {
	buf  *bufio.Reader
	pos  int
	last int
}

func NewLexer(r io.Reader) *Lexer {
	return &Lexer{
		buf: bufio.NewReader(r),
	}
}

func (l *Lexer) readRune() (rune, error) {
	r, n, err := l.buf.ReadRune()
	l.pos += n
	l.last = n
	return r, err
}

func (l *Lexer) unreadRune() {
	if l.buf.UnreadRune() == nil {
		l.pos -= l.last
		l.last = 0
	}
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// Next returns the next token. After the input is exhausted it keeps
// returning an EndOfInput token.
func (l *Lexer) Next() (Token, error) {
	for {
		start := l.pos
		r, err := l.readRune()
		if err == io.EOF {
			return Token{Kind: EndOfInput, Pos: start}, nil
		}
		if err != nil {
			return Token{}, fmt.Errorf("read input: %w", err)
		}

		switch {
		case isSpace(r):
			continue
		case isDigit(r):
			l.unreadRune()
			return l.number(start)
		case r == 'p':
			return l.keyword(start)
		}

		tok := Token{Pos: start}
		switch r {
		case '+':
			tok.Kind = Plus
		case '-':
			tok.Kind = Minus
		case '*':
			tok.Kind = Star
		case '/':
			tok.Kind = Slash
		case '(':
			tok.Kind = LParen
		case ')':
			tok.Kind = RParen
		default:
			return Token{}, &LexError{
				Kind: UnexpectedCharacter,
				Pos:  start,
				Char: r,
			}
		}
		return tok, nil
	}
}

func (l *Lexer) number(start int) (Token, error) {
	var sb strings.Builder
	for {
		r, err := l.readRune()
		if err != nil {
			if err == io.EOF {
				break
			}
			return Token{}, fmt.Errorf("read input: %w", err)
		}
		if !isDigit(r) {
			l.unreadRune()
			break
		}
		sb.WriteRune(r)
	}

	s := sb.String()
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return Token{}, &LexError{
			Kind: MalformedNumber,
			Pos:  start,
			Text: s,
			Err:  err,
		}
	}
	return Token{Kind: Number, Value: int32(v), Pos: start}, nil
}

// keyword is entered with the leading 'p' already consumed.
func (l *Lexer) keyword(start int) (Token, error) {
	for _, want := range keywordPrint[1:] {
		at := l.pos
		r, err := l.readRune()
		if err == io.EOF {
			return Token{}, &LexError{
				Kind:     ExpectedKeyword,
				Pos:      at,
				Expected: keywordPrint,
				AtEnd:    true,
			}
		}
		if err != nil {
			return Token{}, fmt.Errorf("read input: %w", err)
		}
		if r != want {
			return Token{}, &LexError{
				Kind:     ExpectedKeyword,
				Pos:      at,
				Expected: keywordPrint,
				Char:     r,
			}
		}
	}
	return Token{Kind: Print, Pos: start}, nil
}
