package gocalc

import (
	"io"
)

// Parser is a recursive descent parser over a Lexer with one token of
// look-ahead. A Parser is used for a single Parse call.
type Parser struct {
	lex *Lexer
	tok Token
}

func NewParser(r io.Reader) *Parser {
	return &Parser{
		lex: NewLexer(r),
	}
}

func (p *Parser) advance() error {
	tok, err := p.lex.Next()
	if err != nil {
		return lexFailure(err)
	}
	p.tok = tok
	return nil
}

func lexFailure(err error) error {
	return &ParseError{Kind: LexFailure, Err: err}
}

func (p *Parser) eat(kind TokenKind) error {
	if p.tok.Kind != kind {
		return &ParseError{
			Kind:     UnexpectedToken,
			Found:    p.tok,
			Expected: []TokenKind{kind},
		}
	}
	return p.advance()
}

// Parse consumes the whole input and returns its syntax tree.
//
//	program := "print" expr | expr
//	expr    := term ( ("+"|"-") term )*
//	term    := factor ( ("*"|"/") factor )*
//	factor  := NUMBER | "-" factor | "(" expr ")"
func (p *Parser) Parse() (Node, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	node, err := p.program()
	if err != nil {
		return nil, err
	}
	if p.tok.Kind != EndOfInput {
		return nil, &ParseError{Kind: TrailingInput, Found: p.tok}
	}
	return node, nil
}

func (p *Parser) program() (Node, error) {
	if p.tok.Kind != Print {
		return p.expr()
	}
	if err := p.eat(Print); err != nil {
		return nil, err
	}
	x, err := p.expr()
	if err != nil {
		return nil, err
	}
	return &PrintStmt{X: x}, nil
}

func (p *Parser) expr() (Node, error) {
	return p.binary(p.term, Plus, Minus)
}

func (p *Parser) term() (Node, error) {
	return p.binary(p.factor, Star, Slash)
}

// binary parses a left-associative chain of operand separated by any of
// the given operator kinds.
func (p *Parser) binary(operand func() (Node, error), kinds ...TokenKind) (Node, error) {
	node, err := operand()
	if err != nil {
		return nil, err
	}
	for matches(p.tok.Kind, kinds) {
		op, _ := operatorFor(p.tok.Kind)
		if err := p.eat(p.tok.Kind); err != nil {
			return nil, err
		}
		right, err := operand()
		if err != nil {
			return nil, err
		}
		node = &BinaryExpr{Left: node, Op: op, Right: right}
	}
	return node, nil
}

func matches(k TokenKind, kinds []TokenKind) bool {
	for _, kk := range kinds {
		if k == kk {
			return true
		}
	}
	return false
}

func (p *Parser) factor() (Node, error) {
	switch p.tok.Kind {
	case Number:
		v := p.tok.Value
		if err := p.eat(Number); err != nil {
			return nil, err
		}
		return &NumberLit{Value: v}, nil
	case Minus:
		if err := p.eat(Minus); err != nil {
			return nil, err
		}
		x, err := p.factor()
		if err != nil {
			return nil, err
		}
		if n, ok := x.(*NumberLit); ok {
			return &NumberLit{Value: -n.Value}, nil
		}
		return &BinaryExpr{Left: &NumberLit{}, Op: Sub, Right: x}, nil
	case LParen:
		if err := p.eat(LParen); err != nil {
			return nil, err
		}
		node, err := p.expr()
		if err != nil {
			return nil, err
		}
		if err := p.eat(RParen); err != nil {
			return nil, err
		}
		return node, nil
	}
	return nil, &ParseError{
		Kind:     UnexpectedToken,
		Found:    p.tok,
		Expected: []TokenKind{Number, Minus, LParen},
	}
}
