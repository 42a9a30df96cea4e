package gocalc

import (
	"fmt"
)

// Node is an element of the syntax tree. The set of implementations is
// closed: *NumberLit, *BinaryExpr and *PrintStmt.
type Node interface {
	fmt.Stringer
	node()
}

type Operator int

const (
	Add Operator = iota + 1
	Sub
	Mul
	Div
)

func (op Operator) String() string {
	switch op {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	}
	return fmt.Sprintf("Operator(%d)", int(op))
}

func operatorFor(k TokenKind) (Operator, bool) {
	switch k {
	case Plus:
		return Add, true
	case Minus:
		return Sub, true
	case Star:
		return Mul, true
	case Slash:
		return Div, true
	}
	return 0, false
}

type NumberLit struct {
	Value int32
}

type BinaryExpr struct {
	Left  Node
	Op    Operator
	Right Node
}

// PrintStmt only appears at the root of a tree.
type PrintStmt struct {
	X Node
}

func (*NumberLit) node()  {}
func (*BinaryExpr) node() {}
func (*PrintStmt) node()  {}

func (n *NumberLit) String() string {
	return fmt.Sprint(n.Value)
}

func (n *BinaryExpr) String() string {
	return fmt.Sprintf("(%v %v %v)", n.Op, n.Left, n.Right)
}

func (n *PrintStmt) String() string {
	return fmt.Sprintf("(print %v)", n.X)
}
