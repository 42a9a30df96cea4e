package gocalc

import (
	"fmt"
	"io"
	"os"
)

// Interpreter evaluates a tree directly. Output of print goes to out.
type Interpreter struct {
	out io.Writer
}

func NewInterpreter(w io.Writer) *Interpreter {
	if w == nil {
		w = os.Stdout
	}
	return &Interpreter{
		out: w,
	}
}

// Eval reduces node to an int32. Arithmetic wraps on overflow and division
// truncates toward zero.
func (in *Interpreter) Eval(node Node) (int32, error) {
	switch n := node.(type) {
	case *NumberLit:
		return n.Value, nil
	case *BinaryExpr:
		lhs, err := in.Eval(n.Left)
		if err != nil {
			return 0, err
		}
		rhs, err := in.Eval(n.Right)
		if err != nil {
			return 0, err
		}
		return apply(n.Op, lhs, rhs)
	case *PrintStmt:
		v, err := in.Eval(n.X)
		if err != nil {
			return 0, err
		}
		if _, err := fmt.Fprintln(in.out, v); err != nil {
			return 0, err
		}
		return v, nil
	}
	return 0, fmt.Errorf("invalid node: %T", node)
}

func (in *Interpreter) Execute(node Node) error {
	_, err := in.Eval(node)
	return err
}

func (in *Interpreter) backend() {}

func apply(op Operator, lhs, rhs int32) (int32, error) {
	switch op {
	case Add:
		return lhs + rhs, nil
	case Sub:
		return lhs - rhs, nil
	case Mul:
		return lhs * rhs, nil
	case Div:
		if rhs == 0 {
			return 0, ErrDivisionByZero
		}
		return lhs / rhs, nil
	}
	return 0, fmt.Errorf("invalid operator: %v", op)
}
