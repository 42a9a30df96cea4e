package gocalc

import (
	"io"
	"strings"
)

// Backend executes a parsed line. It is implemented by *Interpreter and
// *Native only.
type Backend interface {
	Execute(Node) error
	backend()
}

var (
	_ Backend = (*Interpreter)(nil)
	_ Backend = (*Native)(nil)
)

func ParseString(src string) (Node, error) {
	return NewParser(strings.NewReader(src)).Parse()
}

// Run parses src and executes it with b.
func Run(b Backend, src string) error {
	node, err := ParseString(src)
	if err != nil {
		return err
	}
	return b.Execute(node)
}

// Eval parses src and evaluates it with an Interpreter writing to w.
func Eval(src string, w io.Writer) (int32, error) {
	node, err := ParseString(src)
	if err != nil {
		return 0, err
	}
	return NewInterpreter(w).Eval(node)
}
