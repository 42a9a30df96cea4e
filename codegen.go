package gocalc

import (
	"errors"
	"fmt"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/enum"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
)

// DivZeroStatus is the exit status of a compiled program that attempted to
// divide by zero.
const DivZeroStatus = 3

// Compiler translates a tree into an LLVM module with a single i32 @main().
type Compiler struct {
	module *ir.Module
	printf *ir.Func
	format *ir.Global

	main    *ir.Func
	block   *ir.Block
	divzero *ir.Block
	ndiv    int
}

func NewCompiler() *Compiler {
	m := ir.NewModule()
	printf := m.NewFunc("printf", types.I32, ir.NewParam("format", types.I8Ptr))
	printf.Sig.Variadic = true
	format := m.NewGlobalDef("format_str", constant.NewCharArrayFromString("%d\n\x00"))
	format.Immutable = true
	format.Linkage = enum.LinkagePrivate
	return &Compiler{
		module: m,
		printf: printf,
		format: format,
	}
}

func (c *Compiler) Module() *ir.Module {
	return c.module
}

// CreateMain declares i32 @main() and positions emission at its entry block.
func (c *Compiler) CreateMain() {
	c.main = c.module.NewFunc("main", types.I32)
	c.block = c.main.NewBlock("entry")
}

// FinishMain terminates the current block with ret i32 0.
func (c *Compiler) FinishMain() {
	c.block.NewRet(constant.NewInt(types.I32, 0))
}

// Emit appends instructions computing node to the current block and
// returns the resulting value.
func (c *Compiler) Emit(node Node) (value.Value, error) {
	if c.block == nil {
		return nil, errors.New("emit outside of main")
	}
	switch n := node.(type) {
	case *NumberLit:
		return constant.NewInt(types.I32, int64(n.Value)), nil
	case *BinaryExpr:
		lhs, err := c.Emit(n.Left)
		if err != nil {
			return nil, err
		}
		rhs, err := c.Emit(n.Right)
		if err != nil {
			return nil, err
		}
		switch n.Op {
		case Add:
			return c.block.NewAdd(lhs, rhs), nil
		case Sub:
			return c.block.NewSub(lhs, rhs), nil
		case Mul:
			return c.block.NewMul(lhs, rhs), nil
		case Div:
			c.checkDivisor(rhs)
			return c.block.NewSDiv(lhs, rhs), nil
		}
		return nil, fmt.Errorf("invalid operator: %v", n.Op)
	case *PrintStmt:
		v, err := c.Emit(n.X)
		if err != nil {
			return nil, err
		}
		zero := constant.NewInt(types.I64, 0)
		ptr := constant.NewGetElementPtr(c.format.ContentType, c.format, zero, zero)
		ptr.InBounds = true
		c.block.NewCall(c.printf, ptr, v)
		return v, nil
	}
	return nil, fmt.Errorf("invalid node: %T", node)
}

// checkDivisor branches to the divzero block when rhs is zero and moves
// emission to a fresh block otherwise.
func (c *Compiler) checkDivisor(rhs value.Value) {
	if c.divzero == nil {
		c.divzero = c.main.NewBlock("divzero")
		c.divzero.NewRet(constant.NewInt(types.I32, DivZeroStatus))
	}
	c.ndiv++
	ok := c.main.NewBlock(fmt.Sprintf("div.ok.%d", c.ndiv))
	isZero := c.block.NewICmp(enum.IPredEQ, rhs, constant.NewInt(types.I32, 0))
	c.block.NewCondBr(isZero, c.divzero, ok)
	c.block = ok
}

// Compile returns a complete module for node.
func Compile(node Node) (*ir.Module, error) {
	c := NewCompiler()
	c.CreateMain()
	if _, err := c.Emit(node); err != nil {
		return nil, err
	}
	c.FinishMain()
	return c.Module(), nil
}
