package gocalc

import (
	"bytes"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/llir/llvm/ir"
)

func compileString(t *testing.T, src string) *ir.Module {
	t.Helper()
	node, err := ParseString(src)
	if err != nil {
		t.Fatalf("parse error for %q: %v", src, err)
	}
	m, err := Compile(node)
	if err != nil {
		t.Fatalf("codegen error for %q: %v", src, err)
	}
	return m
}

func mainFunc(t *testing.T, m *ir.Module) *ir.Func {
	t.Helper()
	for _, f := range m.Funcs {
		if f.Name() == "main" {
			return f
		}
	}
	t.Fatal("no main function")
	return nil
}

// shape describes a block as its name, instruction types and terminator type.
func shape(b *ir.Block) []string {
	s := []string{b.Name()}
	for _, inst := range b.Insts {
		s = append(s, fmt.Sprintf("%T", inst))
	}
	return append(s, fmt.Sprintf("%T", b.Term))
}

func TestCompileShape(t *testing.T) {
	tests := []struct {
		input string
		want  [][]string
	}{
		{
			input: "42",
			want: [][]string{
				{"entry", "*ir.TermRet"},
			},
		},
		{
			input: "print 1 + 2 * 3",
			want: [][]string{
				{"entry", "*ir.InstMul", "*ir.InstAdd", "*ir.InstCall", "*ir.TermRet"},
			},
		},
		{
			input: "8 - 3 - 2",
			want: [][]string{
				{"entry", "*ir.InstSub", "*ir.InstSub", "*ir.TermRet"},
			},
		},
		{
			input: "print 7 / 2",
			want: [][]string{
				{"entry", "*ir.InstICmp", "*ir.TermCondBr"},
				{"divzero", "*ir.TermRet"},
				{"div.ok.1", "*ir.InstSDiv", "*ir.InstCall", "*ir.TermRet"},
			},
		},
		{
			input: "(8 / 2) / (1 + 1)",
			want: [][]string{
				{"entry", "*ir.InstICmp", "*ir.TermCondBr"},
				{"divzero", "*ir.TermRet"},
				{"div.ok.1", "*ir.InstSDiv", "*ir.InstAdd", "*ir.InstICmp", "*ir.TermCondBr"},
				{"div.ok.2", "*ir.InstSDiv", "*ir.TermRet"},
			},
		},
	}
	for _, test := range tests {
		f := mainFunc(t, compileString(t, test.input))
		var got [][]string
		for _, b := range f.Blocks {
			got = append(got, shape(b))
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("%q: (-want +got)\n%s", test.input, diff)
		}
	}
}

func TestCompileText(t *testing.T) {
	src := compileString(t, "print (7 - 1) / 2").String()
	for _, want := range []string{
		"@printf(i8*",
		`c"%d\0A\00"`,
		"define i32 @main()",
		"sub i32 7, 1",
		"icmp eq i32 2, 0",
		"sdiv i32",
		"call i32 (i8*, ...) @printf(",
		fmt.Sprintf("ret i32 %d", DivZeroStatus),
		"ret i32 0",
	} {
		if !strings.Contains(src, want) {
			t.Errorf("want %q in\n%s", want, src)
		}
	}
}

func TestEmitOutsideMain(t *testing.T) {
	c := NewCompiler()
	if _, err := c.Emit(&NumberLit{Value: 1}); err == nil {
		t.Error("want error")
	}
}

func TestNativeUnavailable(t *testing.T) {
	var text bytes.Buffer
	nb := &Native{LLI: "gocalc-lli-does-not-exist", IR: &text}
	if nb.Available() {
		t.Fatal("want unavailable")
	}
	err := Run(nb, "print 1")
	if !errors.Is(err, ErrNativeUnavailable) {
		t.Fatalf("want ErrNativeUnavailable, got %v", err)
	}
	if !strings.Contains(text.String(), "define i32 @main()") {
		t.Errorf("want module text, got %q", text.String())
	}
}

func nativeOrSkip(t *testing.T, stdout *bytes.Buffer) *Native {
	t.Helper()
	nb := &Native{Stdout: stdout}
	if !nb.Available() {
		t.Skip("lli not found")
	}
	return nb
}

func TestNativeEndToEnd(t *testing.T) {
	tests := []string{
		"print 5",
		"print 1 + 2",
		"print 8 - 3 - 2",
		"print 2 + 3 * 4",
		"print (2 + 3) * 4",
		"print 7 / 2",
		"print -7 / 2",
		"print ((1 + 2) * (3 + 4) - 5) / 2",
		"print 2147483647 + 1",
		"print -(10 * 10)",
	}
	var out bytes.Buffer
	nb := nativeOrSkip(t, &out)
	for _, input := range tests {
		out.Reset()
		if err := Run(nb, input); err != nil {
			t.Errorf("%q: %v", input, err)
			continue
		}
		var want bytes.Buffer
		if err := Run(NewInterpreter(&want), input); err != nil {
			t.Fatalf("%q: %v", input, err)
		}
		if diff := cmp.Diff(want.String(), out.String()); diff != "" {
			t.Errorf("%q: (-interp +native)\n%s", input, diff)
		}
	}
}

func TestNativeNoPrint(t *testing.T) {
	var out bytes.Buffer
	nb := nativeOrSkip(t, &out)
	if err := Run(nb, "1 + 2"); err != nil {
		t.Fatal(err)
	}
	if out.Len() != 0 {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestNativeDivisionByZero(t *testing.T) {
	var out bytes.Buffer
	nb := nativeOrSkip(t, &out)
	for _, input := range []string{"print 1 / 0", "print 5 / (3 - 3)"} {
		out.Reset()
		err := Run(nb, input)
		if !errors.Is(err, ErrDivisionByZero) {
			t.Errorf("%q: want ErrDivisionByZero, got %v", input, err)
		}
		if out.Len() != 0 {
			t.Errorf("%q: unexpected output %q", input, out.String())
		}
	}
}

func TestNativeAgainstInterpreter(t *testing.T) {
	var out bytes.Buffer
	nb := nativeOrSkip(t, &out)
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		input := "print " + genExpr(r, 3)
		out.Reset()
		if err := Run(nb, input); err != nil {
			t.Errorf("%q: %v", input, err)
			continue
		}
		var want bytes.Buffer
		if err := Run(NewInterpreter(&want), input); err != nil {
			t.Fatalf("%q: %v", input, err)
		}
		if want.String() != out.String() {
			t.Errorf("want %q for %q but got %q", want.String(), input, out.String())
		}
	}
}
