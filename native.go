package gocalc

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Native compiles a tree to LLVM IR and runs it with lli.
type Native struct {
	// LLI is the lli executable name or path. Empty means "lli".
	LLI    string
	Stdout io.Writer
	Stderr io.Writer
	// IR receives the generated module text when non-nil.
	IR io.Writer
}

func (nb *Native) lookPath() (string, error) {
	name := nb.LLI
	if name == "" {
		name = "lli"
	}
	path, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNativeUnavailable, err)
	}
	return path, nil
}

// Available reports whether lli can be found.
func (nb *Native) Available() bool {
	_, err := nb.lookPath()
	return err == nil
}

func (nb *Native) Execute(node Node) error {
	m, err := Compile(node)
	if err != nil {
		return err
	}
	src := m.String()
	if nb.IR != nil {
		if _, err := io.WriteString(nb.IR, src); err != nil {
			return err
		}
	}

	path, err := nb.lookPath()
	if err != nil {
		return err
	}

	var stderr bytes.Buffer
	cmd := exec.Command(path, "-")
	cmd.Stdin = strings.NewReader(src)
	cmd.Stdout = nb.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = &stderr
	if nb.Stderr != nil {
		cmd.Stderr = io.MultiWriter(&stderr, nb.Stderr)
	}

	err = cmd.Run()
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		if ee.ExitCode() == DivZeroStatus {
			return ErrDivisionByZero
		}
		return fmt.Errorf("lli: %v: %s", err, strings.TrimSpace(stderr.String()))
	}
	return err
}

func (nb *Native) backend() {}
