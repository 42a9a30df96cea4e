package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/mattn/go-isatty"
	"github.com/mattn/gocalc"
)

var (
	backendName = flag.String("backend", "interp", "execution backend: interp or native")
	emitLLVM    = flag.Bool("emit-llvm", false, "write generated LLVM IR to stderr (native backend)")
	dump        = flag.Bool("dump", false, "dump the parsed tree to stderr")
	lli         = flag.String("lli", "lli", "lli executable used by the native backend")
)

func init() {
	log.SetFlags(0)
}

func newBackend() (gocalc.Backend, error) {
	switch *backendName {
	case "interp":
		return gocalc.NewInterpreter(os.Stdout), nil
	case "native":
		nb := &gocalc.Native{
			LLI:    *lli,
			Stdout: os.Stdout,
			Stderr: os.Stderr,
		}
		if *emitLLVM {
			nb.IR = os.Stderr
		}
		return nb, nil
	}
	return nil, fmt.Errorf("unknown backend: %q", *backendName)
}

func run(b gocalc.Backend, line string) error {
	node, err := gocalc.ParseString(line)
	if err != nil {
		return err
	}
	if *dump {
		spew.Fdump(os.Stderr, node)
	}
	return b.Execute(node)
}

func repl(b gocalc.Backend) {
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(">>> ")
		if !scanner.Scan() {
			break
		}
		if strings.TrimSpace(scanner.Text()) == "" {
			continue
		}
		if err := run(b, scanner.Text()); err != nil {
			log.Print(err)
		}
	}
}

func batch(b gocalc.Backend, r io.Reader) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if strings.TrimSpace(scanner.Text()) == "" {
			continue
		}
		if err := run(b, scanner.Text()); err != nil {
			log.Fatal(err)
		}
	}
	if err := scanner.Err(); err != nil {
		log.Fatal(err)
	}
}

func main() {
	flag.Parse()

	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}

	b, err := newBackend()
	if err != nil {
		log.Fatal(err)
	}

	var f *os.File

	if flag.NArg() == 0 {
		if isatty.IsTerminal(os.Stdin.Fd()) {
			repl(b)
			return
		}
		f = os.Stdin
	}

	if flag.NArg() == 1 {
		f, err = os.Open(flag.Arg(0))
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	}

	batch(b, f)
}
