package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"axlab.dev/vvvm/pkg/codec"
	"axlab.dev/vvvm/pkg/core"
	"axlab.dev/vvvm/pkg/eval"
	"axlab.dev/vvvm/pkg/reader"
	"github.com/peterh/liner"
	"golang.org/x/term"
)

const (
	promptMain  = "vvvm> "
	promptCont  = "  ... "
	historyFile = ".vvvm_history"
)

var (
	flagExpr   = flag.String("e", "", "evaluate the given expression")
	flagFormat = flag.String("format", "text", "result format: text or yaml")
	flagPrompt = flag.Bool("prompt", false, "force the interactive prompt")
)

func main() {
	flag.Parse()

	if *flagFormat != "text" && *flagFormat != "yaml" {
		fmt.Fprintf(os.Stderr, "error: invalid format `%s`\n", *flagFormat)
		os.Exit(2)
	}

	m := eval.New()
	m.DefineStdNatives()

	switch {
	case *flagExpr != "":
		os.Exit(runSource(m, "<expr>", *flagExpr))
	case flag.NArg() > 0:
		loader := &eval.Loader{}
		for _, file := range flag.Args() {
			out, err := m.RunFile(loader, file)
			if code := report(out, err); code != 0 {
				os.Exit(code)
			}
		}
	case *flagPrompt || term.IsTerminal(int(os.Stdin.Fd())):
		repl(m)
	default:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %s\n", err)
			os.Exit(1)
		}
		os.Exit(runSource(m, "<stdin>", string(data)))
	}
}

func runSource(m *eval.Machine, name, text string) int {
	return report(m.RunString(name, text))
}

// Prints the result of a run. Returns the process exit code.
func report(out eval.Outcome, err error) int {
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		return 1
	}
	if out.Halted {
		fmt.Fprintf(os.Stderr, "halted: %s\n", out.Value)
		return 1
	}
	if err := printResult(out.Value); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		return 1
	}
	return 0
}

func printResult(v core.Value) error {
	if *flagFormat == "yaml" {
		data, err := codec.EncodeYAML(v)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	}
	_, err := fmt.Println(v)
	return err
}

func repl(m *eval.Machine) {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for {
		code, ok := readByParseProbe(ln)
		if !ok {
			fmt.Println()
			return
		}

		code = strings.TrimSpace(code)
		switch code {
		case "":
			continue
		case ":quit":
			return
		case ":globals":
			fmt.Println(strings.Join(m.Names(), " "))
			continue
		}

		ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))

		out, err := m.RunString("<repl>", code)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %s\n", err)
			continue
		}
		if out.Halted {
			fmt.Printf("halted: %s\n", out.Value)
			continue
		}
		if err := printResult(out.Value); err != nil {
			fmt.Fprintf(os.Stderr, "error: %s\n", err)
		}
	}
}

// Reads lines until they parse or fail with something other than an
// unterminated construct.
func readByParseProbe(ln *liner.State) (string, bool) {
	var b strings.Builder

	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}

		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", true
		}
		if err != nil {
			return "", false
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if _, err := reader.ParseString("<repl>", src); reader.IsIncomplete(err) {
			continue
		}
		return src, true
	}
}
