package cmd

import (
	"fmt"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/spf13/cobra"

	"github.com/phpjs/phpjs/interp"
	"github.com/phpjs/phpjs/lexer"
	"github.com/phpjs/phpjs/parser"
)

var (
	errColor  = color.New(color.FgRed)
	okColor   = color.New(color.FgGreen)
	infoColor = color.New(color.FgCyan)
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive PHP-JS session",
	RunE:  runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

// runRepl reads one line at a time, parses and interprets it against a
// single long-lived Interpreter so variables and functions persist across
// lines, and colorizes errors for a terminal (grounded on
// akashmaji946/go-mix's repl.Start, adapted to PHP-JS's Interpret-returns-
// the-whole-buffer contract by diffing successive outputs).
func runRepl(_ *cobra.Command, _ []string) error {
	out := colorable.NewColorableStdout()
	infoColor.Fprintln(out, "phpjs interactive session — Ctrl+D to exit")

	rl, err := readline.New("phpjs> ")
	if err != nil {
		return err
	}
	defer rl.Close()

	interpreter := interp.New()
	if cfg != nil {
		interpreter.SetMaxSteps(cfg.MaxSteps)
	}
	prevLen := 0

	for {
		line, err := rl.Readline()
		if err != nil {
			infoColor.Fprintln(out, "goodbye")
			return nil
		}
		if line == "" {
			continue
		}
		rl.SaveHistory(line)

		tokens := lexer.ScanAll(line)
		if cfg != nil && cfg.TraceTokens {
			for _, tok := range tokens {
				infoColor.Fprintln(out, tok.String())
			}
		}

		stmts, errs := parser.Parse(tokens)
		if len(errs) > 0 {
			for _, e := range errs {
				errColor.Fprintln(out, "parse error:", e.Error())
			}
			continue
		}

		full := interpreter.Interpret(stmts)
		delta := full[prevLen:]
		prevLen = len(full)
		if delta == "" {
			continue
		}
		if len(delta) >= len("Runtime Error: ") && delta[:len("Runtime Error: ")] == "Runtime Error: " {
			errColor.Fprintln(out, delta)
			continue
		}
		fmt.Fprintln(out, delta)
	}
}
