package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/phpjs/phpjs/interp"
	"github.com/phpjs/phpjs/lexer"
	"github.com/phpjs/phpjs/parser"
)

var traceRun bool

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a PHP-JS source file",
	Args:  cobra.ExactArgs(1),
	RunE:  runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolVar(&traceRun, "trace", false, "print the token stream before executing")
}

func runScript(_ *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", args[0], err)
	}
	source := string(content)

	tokens := lexer.ScanAll(source)
	if traceRun || (cfg != nil && cfg.TraceTokens) {
		for _, tok := range tokens {
			fmt.Fprintln(os.Stderr, tok.String())
		}
	}

	stmts, errs := parser.Parse(tokens)
	for _, e := range errs {
		fmt.Fprintln(os.Stderr, "parse error:", e.Error())
	}

	interpreter := interp.New()
	if cfg != nil {
		interpreter.SetMaxSteps(cfg.MaxSteps)
	}
	fmt.Print(interpreter.Interpret(stmts))
	return nil
}
