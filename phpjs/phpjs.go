// Package phpjs exposes the single entry point a host program needs: Run
// takes PHP-JS source and returns everything the program would have
// printed, folding both parse and runtime errors into that same buffer
// (§6.2).
package phpjs

import (
	"github.com/phpjs/phpjs/interp"
	"github.com/phpjs/phpjs/lexer"
	"github.com/phpjs/phpjs/parser"
)

// Run lexes, parses, and interprets source, returning its accumulated
// output (§6.2). The parser always produces a program, synchronizing past
// any malformed declaration (§7), so a parse error doesn't stop Run from
// interpreting whatever was recovered — it surfaces as an inline
// "// parse error: …" echo ahead of that program's own output, the first
// diagnostic only (§7: "the reference surfaces the first one"). A
// runtime error appends "Runtime Error: <message>" to whatever had
// already been echoed and stops there.
func Run(source string) string {
	tokens := lexer.ScanAll(source)
	stmts, errs := parser.Parse(tokens)

	output := interp.New().Interpret(stmts)
	if len(errs) > 0 {
		return "// parse error: " + errs[0].Error() + "\n" + output
	}
	return output
}
