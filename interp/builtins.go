package interp

import (
	"strconv"
	"strings"

	"github.com/phpjs/phpjs/runtime"
)

// registerBuiltins installs the built-in function table (§4.4) into the
// global environment. Builtins receive already-evaluated arguments and
// return a runtime.Value directly; arity is enforced by evalCall before
// Fn is invoked, so each Fn can assume len(args) == ArityCount.
func (i *Interpreter) registerBuiltins() {
	for _, b := range []*runtime.Builtin{
		{Name: "strlen", ArityCount: 1, Fn: builtinStrlen},
		{Name: "count", ArityCount: 1, Fn: builtinCount},
		{Name: "strtoupper", ArityCount: 1, Fn: builtinStrtoupper},
		{Name: "strtolower", ArityCount: 1, Fn: builtinStrtolower},
		{Name: "trim", ArityCount: 1, Fn: builtinTrim},
		{Name: "is_null", ArityCount: 1, Fn: builtinIsNull},
		{Name: "is_array", ArityCount: 1, Fn: builtinIsArray},
		{Name: "is_string", ArityCount: 1, Fn: builtinIsString},
		{Name: "is_int", ArityCount: 1, Fn: builtinIsInt},
		{Name: "is_integer", ArityCount: 1, Fn: builtinIsInt},
		{Name: "is_bool", ArityCount: 1, Fn: builtinIsBool},
		{Name: "is_numeric", ArityCount: 1, Fn: builtinIsNumeric},
	} {
		i.globals.Define(b.Name, b)
	}
}

func builtinStrlen(args []runtime.Value) (runtime.Value, error) {
	return runtime.Number{Value: float64(len(args[0].ToString()))}, nil
}

func builtinCount(args []runtime.Value) (runtime.Value, error) {
	if arr, ok := args[0].(*runtime.Array); ok {
		return runtime.Number{Value: float64(len(arr.Elements))}, nil
	}
	return runtime.Number{Value: 0}, nil
}

func builtinStrtoupper(args []runtime.Value) (runtime.Value, error) {
	return runtime.String{Value: strings.ToUpper(args[0].ToString())}, nil
}

func builtinStrtolower(args []runtime.Value) (runtime.Value, error) {
	return runtime.String{Value: strings.ToLower(args[0].ToString())}, nil
}

func builtinTrim(args []runtime.Value) (runtime.Value, error) {
	return runtime.String{Value: strings.TrimSpace(args[0].ToString())}, nil
}

func builtinIsNull(args []runtime.Value) (runtime.Value, error) {
	_, ok := args[0].(runtime.Null)
	return runtime.Bool{Value: ok}, nil
}

func builtinIsArray(args []runtime.Value) (runtime.Value, error) {
	_, ok := args[0].(*runtime.Array)
	return runtime.Bool{Value: ok}, nil
}

func builtinIsString(args []runtime.Value) (runtime.Value, error) {
	_, ok := args[0].(runtime.String)
	return runtime.Bool{Value: ok}, nil
}

func builtinIsInt(args []runtime.Value) (runtime.Value, error) {
	n, ok := args[0].(runtime.Number)
	return runtime.Bool{Value: ok && n.IsInteger()}, nil
}

func builtinIsBool(args []runtime.Value) (runtime.Value, error) {
	_, ok := args[0].(runtime.Bool)
	return runtime.Bool{Value: ok}, nil
}

func builtinIsNumeric(args []runtime.Value) (runtime.Value, error) {
	switch v := args[0].(type) {
	case runtime.Number:
		return runtime.Bool{Value: true}, nil
	case runtime.String:
		trimmed := strings.TrimSpace(v.Value)
		_, err := strconv.ParseFloat(trimmed, 64)
		return runtime.Bool{Value: err == nil}, nil
	}
	return runtime.Bool{Value: false}, nil
}
