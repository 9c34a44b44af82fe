package interp

import "fmt"

// runtimeError is a recognized runtime-error kind (§7): undefined
// variable or function, call of non-callable, arity mismatch, foreach of
// non-array, indexing a non-array, a top-level return, or exceeding the
// step limit. Interpret appends its message to the output buffer and
// stops (§4.3).
type runtimeError struct {
	message string
}

func (e *runtimeError) Error() string { return e.message }

func errUndefinedVariable(name string, line int) error {
	return &runtimeError{fmt.Sprintf("Undefined variable '%s' at line %d", name, line)}
}

func errUndefinedFunction(name string, line int) error {
	return &runtimeError{fmt.Sprintf("Undefined function '%s' at line %d", name, line)}
}

func errNotCallable(line int) error {
	return &runtimeError{fmt.Sprintf("Can only call functions and classes at line %d", line)}
}

func errArity(expected, got, line int) error {
	return &runtimeError{fmt.Sprintf("Expected %d arguments but got %d at line %d", expected, got, line)}
}

func errForeachNotArray(kind string, line int) error {
	return &runtimeError{fmt.Sprintf("Foreach expected array, got %s at line %d", kind, line)}
}

func errTopLevelReturn(line int) error {
	return &runtimeError{fmt.Sprintf("Return from top-level scope at line %d", line)}
}

func errMaxStepsExceeded(max int) error {
	return &runtimeError{fmt.Sprintf("Execution exceeded maximum step count (%d)", max)}
}
