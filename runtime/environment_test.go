package runtime_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phpjs/phpjs/runtime"
)

func TestGetWalksEnclosingChain(t *testing.T) {
	global := runtime.New()
	global.Define("$x", runtime.Number{Value: 1})

	block := global.NewChild()
	v, ok := block.Get("$x")
	require.True(t, ok)
	assert.Equal(t, runtime.Number{Value: 1}, v)
}

func TestGetMissingReturnsFalse(t *testing.T) {
	_, ok := runtime.New().Get("$missing")
	assert.False(t, ok)
}

func TestDefineShadowsOuterBinding(t *testing.T) {
	global := runtime.New()
	global.Define("$x", runtime.Number{Value: 1})

	block := global.NewChild()
	block.Define("$x", runtime.Number{Value: 2})

	v, _ := block.Get("$x")
	assert.Equal(t, runtime.Number{Value: 2}, v)

	outer, _ := global.Get("$x")
	assert.Equal(t, runtime.Number{Value: 1}, outer)
}

func TestAssignOverwritesExistingAncestorBinding(t *testing.T) {
	global := runtime.New()
	global.Define("$x", runtime.Number{Value: 1})

	block := global.NewChild()
	block.Assign("$x", runtime.Number{Value: 99})

	v, _ := global.Get("$x")
	assert.Equal(t, runtime.Number{Value: 99}, v)
}

// Implicit declaration of an undeclared variable inside a block climbs
// past the block scope to the nearest declaration scope (§8's scoping
// invariant): it is visible both later in the block and after it exits.
func TestAssignImplicitDeclarationClimbsToDeclScope(t *testing.T) {
	global := runtime.New()
	block := global.NewChild()

	block.Assign("$x", runtime.Number{Value: 1})

	v, ok := global.Get("$x")
	require.True(t, ok)
	assert.Equal(t, runtime.Number{Value: 1}, v)
}

// A function call frame IS a declaration scope: an undeclared assignment
// made directly inside it stays local and does not leak to globals.
func TestAssignInCallScopeStaysLocal(t *testing.T) {
	global := runtime.New()
	call := global.NewCallScope()

	call.Assign("$x", runtime.Number{Value: 1})

	_, ok := global.Get("$x")
	assert.False(t, ok)

	v, ok := call.Get("$x")
	require.True(t, ok)
	assert.Equal(t, runtime.Number{Value: 1}, v)
}

// A block nested inside a function call frame climbs only to that frame,
// not past it to globals.
func TestAssignInNestedBlockClimbsToEnclosingCallScopeNotGlobal(t *testing.T) {
	global := runtime.New()
	call := global.NewCallScope()
	block := call.NewChild()

	block.Assign("$x", runtime.Number{Value: 1})

	_, ok := global.Get("$x")
	assert.False(t, ok)

	v, ok := call.Get("$x")
	require.True(t, ok)
	assert.Equal(t, runtime.Number{Value: 1}, v)
}
