package runtime_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phpjs/phpjs/runtime"
)

func TestNullTruthiness(t *testing.T) {
	assert.False(t, runtime.NullValue.ToBool())
	assert.Equal(t, "null", runtime.NullValue.ToString())
}

func TestBoolToString(t *testing.T) {
	assert.Equal(t, "1", runtime.Bool{Value: true}.ToString())
	assert.Equal(t, "", runtime.Bool{Value: false}.ToString())
}

func TestNumberToStringTrimsTrailingDotZero(t *testing.T) {
	assert.Equal(t, "3", runtime.Number{Value: 3}.ToString())
	assert.Equal(t, "3.5", runtime.Number{Value: 3.5}.ToString())
}

func TestNumberIsInteger(t *testing.T) {
	assert.True(t, runtime.Number{Value: 4}.IsInteger())
	assert.False(t, runtime.Number{Value: 4.5}.IsInteger())
}

func TestStringToNumberParsesNumericPrefix(t *testing.T) {
	assert.Equal(t, 42.0, runtime.String{Value: "42abc"}.ToNumber())
	assert.Equal(t, 0.0, runtime.String{Value: "abc"}.ToNumber())
	assert.Equal(t, -3.5, runtime.String{Value: "-3.5"}.ToNumber())
}

func TestStringToNumberStopsAtSecondDot(t *testing.T) {
	assert.Equal(t, 3.5, runtime.String{Value: "3.5.6"}.ToNumber())
	assert.Equal(t, 0.0, runtime.String{Value: "."}.ToNumber())
}

func TestArrayGetOutOfRangeReturnsNull(t *testing.T) {
	arr := runtime.NewArray([]runtime.Value{runtime.Number{Value: 1}})
	assert.Equal(t, runtime.NullValue, arr.Get(5))
}

func TestArraySetPadsWithNull(t *testing.T) {
	arr := runtime.NewArray(nil)
	arr.Set(2, runtime.Number{Value: 9})
	assert.Len(t, arr.Elements, 3)
	assert.Equal(t, runtime.NullValue, arr.Get(0))
	assert.Equal(t, runtime.Number{Value: 9}, arr.Get(2))
}

func TestCallableToString(t *testing.T) {
	fn := &runtime.Function{Name: "add"}
	assert.Equal(t, "<fn add>", fn.ToString())

	b := &runtime.Builtin{Name: "strlen", ArityCount: 1}
	assert.Equal(t, "<fn strlen>", b.ToString())
	assert.Equal(t, 1, b.Arity())
}
