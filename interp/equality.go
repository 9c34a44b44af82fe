package interp

import (
	"math"

	"github.com/phpjs/phpjs/runtime"
)

// looseEqual implements `==`/`!=` (§4.3): values of the same dynamic type
// compare by value; Number and String compare by numeric coercion; Null
// compares equal only to Null and boolean false; an Array on the left
// equals only an Array of the same length whose elements are pairwise
// loosely equal; anything else compares by boolean coercion.
func looseEqual(a, b runtime.Value) bool {
	switch av := a.(type) {
	case runtime.Null:
		_, bIsNull := b.(runtime.Null)
		if bIsNull {
			return true
		}
		if bb, ok := b.(runtime.Bool); ok {
			return bb.Value == false
		}
		return false
	case runtime.Bool:
		if _, ok := b.(runtime.Null); ok {
			return av.Value == false
		}
		return av.Value == b.ToBool()
	case runtime.Number:
		switch b.(type) {
		case runtime.Number, runtime.String:
			return av.Value == b.ToNumber()
		}
		return av.ToBool() == b.ToBool()
	case runtime.String:
		if bs, ok := b.(runtime.String); ok {
			return av.Value == bs.Value
		}
		if _, ok := b.(runtime.Number); ok {
			return av.ToNumber() == b.ToNumber()
		}
		return av.ToBool() == b.ToBool()
	case *runtime.Array:
		bArr, ok := b.(*runtime.Array)
		if !ok || len(av.Elements) != len(bArr.Elements) {
			return false
		}
		for i, elem := range av.Elements {
			if !looseEqual(elem, bArr.Elements[i]) {
				return false
			}
		}
		return true
	}
	return a.ToBool() == b.ToBool()
}

// strictEqual implements `===`/`!==` (§4.3): types must match exactly, with
// no coercion between Number and String.
func strictEqual(a, b runtime.Value) bool {
	if a.Type() != b.Type() {
		return false
	}
	switch av := a.(type) {
	case runtime.Null:
		return true
	case runtime.Bool:
		return av.Value == b.(runtime.Bool).Value
	case runtime.Number:
		return av.Value == b.(runtime.Number).Value
	case runtime.String:
		return av.Value == b.(runtime.String).Value
	case *runtime.Array:
		bArr := b.(*runtime.Array)
		if len(av.Elements) != len(bArr.Elements) {
			return false
		}
		for i, elem := range av.Elements {
			if !strictEqual(elem, bArr.Elements[i]) {
				return false
			}
		}
		return true
	}
	return a == b
}

// mod mirrors PHP's `%`: truncated (not floored) remainder, sign of the
// dividend.
func mod(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	ai, bi := int64(a), int64(b)
	return float64(ai % bi)
}

// pow implements `**` without pulling in math.Pow for the common integer
// case, falling back to it otherwise.
func pow(base, exp float64) float64 {
	if exp == float64(int64(exp)) && exp >= 0 {
		result := 1.0
		for i := int64(0); i < int64(exp); i++ {
			result *= base
		}
		return result
	}
	return math.Pow(base, exp)
}
