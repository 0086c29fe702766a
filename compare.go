// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package variant

import (
	"bytes"
	"cmp"
	"math"
	"strings"

	"github.com/wdamron/variant/types"
)

// Equal reports whether a and b have equal types and equal contents. Doubles are
// compared by their bits, so NaN equals NaN.
func Equal(a, b *Value) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a == b {
		return true
	}
	if !types.Equal(a.t, b.t) {
		return false
	}
	if _, ok := a.t.(*types.Basic); ok {
		if fa, ok := a.scalar.(float64); ok {
			return math.Float64bits(fa) == math.Float64bits(b.scalar.(float64))
		}
		return a.scalar == b.scalar
	}
	if a.isByteArray() {
		return bytes.Equal(a.bytes, b.bytes)
	}
	if a.children.Len() != b.children.Len() {
		return false
	}
	eq := true
	a.children.Range(func(i int, child *Value) bool {
		eq = Equal(child, b.children.Get(i))
		return eq
	})
	return eq
}

// Equal is shorthand for Equal(v, other).
func (v *Value) Equal(other *Value) bool { return Equal(v, other) }

// Compare orders two basic values of the same type, returning -1, 0 or 1. False
// orders before true, numbers numerically and strings bytewise. NaN orders
// before every other double.
func Compare(a, b *Value) (int, error) {
	if a == nil || b == nil {
		return 0, ErrNilValue
	}
	if _, ok := a.t.(*types.Basic); !ok {
		return 0, mismatch("compare", types.AnyBasicType, a.t)
	}
	if !types.Equal(a.t, b.t) {
		return 0, mismatch("compare", a.t, b.t)
	}
	return compareScalars(a.scalar, b.scalar), nil
}

// compareScalars expects x and y to hold the same Go type.
func compareScalars(x, y interface{}) int {
	switch x := x.(type) {
	case bool:
		switch yb := y.(bool); {
		case x == yb:
			return 0
		case !x:
			return -1
		}
		return 1
	case string:
		return strings.Compare(x, y.(string))
	case uint8:
		return cmp.Compare(x, y.(uint8))
	case int16:
		return cmp.Compare(x, y.(int16))
	case uint16:
		return cmp.Compare(x, y.(uint16))
	case int32:
		return cmp.Compare(x, y.(int32))
	case uint32:
		return cmp.Compare(x, y.(uint32))
	case int64:
		return cmp.Compare(x, y.(int64))
	case uint64:
		return cmp.Compare(x, y.(uint64))
	case Handle:
		return cmp.Compare(x, y.(Handle))
	case float64:
		return cmp.Compare(x, y.(float64))
	}
	return 0
}
