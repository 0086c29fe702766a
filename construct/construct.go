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

// Package construct contains terse helpers for building types and values.
// The value helpers panic on invalid input.
package construct

import (
	"github.com/wdamron/variant"
	"github.com/wdamron/variant/types"
)

// Types

// Parsed signature: `a{sv}`
func T(sig string) types.Type {
	return types.MustParse(sig)
}

// Basic type: `i`, `s`, etc
func TBasic(kind types.Kind) *types.Basic {
	return types.BasicType(kind)
}

// Array type: `ai`
func TArray(elem types.Type) *types.Array {
	return types.NewArray(elem)
}

// Maybe type: `mi`
func TMaybe(elem types.Type) *types.Maybe {
	return types.NewMaybe(elem)
}

// Tuple type: `(is)`
func TTuple(items ...types.Type) *types.Tuple {
	return types.NewTuple(items...)
}

// Dict entry type: `{sv}`
func TDictEntry(key types.Kind, value types.Type) *types.DictEntry {
	return types.NewDictEntry(types.BasicType(key), value)
}

// Dictionary type: `a{sv}`
func TDict(key types.Kind, value types.Type) *types.Array {
	return types.NewArray(TDictEntry(key, value))
}

// Boxed type: `v`
func TVariant() *types.Variant { return types.VariantType }

// Wildcard: `*`
func TAny() *types.Any { return types.AnyType }

// Basic wildcard: `?`
func TAnyBasic() *types.Basic { return types.AnyBasicType }

// Tuple wildcard: `r`
func TAnyTuple() *types.AnyTuple { return types.AnyTupleType }

// Values:

func Bool(b bool) *variant.Value      { return variant.NewBoolean(b) }
func Byte(b uint8) *variant.Value     { return variant.NewByte(b) }
func Int32(n int32) *variant.Value    { return variant.NewInt32(n) }
func Int64(n int64) *variant.Value    { return variant.NewInt64(n) }
func Uint32(n uint32) *variant.Value  { return variant.NewUint32(n) }
func Double(f float64) *variant.Value { return variant.NewDouble(f) }
func Str(s string) *variant.Value     { return variant.NewString(s) }

// Object path: `objectpath '/a/b'`
func Path(path string) *variant.Value {
	return must(variant.NewObjectPath(path))
}

// Boxed value: `<1>`
func Box(v *variant.Value) *variant.Value {
	return must(variant.NewVariant(v))
}

// Array with an element type inferred from the first child: `[1, 2]`
func Array(children ...*variant.Value) *variant.Value {
	return must(variant.NewArray(nil, children...))
}

// Empty array: `@ai []`
func EmptyArray(elem types.Type) *variant.Value {
	return must(variant.NewArray(elem))
}

// Tuple: `(1, 'a')`
func Tuple(children ...*variant.Value) *variant.Value {
	return must(variant.NewTuple(children...))
}

// Dict entry: `{1, 'a'}`
func DictEntry(key, value *variant.Value) *variant.Value {
	return must(variant.NewDictEntry(key, value))
}

// Non-empty maybe: `just 1`
func Just(v *variant.Value) *variant.Value {
	return must(variant.NewMaybe(nil, v))
}

// Empty maybe: `@mi nothing`
func Nothing(elem types.Type) *variant.Value {
	return must(variant.NewMaybe(elem, nil))
}

// Vardict, ordered by key: `{'a': <1>, 'b': <'x'>}`
func Vardict(entries map[string]*variant.Value) *variant.Value {
	d, _ := variant.NewDict(nil)
	for k, v := range entries {
		if err := d.Insert(k, v); err != nil {
			panic(err)
		}
	}
	return d.End()
}

func must(v *variant.Value, err error) *variant.Value {
	if err != nil {
		panic(err)
	}
	return v
}
