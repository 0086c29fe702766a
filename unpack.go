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
	"github.com/wdamron/variant/types"
)

type unpackLevel int

const (
	shallow unpackLevel = iota
	deep
	recursive
)

// Unpack converts v into a host value without converting any children:
//
//	basic types       bool, uint8, int16, uint16, int32, uint32, int64, uint64, Handle, float64 or string
//	`ay`              []byte
//	maybe             nil or the child *Value
//	array, tuple      []*Value
//	`a{..}`           map[string]*Value for string, object path and signature keys,
//	                  otherwise map[interface{}]*Value
//	dict entry        []*Value{key, value}
//	variant           the boxed *Value
//
// Duplicate dictionary keys resolve to the last entry.
func (v *Value) Unpack() interface{} { return v.unpack(shallow) }

// DeepUnpack is like Unpack, but also unpacks each child of v with Unpack.
// Arrays and tuples become []interface{} and dictionaries map to interface{}
// values. Boxed values stay boxed: the values of an `a{sv}` dictionary are the
// *Value each variant contains.
func (v *Value) DeepUnpack() interface{} { return v.unpack(deep) }

// RecursiveUnpack converts v and all of its descendants into host values,
// removing every level of boxing. The result does not retain enough type
// information to reconstruct the original signature.
func (v *Value) RecursiveUnpack() interface{} { return v.unpack(recursive) }

func (v *Value) unpack(level unpackLevel) interface{} {
	switch t := v.t.(type) {
	case *types.Basic:
		return v.scalar

	case *types.Array:
		if v.isByteArray() {
			return append([]byte{}, v.bytes...)
		}
		if e, ok := t.Elem.(*types.DictEntry); ok {
			return v.unpackDict(e.Key, level)
		}
		return v.unpackItems(level)

	case *types.Tuple, *types.DictEntry:
		return v.unpackItems(level)

	case *types.Maybe:
		if v.children.Len() == 0 {
			return nil
		}
		return unpackChild(v.children.Get(0), level)

	case *types.Variant:
		boxed := v.children.Get(0)
		if level == recursive {
			return boxed.unpack(recursive)
		}
		return boxed
	}
	return nil
}

// unpackChild unpacks a child of a container which is being unpacked at level.
func unpackChild(child *Value, level unpackLevel) interface{} {
	switch level {
	case shallow:
		return child
	case deep:
		return child.unpack(shallow)
	default:
		return child.unpack(recursive)
	}
}

func (v *Value) unpackItems(level unpackLevel) interface{} {
	if level == shallow {
		items := make([]*Value, 0, v.children.Len())
		v.children.Range(func(i int, child *Value) bool {
			items = append(items, child)
			return true
		})
		return items
	}
	items := make([]interface{}, 0, v.children.Len())
	v.children.Range(func(i int, child *Value) bool {
		items = append(items, unpackChild(child, level))
		return true
	})
	return items
}

func (v *Value) unpackDict(key *types.Basic, level unpackLevel) interface{} {
	n := v.children.Len()
	switch {
	case key.Kind.IsStringLike() && level == shallow:
		m := make(map[string]*Value, n)
		v.children.Range(func(i int, entry *Value) bool {
			m[entry.children.Get(0).Str()] = entry.children.Get(1)
			return true
		})
		return m

	case key.Kind.IsStringLike():
		m := make(map[string]interface{}, n)
		v.children.Range(func(i int, entry *Value) bool {
			m[entry.children.Get(0).Str()] = unpackChild(entry.children.Get(1), level)
			return true
		})
		return m

	case level == shallow:
		m := make(map[interface{}]*Value, n)
		v.children.Range(func(i int, entry *Value) bool {
			m[entry.children.Get(0).scalar] = entry.children.Get(1)
			return true
		})
		return m

	default:
		m := make(map[interface{}]interface{}, n)
		v.children.Range(func(i int, entry *Value) bool {
			m[entry.children.Get(0).scalar] = unpackChild(entry.children.Get(1), level)
			return true
		})
		return m
	}
}
