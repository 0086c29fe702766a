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
	"fmt"
	"math"
	"reflect"
	"sort"

	"github.com/wdamron/variant/types"
)

// New parses sig and packs native into a value of that type. See Pack.
func New(sig string, native interface{}) (*Value, error) {
	t, err := types.Parse(sig)
	if err != nil {
		return nil, err
	}
	return Pack(t, native)
}

// Pack converts a host value into a value of the definite type t.
//
// Basic types accept Go values of the matching reflect kind: bools, strings, and
// any integer or float type for numbers. Integers are range-checked against the
// width of t; floats packed into integer types must be integral. `ay` accepts a
// []byte or a string. Arrays and tuples accept slices, dictionaries accept maps
// (the entries are ordered by key), dict entries accept a two-element slice, and
// a maybe accepts nil for Nothing. Variants require a *Value, which is boxed.
//
// A *Value may be given for any part of t whose type it equals exactly.
func Pack(t types.Type, native interface{}) (*Value, error) {
	if t == nil {
		return nil, types.ErrNilType
	}
	if !t.IsDefinite() {
		return nil, ErrIndefiniteType
	}
	if err := types.Check(t); err != nil {
		return nil, err
	}
	return pack(t, native)
}

func pack(t types.Type, native interface{}) (*Value, error) {
	if v, ok := native.(*Value); ok {
		if v == nil {
			return nil, ErrNilValue
		}
		if types.Equal(v.t, t) {
			return v, nil
		}
	}

	switch t := t.(type) {
	case *types.Variant:
		v, ok := native.(*Value)
		if !ok {
			return nil, packMismatch(t, native)
		}
		return NewVariant(v)

	case *types.Maybe:
		if native == nil {
			return newContainer(t, nil)
		}
		child, err := pack(t.Elem, native)
		if err != nil {
			return nil, err
		}
		return newContainer(t, []*Value{child})
	}

	if v, ok := native.(*Value); ok {
		return nil, mismatch("pack", t, v.t)
	}

	switch t := t.(type) {
	case *types.Basic:
		return packBasic(t.Kind, native)
	case *types.Array:
		return packArray(t, native)
	case *types.Tuple:
		return packTuple(t, native)
	case *types.DictEntry:
		return packDictEntry(t, native)
	}
	return nil, packMismatch(t, native)
}

func packMismatch(t types.Type, native interface{}) error {
	return mismatch(fmt.Sprintf("pack %T", native), t, nil)
}

func packBasic(k types.Kind, native interface{}) (*Value, error) {
	rv := reflect.ValueOf(native)
	switch k {
	case types.KindBoolean:
		if rv.Kind() == reflect.Bool {
			return NewBoolean(rv.Bool()), nil
		}

	case types.KindString:
		if rv.Kind() == reflect.String {
			return NewString(rv.String()), nil
		}

	case types.KindObjectPath:
		if rv.Kind() == reflect.String {
			return NewObjectPath(rv.String())
		}

	case types.KindSignature:
		if rv.Kind() == reflect.String {
			return NewSignature(rv.String())
		}

	case types.KindDouble:
		switch rv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return NewDouble(float64(rv.Int())), nil
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			return NewDouble(float64(rv.Uint())), nil
		case reflect.Float32, reflect.Float64:
			return NewDouble(rv.Float()), nil
		}

	default:
		return packInteger(k, rv, native)
	}
	return nil, packMismatch(types.BasicType(k), native)
}

func packInteger(k types.Kind, rv reflect.Value, native interface{}) (*Value, error) {
	min, max, ok := k.Range()
	if !ok {
		return nil, packMismatch(types.BasicType(k), native)
	}
	var (
		i int64
		u uint64
	)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i = rv.Int()
		if i < min || (i > 0 && uint64(i) > max) {
			return nil, outOfRange(k, native)
		}
		u = uint64(i)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u = rv.Uint()
		if u > max {
			return nil, outOfRange(k, native)
		}
		i = int64(u)

	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if f != math.Trunc(f) {
			return nil, packMismatch(types.BasicType(k), native)
		}
		if f < float64(min) || f >= float64(max)+1 {
			return nil, outOfRange(k, native)
		}
		if f < 0 {
			i = int64(f)
			u = uint64(i)
		} else {
			u = uint64(f)
			i = int64(u)
		}

	default:
		return nil, packMismatch(types.BasicType(k), native)
	}

	switch k {
	case types.KindByte:
		return NewByte(uint8(u)), nil
	case types.KindInt16:
		return NewInt16(int16(i)), nil
	case types.KindUint16:
		return NewUint16(uint16(u)), nil
	case types.KindInt32:
		return NewInt32(int32(i)), nil
	case types.KindUint32:
		return NewUint32(uint32(u)), nil
	case types.KindInt64:
		return NewInt64(i), nil
	case types.KindUint64:
		return NewUint64(u), nil
	default: // handle
		return NewHandle(Handle(i)), nil
	}
}

func outOfRange(k types.Kind, native interface{}) error {
	return fmt.Errorf("%w: %v does not fit in %s", ErrOutOfRange, native, k.Name())
}

func packArray(t *types.Array, native interface{}) (*Value, error) {
	if b, ok := t.Elem.(*types.Basic); ok && b.Kind == types.KindByte {
		switch bs := native.(type) {
		case []byte:
			return NewBytestring(bs), nil
		case string:
			return newByteArray([]byte(bs)), nil
		}
	}

	rv := reflect.ValueOf(native)
	if e, ok := t.Elem.(*types.DictEntry); ok && rv.Kind() == reflect.Map {
		return packDict(t, e, rv)
	}
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, packMismatch(t, native)
	}

	children := make([]*Value, rv.Len())
	for i := range children {
		child, err := pack(t.Elem, rv.Index(i).Interface())
		if err != nil {
			return nil, err
		}
		children[i] = child
	}
	return newArray(t.Elem, children)
}

func packDict(t *types.Array, e *types.DictEntry, rv reflect.Value) (*Value, error) {
	entries := make([]*Value, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		key, err := pack(e.Key, iter.Key().Interface())
		if err != nil {
			return nil, err
		}
		value, err := pack(e.Value, iter.Value().Interface())
		if err != nil {
			return nil, err
		}
		entry, err := newContainer(e, []*Value{key, value})
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		return compareScalars(entries[i].children.Get(0).scalar, entries[j].children.Get(0).scalar) < 0
	})
	return newContainer(t, entries)
}

func packTuple(t *types.Tuple, native interface{}) (*Value, error) {
	rv := reflect.ValueOf(native)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, packMismatch(t, native)
	}
	if n := rv.Len(); n != t.Items.Len() {
		return nil, &ArityError{Type: t, Want: t.Items.Len(), Got: n}
	}
	children := make([]*Value, rv.Len())
	for i := range children {
		child, err := pack(t.Items.Get(i), rv.Index(i).Interface())
		if err != nil {
			return nil, err
		}
		children[i] = child
	}
	return newContainer(t, children)
}

func packDictEntry(t *types.DictEntry, native interface{}) (*Value, error) {
	rv := reflect.ValueOf(native)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, packMismatch(t, native)
	}
	if n := rv.Len(); n != 2 {
		return nil, &ArityError{Type: t, Want: 2, Got: n}
	}
	key, err := pack(t.Key, rv.Index(0).Interface())
	if err != nil {
		return nil, err
	}
	value, err := pack(t.Value, rv.Index(1).Interface())
	if err != nil {
		return nil, err
	}
	return newContainer(t, []*Value{key, value})
}
