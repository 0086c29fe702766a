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
	"github.com/benbjohnson/immutable"

	"github.com/wdamron/variant/types"
)

var emptyMap = immutable.NewSortedMap(nil)

var vardictEntryType = types.VardictType.Elem.(*types.DictEntry)

// Dict is a mutable view of a vardict (`a{sv}`). Values are stored unboxed and
// are boxed into variants when the dict is frozen by End.
//
// A Dict is not safe for concurrent use.
type Dict struct {
	m *immutable.SortedMap
}

// NewDict creates a dict holding the entries of from, which must be nil or a
// value of type `a{sv}`. If from holds duplicate keys, the last entry wins.
func NewDict(from *Value) (*Dict, error) {
	d := &Dict{m: emptyMap}
	if from == nil {
		return d, nil
	}
	if !types.Equal(from.t, types.VardictType) {
		return nil, mismatch("dict", types.VardictType, from.t)
	}
	from.children.Range(func(i int, entry *Value) bool {
		d.m = d.m.Set(entry.children.Get(0).Str(), entry.children.Get(1).Unbox())
		return true
	})
	return d, nil
}

// Insert sets the value for key, replacing any existing value.
func (d *Dict) Insert(key string, v *Value) error {
	if v == nil {
		return ErrNilValue
	}
	// array, dict entry and variant
	if v.depth+3 > types.MaxDepth {
		return ErrDepthExceeded
	}
	d.m = d.m.Set(key, v)
	return nil
}

// Lookup returns the value for key, or nil if the key is absent. If expected is
// non-nil and the value's type is not a subtype of expected, an error matching
// ErrTypeMismatch is returned.
func (d *Dict) Lookup(key string, expected types.Type) (*Value, error) {
	found, ok := d.m.Get(key)
	if !ok {
		return nil, nil
	}
	v := found.(*Value)
	if expected != nil && !types.IsSubtypeOf(v.t, expected) {
		return nil, mismatch("dict lookup", expected, v.t)
	}
	return v, nil
}

// Remove deletes key, reporting whether it was present.
func (d *Dict) Remove(key string) bool {
	if _, ok := d.m.Get(key); !ok {
		return false
	}
	d.m = d.m.Delete(key)
	return true
}

func (d *Dict) Contains(key string) bool {
	_, ok := d.m.Get(key)
	return ok
}

func (d *Dict) Len() int { return d.m.Len() }

// Clear removes all entries.
func (d *Dict) Clear() { d.m = emptyMap }

// End returns the entries as an `a{sv}` value, ordered by key, and clears the dict.
func (d *Dict) End() *Value {
	entries := make([]*Value, 0, d.m.Len())
	iter := d.m.Iterator()
	for !iter.Done() {
		k, v := iter.Next()
		// Insert has checked the depth.
		entry, _ := newContainer(vardictEntryType, []*Value{NewString(k.(string)), MustVariant(v.(*Value))})
		entries = append(entries, entry)
	}
	d.Clear()
	dict, _ := newContainer(types.VardictType, entries)
	Logger().Debug("froze dict", "entries", len(entries))
	return dict
}
