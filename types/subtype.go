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

package types

// IsSubtypeOf reports whether t matches super, where wildcards in super absorb
// any type of the corresponding class:
//
//	`*` matches any type
//	`?` matches any basic type (including `?`)
//	`r` matches any tuple (including `r`)
//
// Containers of the same shape match if each of their children match.
// Wildcards in t are only matched by an equal or wider wildcard in super.
func IsSubtypeOf(t, super Type) bool {
	switch s := super.(type) {
	case *Any:
		return true

	case *Basic:
		if s.Kind == KindAnyBasic {
			_, ok := t.(*Basic)
			return ok
		}

	case *AnyTuple:
		switch t.(type) {
		case *Tuple, *AnyTuple:
			return true
		}
		return false

	case *Array:
		if a, ok := t.(*Array); ok {
			return IsSubtypeOf(a.Elem, s.Elem)
		}
		return false

	case *Maybe:
		if m, ok := t.(*Maybe); ok {
			return IsSubtypeOf(m.Elem, s.Elem)
		}
		return false

	case *Tuple:
		tt, ok := t.(*Tuple)
		if !ok || tt.Items.Len() != s.Items.Len() {
			return false
		}
		match := true
		tt.Items.Range(func(i int, item Type) bool {
			match = IsSubtypeOf(item, s.Items.Get(i))
			return match
		})
		return match

	case *DictEntry:
		if e, ok := t.(*DictEntry); ok {
			return IsSubtypeOf(e.Key, s.Key) && IsSubtypeOf(e.Value, s.Value)
		}
		return false
	}
	return Equal(t, super)
}

// Equal reports whether a and b are structurally identical. Wildcards are only
// equal to themselves.
func Equal(a, b Type) bool {
	switch a := a.(type) {
	case *Basic:
		bb, ok := b.(*Basic)
		return ok && a.Kind == bb.Kind

	case *Array:
		ba, ok := b.(*Array)
		return ok && Equal(a.Elem, ba.Elem)

	case *Maybe:
		bm, ok := b.(*Maybe)
		return ok && Equal(a.Elem, bm.Elem)

	case *Tuple:
		bt, ok := b.(*Tuple)
		if !ok || a.Items.Len() != bt.Items.Len() {
			return false
		}
		eq := true
		a.Items.Range(func(i int, item Type) bool {
			eq = Equal(item, bt.Items.Get(i))
			return eq
		})
		return eq

	case *DictEntry:
		be, ok := b.(*DictEntry)
		return ok && Equal(a.Key, be.Key) && Equal(a.Value, be.Value)

	case *Variant:
		_, ok := b.(*Variant)
		return ok

	case *AnyTuple:
		_, ok := b.(*AnyTuple)
		return ok

	case *Any:
		_, ok := b.(*Any)
		return ok
	}
	return false
}
