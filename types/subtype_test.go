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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var subtypeSigs = []string{
	"i", "s", "?", "*", "r", "v", "()", "(i)", "(ii)", "(?i)", "(*)", "ai", "as",
	"a?", "a*", "a(ii)", "ar", "mi", "m*", "{si}", "{?i}", "{s*}", "{?*}",
	"a{sv}", "a{?*}", "a{s*}", "aai", "aa*", "(ai)", "(a*)",
}

func TestWildcardAbsorption(t *testing.T) {
	assert.True(t, IsSubtypeOf(Int32Type, AnyBasicType))
	assert.True(t, IsSubtypeOf(NewArray(Int32Type), NewArray(AnyType)))
	assert.True(t, IsSubtypeOf(UnitType, AnyTupleType))
	assert.True(t, IsSubtypeOf(AnyBasicType, AnyBasicType))
	assert.True(t, IsSubtypeOf(AnyTupleType, AnyTupleType))
	assert.True(t, IsSubtypeOf(AnyBasicType, AnyType))
	assert.True(t, IsSubtypeOf(AnyTupleType, AnyType))
	assert.True(t, IsSubtypeOf(MustParse("a{sv}"), MustParse("a{?*}")))
	assert.True(t, IsSubtypeOf(MustParse("(i(sv))"), MustParse("(ir)")))
	assert.True(t, IsSubtypeOf(MustParse("mv"), MustParse("m*")))
}

func TestSubtypeRejects(t *testing.T) {
	cases := [][2]string{
		{"ai", "as"},
		{"(i)", "(ii)"},
		{"(ii)", "(i)"},
		{"i", "r"},
		{"ai", "?"},
		{"*", "i"},
		{"?", "i"},
		{"r", "()"},
		{"a*", "ai"},
		{"v", "?"},
		{"v", "r"},
		{"{sv}", "(sv)"},
		{"mi", "ai"},
		{"a{sv}", "a{?s}"},
	}
	for _, c := range cases {
		assert.False(t, IsSubtypeOf(MustParse(c[0]), MustParse(c[1])), "%s <: %s", c[0], c[1])
	}
}

func TestSubtypeReflexive(t *testing.T) {
	for _, sig := range subtypeSigs {
		typ := MustParse(sig)
		assert.True(t, IsSubtypeOf(typ, typ), sig)
		assert.True(t, Equal(typ, MustParse(sig)), sig)
	}
}

func TestSubtypeTransitive(t *testing.T) {
	ts := make([]Type, len(subtypeSigs))
	for i, sig := range subtypeSigs {
		ts[i] = MustParse(sig)
	}
	for _, a := range ts {
		for _, b := range ts {
			if !IsSubtypeOf(a, b) {
				continue
			}
			for _, c := range ts {
				if IsSubtypeOf(b, c) && !IsSubtypeOf(a, c) {
					t.Fatalf("%s <: %s <: %s, but not %s <: %s",
						TypeString(a), TypeString(b), TypeString(c), TypeString(a), TypeString(c))
				}
			}
		}
	}
}

func TestEqualIsStricterThanSubtype(t *testing.T) {
	assert.True(t, IsSubtypeOf(Int32Type, AnyBasicType))
	assert.False(t, Equal(Int32Type, AnyBasicType))
	assert.True(t, IsSubtypeOf(MustParse("ai"), MustParse("a*")))
	assert.False(t, Equal(MustParse("ai"), MustParse("a*")))
	assert.False(t, Equal(UnitType, AnyTupleType))
	assert.True(t, Equal(MustParse("(ii)"), NewTuple(Int32Type, Int32Type)))
}
