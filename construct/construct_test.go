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

package construct_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/wdamron/variant/construct"
	"github.com/wdamron/variant/types"
)

func TestTypes(t *testing.T) {
	for _, tc := range []struct {
		t   types.Type
		sig string
	}{
		{TBasic(types.KindUint16), "q"},
		{TArray(TVariant()), "av"},
		{TMaybe(TAnyBasic()), "m?"},
		{TTuple(), "()"},
		{TTuple(TBasic(types.KindInt32), TAny(), TAnyTuple()), "(i*r)"},
		{TDictEntry(types.KindObjectPath, TArray(TBasic(types.KindString))), "{oas}"},
		{TDict(types.KindString, TVariant()), "a{sv}"},
	} {
		assert.Equal(t, tc.sig, types.TypeString(tc.t))
		assert.True(t, types.Equal(T(tc.sig), tc.t), tc.sig)
	}

	assert.Panics(t, func() { T("a{") })
}

func TestValues(t *testing.T) {
	v := Tuple(
		Str("s"),
		Array(Double(1), Double(2)),
		Just(Box(Path("/x"))),
		DictEntry(Byte(1), Int64(2)),
		Vardict(nil),
	)
	assert.Equal(t, "(sadmv{yx}a{sv})", v.TypeString())
	assert.Equal(t, "('s', [1.0, 2.0], just <objectpath '/x'>, {0x01, 2}, {})", v.String())

	assert.Panics(t, func() { Path("x") })
	assert.Panics(t, func() { Array() })
	assert.Panics(t, func() { Array(Int32(1), Uint32(1)) })
	assert.Panics(t, func() { Nothing(TAny()) })
	assert.NotPanics(t, func() { EmptyArray(TBasic(types.KindBoolean)) })
}
