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

package variant_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wdamron/variant"
	. "github.com/wdamron/variant/construct"
)

func TestPrint(t *testing.T) {
	for _, tc := range []struct {
		v         *variant.Value
		plain     string
		annotated string
	}{
		{Bool(true), "true", "true"},
		{Byte(5), "0x05", "byte 0x05"},
		{variant.NewInt16(-3), "-3", "int16 -3"},
		{Int32(5), "5", "5"},
		{Uint32(5), "5", "uint32 5"},
		{Int64(-1), "-1", "int64 -1"},
		{variant.NewUint64(1), "1", "uint64 1"},
		{variant.NewHandle(0), "0", "handle 0"},
		{Double(1), "1.0", "1.0"},
		{Double(0.25), "0.25", "0.25"},
		{Double(math.Inf(-1)), "-Inf", "-Inf"},
		{Str("plain"), "'plain'", "'plain'"},
		{Str("it's"), `"it's"`, `"it's"`},
		{Str(`a'b"c`), `'a\'b"c'`, `'a\'b"c'`},
		{Str("tab\there\n"), `'tab\there\n'`, `'tab\there\n'`},
		{Str("\x01"), `'\u0001'`, `'\u0001'`},
		{Path("/a/b"), "'/a/b'", "objectpath '/a/b'"},

		{EmptyArray(T("s")), "[]", "@as []"},
		{EmptyArray(T("{sv}")), "{}", "@a{sv} {}"},
		{Array(variant.NewInt16(1), variant.NewInt16(2)), "[1, 2]", "[int16 1, 2]"},
		{Array(Str("a"), Str("b")), "['a', 'b']", "['a', 'b']"},
		{variant.NewBytestring([]byte("hi\x00")), "b'hi'", "b'hi'"},
		{variant.NewBytestring([]byte{1, 2}), "[0x01, 0x02]", "[byte 0x01, 0x02]"},

		{Just(Int32(3)), "just 3", "just 3"},
		{Just(Uint32(3)), "just 3", "just uint32 3"},
		{Nothing(T("i")), "nothing", "@mi nothing"},

		{Tuple(), "()", "()"},
		{Tuple(Int32(1)), "(1,)", "(1,)"},
		{Tuple(Int32(1), Str("a")), "(1, 'a')", "(1, 'a')"},
		{DictEntry(Int32(1), Str("a")), "{1, 'a'}", "{1, 'a'}"},

		{Box(variant.NewInt16(3)), "<int16 3>", "<int16 3>"},
		{Box(EmptyArray(T("s"))), "<@as []>", "<@as []>"},
		{
			Vardict(map[string]*variant.Value{"b": Str("x"), "a": Int32(1)}),
			"{'a': <1>, 'b': <'x'>}",
			"{'a': <1>, 'b': <'x'>}",
		},
	} {
		assert.Equal(t, tc.plain, tc.v.String(), tc.v.TypeString())
		assert.Equal(t, tc.annotated, tc.v.Print(true), tc.v.TypeString())
	}
}
