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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wdamron/variant"
	. "github.com/wdamron/variant/construct"
	"github.com/wdamron/variant/types"
)

func TestDict(t *testing.T) {
	d, err := variant.NewDict(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, d.Len())

	require.NoError(t, d.Insert("name", Str("Mario")))
	require.NoError(t, d.Insert("lives", Int32(3)))
	require.NoError(t, d.Insert("lives", Int32(4)))
	assert.Equal(t, 2, d.Len())
	assert.True(t, d.Contains("lives"))
	assert.False(t, d.Contains("coins"))

	lives, err := d.Lookup("lives", T("i"))
	require.NoError(t, err)
	assert.Equal(t, int32(4), lives.Unpack())

	anyLives, err := d.Lookup("lives", T("?"))
	require.NoError(t, err)
	assert.Same(t, lives, anyLives)

	_, err = d.Lookup("lives", T("s"))
	assert.ErrorIs(t, err, variant.ErrTypeMismatch)

	missing, err := d.Lookup("coins", T("i"))
	assert.NoError(t, err)
	assert.Nil(t, missing)

	assert.ErrorIs(t, d.Insert("nil", nil), variant.ErrNilValue)

	v := d.End()
	assert.Equal(t, "a{sv}", v.TypeString())
	assert.Equal(t, "{'lives': <4>, 'name': <'Mario'>}", v.String())
	assert.Equal(t, 0, d.Len())
}

func TestDictFromValue(t *testing.T) {
	from := Vardict(map[string]*variant.Value{
		"a": Int32(1),
		"b": Str("x"),
	})
	d, err := variant.NewDict(from)
	require.NoError(t, err)
	assert.Equal(t, 2, d.Len())

	b, err := d.Lookup("b", nil)
	require.NoError(t, err)
	assert.Equal(t, "s", b.TypeString())

	assert.True(t, d.Remove("a"))
	assert.False(t, d.Remove("a"))
	assert.True(t, variant.Equal(Vardict(map[string]*variant.Value{"b": Str("x")}), d.End()))

	// from is unchanged.
	assert.Equal(t, 2, from.NChildren())

	_, err = variant.NewDict(Array(Int32(1)))
	assert.ErrorIs(t, err, variant.ErrTypeMismatch)
	_, err = variant.NewDict(EmptyArray(T("{ss}")))
	assert.ErrorIs(t, err, variant.ErrTypeMismatch)
}

func TestDictClear(t *testing.T) {
	d, err := variant.NewDict(nil)
	require.NoError(t, err)
	require.NoError(t, d.Insert("a", Bool(true)))
	d.Clear()
	assert.Equal(t, 0, d.Len())
	assert.Equal(t, "@a{sv} {}", d.End().Print(true))
}

func TestDictDepth(t *testing.T) {
	v := Int32(1)
	for i := 0; i < types.MaxDepth-3; i++ {
		v = Box(v)
	}
	d, err := variant.NewDict(nil)
	require.NoError(t, err)
	require.NoError(t, d.Insert("deep", v))
	assert.ErrorIs(t, d.Insert("deeper", Box(v)), variant.ErrDepthExceeded)
	assert.Equal(t, types.MaxDepth, d.End().Depth())
}
