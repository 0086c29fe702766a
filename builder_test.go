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
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wdamron/variant"
	. "github.com/wdamron/variant/construct"
	"github.com/wdamron/variant/types"
)

func TestBuilderInfersElementType(t *testing.T) {
	b, err := variant.NewBuilder(T("a*"))
	require.NoError(t, err)

	require.NoError(t, b.AddValue(Int32(1)))
	err = b.AddValue(Str("x"))
	var mismatch *variant.TypeMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "i", types.TypeString(mismatch.Expected))
	assert.Equal(t, "s", types.TypeString(mismatch.Actual))
	require.NoError(t, b.AddValue(Int32(2)))

	v, err := b.End()
	require.NoError(t, err)
	assert.Equal(t, "ai", v.TypeString())
	assert.Equal(t, []interface{}{int32(1), int32(2)}, v.RecursiveUnpack())
}

func TestBuilderTupleArity(t *testing.T) {
	b, err := variant.NewBuilder(T("(is)"))
	require.NoError(t, err)

	err = b.AddValue(Str("first"))
	assert.ErrorIs(t, err, variant.ErrTypeMismatch)

	require.NoError(t, b.AddValue(Int32(1)))
	_, err = b.End()
	var arity *variant.ArityError
	require.ErrorAs(t, err, &arity)
	assert.Equal(t, 2, arity.Want)
	assert.Equal(t, 1, arity.Got)

	require.NoError(t, b.AddValue(Str("a")))
	err = b.AddValue(Str("b"))
	assert.ErrorIs(t, err, variant.ErrArityMismatch)

	v, err := b.End()
	require.NoError(t, err)
	assert.Equal(t, "(1, 'a')", v.String())
}

func TestBuilderIndefiniteTargets(t *testing.T) {
	for _, sig := range []string{"a*", "m?", "a{?*}"} {
		b, err := variant.NewBuilder(T(sig))
		require.NoError(t, err, sig)
		_, err = b.End()
		assert.ErrorIs(t, err, variant.ErrUnresolvedIndefiniteType, sig)
	}

	b, err := variant.NewBuilder(T("r"))
	require.NoError(t, err)
	require.NoError(t, b.AddValue(Int32(1)))
	require.NoError(t, b.AddValue(Str("a")))
	v, err := b.End()
	require.NoError(t, err)
	assert.Equal(t, "(is)", v.TypeString())

	b, err = variant.NewBuilder(T("(*?)"))
	require.NoError(t, err)
	require.NoError(t, b.AddValue(Array(Str("a"))))
	require.NoError(t, b.AddValue(Bool(true)))
	v, err = b.End()
	require.NoError(t, err)
	assert.Equal(t, "(asb)", v.TypeString())
}

func TestBuilderTargets(t *testing.T) {
	_, err := variant.NewBuilder(T("i"))
	assert.ErrorIs(t, err, variant.ErrNotContainer)
	_, err = variant.NewBuilder(T("*"))
	assert.ErrorIs(t, err, variant.ErrNotContainer)
	_, err = variant.NewBuilder(nil)
	assert.ErrorIs(t, err, types.ErrNilType)

	b, err := variant.NewBuilder(T("v"))
	require.NoError(t, err)
	require.NoError(t, b.AddValue(Int32(1)))
	assert.ErrorIs(t, b.AddValue(Int32(2)), variant.ErrArityMismatch)
	v, err := b.End()
	require.NoError(t, err)
	assert.Equal(t, "<1>", v.String())

	b, err = variant.NewBuilder(T("mi"))
	require.NoError(t, err)
	nothing, err := b.End()
	require.NoError(t, err)
	assert.Equal(t, "@mi nothing", nothing.Print(true))
}

func TestBuilderDictEntryKey(t *testing.T) {
	b, err := variant.NewBuilder(T("{?*}"))
	require.NoError(t, err)

	assert.ErrorIs(t, b.AddValue(Array(Int32(1))), variant.ErrNonBasicDictKey)
	assert.ErrorIs(t, b.Open(T("ai")), variant.ErrNonBasicDictKey)

	require.NoError(t, b.AddValue(Str("k")))
	require.NoError(t, b.Open(T("ai")))
	require.NoError(t, b.AddValue(Int32(1)))
	require.NoError(t, b.Close())

	v, err := b.End()
	require.NoError(t, err)
	assert.Equal(t, "{sai}", v.TypeString())
	assert.Equal(t, "{'k', [1]}", v.String())
}

func TestBuilderOpenClose(t *testing.T) {
	b, err := variant.NewBuilder(T("a{sv}"))
	require.NoError(t, err)

	assert.ErrorIs(t, b.Close(), variant.ErrNoOpenContainer)
	assert.ErrorIs(t, b.Open(T("i")), variant.ErrNotContainer)
	assert.ErrorIs(t, b.Open(T("{si}")), variant.ErrTypeMismatch)

	require.NoError(t, b.Open(T("{sv}")))
	require.NoError(t, b.AddValue(Str("b")))

	// An incomplete entry cannot be closed, and stays open.
	assert.ErrorIs(t, b.Close(), variant.ErrArityMismatch)
	_, err = b.End()
	assert.ErrorIs(t, err, variant.ErrUnclosedContainer)

	require.NoError(t, b.AddValue(Box(Int32(2))))
	require.NoError(t, b.Close())

	require.NoError(t, b.Open(T("{sv}")))
	require.NoError(t, b.AddValue(Str("a")))
	require.NoError(t, b.Open(T("v")))
	require.NoError(t, b.AddValue(Str("x")))
	require.NoError(t, b.Close())
	require.NoError(t, b.Close())

	v, err := b.End()
	require.NoError(t, err)
	assert.Equal(t, "a{sv}", v.TypeString())
	assert.Equal(t, "{'b': <2>, 'a': <'x'>}", v.String())
}

func TestBuilderNestedInference(t *testing.T) {
	b, err := variant.NewBuilder(T("aa*"))
	require.NoError(t, err)

	require.NoError(t, b.Open(T("a*")))
	require.NoError(t, b.AddValue(Int32(1)))
	require.NoError(t, b.Close())

	// The outer element type is now `ai`.
	assert.ErrorIs(t, b.Open(T("a*")), variant.ErrTypeMismatch)
	assert.ErrorIs(t, b.AddValue(Array(Str("x"))), variant.ErrTypeMismatch)
	require.NoError(t, b.Open(T("ai")))
	require.NoError(t, b.Close())

	v, err := b.End()
	require.NoError(t, err)
	assert.Equal(t, "aai", v.TypeString())
	assert.Equal(t, "[[1], []]", v.String())
}

func TestBuilderFinalized(t *testing.T) {
	b, err := variant.NewBuilder(T("as"))
	require.NoError(t, err)
	require.NoError(t, b.AddValue(Str("a")))
	_, err = b.End()
	require.NoError(t, err)

	assert.ErrorIs(t, b.AddValue(Str("b")), variant.ErrBuilderFinalized)
	assert.ErrorIs(t, b.Open(T("as")), variant.ErrBuilderFinalized)
	assert.ErrorIs(t, b.Close(), variant.ErrBuilderFinalized)
	_, err = b.End()
	assert.ErrorIs(t, err, variant.ErrBuilderFinalized)
}

func TestBuilderDepthLimit(t *testing.T) {
	b, err := variant.NewBuilder(T("v"))
	require.NoError(t, err)
	for i := 1; i < types.MaxDepth; i++ {
		require.NoError(t, b.Open(T("v")), "depth %d", i+1)
	}
	assert.ErrorIs(t, b.Open(T("v")), variant.ErrDepthExceeded)
}

func TestBuilderLogging(t *testing.T) {
	var buf bytes.Buffer
	variant.SetLogger(log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel}))
	defer variant.SetLogger(nil)

	b, err := variant.NewBuilder(T("a*"))
	require.NoError(t, err)
	require.NoError(t, b.AddValue(Str("a")))
	_, err = b.End()
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "inferred array element type")
	assert.Contains(t, buf.String(), "finalized builder")
}
