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

// Handle is an index into an out-of-band array of file descriptors: `h`
type Handle int32

// Value is an immutable value paired with its definite type.
//
// Values may be shared between goroutines and between parent containers.
type Value struct {
	t types.Type
	// bool, uint8, int16, uint16, int32, uint32, int64, uint64, Handle, float64 or string
	scalar interface{}
	// contents of `ay`
	bytes []byte
	// array and tuple items, the key and value of a dict entry, the child of a
	// non-empty maybe, or the boxed value of a variant
	children valueList
	depth    int
}

func NewBoolean(b bool) *Value   { return &Value{t: types.BooleanType, scalar: b} }
func NewByte(b uint8) *Value     { return &Value{t: types.ByteType, scalar: b} }
func NewInt16(n int16) *Value    { return &Value{t: types.Int16Type, scalar: n} }
func NewUint16(n uint16) *Value  { return &Value{t: types.Uint16Type, scalar: n} }
func NewInt32(n int32) *Value    { return &Value{t: types.Int32Type, scalar: n} }
func NewUint32(n uint32) *Value  { return &Value{t: types.Uint32Type, scalar: n} }
func NewInt64(n int64) *Value    { return &Value{t: types.Int64Type, scalar: n} }
func NewUint64(n uint64) *Value  { return &Value{t: types.Uint64Type, scalar: n} }
func NewHandle(h Handle) *Value  { return &Value{t: types.HandleType, scalar: h} }
func NewDouble(f float64) *Value { return &Value{t: types.DoubleType, scalar: f} }
func NewString(s string) *Value  { return &Value{t: types.StringType, scalar: s} }

func newObjectPath(s string) *Value { return &Value{t: types.ObjectPathType, scalar: s} }

func newSignatureStr(s string) *Value { return &Value{t: types.SignatureType, scalar: s} }

// NewObjectPath creates an object path value. The path must satisfy types.IsObjectPath.
func NewObjectPath(path string) (*Value, error) {
	if !types.IsObjectPath(path) {
		return nil, ErrInvalidObjectPath
	}
	return newObjectPath(path), nil
}

// NewSignature creates a signature value. The string must satisfy types.IsSignature.
func NewSignature(sig string) (*Value, error) {
	if !types.IsSignature(sig) {
		return nil, ErrInvalidSignature
	}
	return newSignatureStr(sig), nil
}

// NewBytestring creates a byte array (`ay`) holding a copy of b.
func NewBytestring(b []byte) *Value {
	return newByteArray(append([]byte(nil), b...))
}

func newByteArray(b []byte) *Value {
	return &Value{t: types.ByteArrayType, bytes: b, depth: 1}
}

// NewStrv creates a string array (`as`).
func NewStrv(strv []string) *Value {
	children := make([]*Value, len(strv))
	for i, s := range strv {
		children[i] = NewString(s)
	}
	return &Value{t: strvType, children: newValueList(children), depth: 1}
}

// NewObjv creates an object path array (`ao`).
func NewObjv(paths []string) (*Value, error) {
	children := make([]*Value, len(paths))
	for i, p := range paths {
		v, err := NewObjectPath(p)
		if err != nil {
			return nil, err
		}
		children[i] = v
	}
	return &Value{t: objvType, children: newValueList(children), depth: 1}, nil
}

var (
	strvType = types.NewArray(types.StringType)
	objvType = types.NewArray(types.ObjectPathType)
)

// NewArray creates an array of children. If elemType is nil, or indefinite, the
// element type is taken from the first child; every child must then have exactly
// that type. An empty array requires a definite elemType.
func NewArray(elemType types.Type, children ...*Value) (*Value, error) {
	elem, err := arrayElemType(elemType, children)
	if err != nil {
		return nil, err
	}
	return newArray(elem, children)
}

func arrayElemType(elemType types.Type, children []*Value) (types.Type, error) {
	if len(children) == 0 {
		if elemType == nil || !elemType.IsDefinite() {
			return nil, ErrUnresolvedIndefiniteType
		}
		return elemType, types.Check(elemType)
	}
	first := children[0]
	if first == nil {
		return nil, ErrNilValue
	}
	if elemType != nil && !types.IsSubtypeOf(first.t, elemType) {
		return nil, mismatch("array", elemType, first.t)
	}
	return first.t, nil
}

// newArray expects a definite element type and checks each child against it.
func newArray(elem types.Type, children []*Value) (*Value, error) {
	for _, child := range children {
		if child == nil {
			return nil, ErrNilValue
		}
		if !types.Equal(child.t, elem) {
			return nil, mismatch("array", elem, child.t)
		}
	}
	if b, ok := elem.(*types.Basic); ok && b.Kind == types.KindByte {
		bytes := make([]byte, len(children))
		for i, child := range children {
			bytes[i] = child.scalar.(uint8)
		}
		return newByteArray(bytes), nil
	}
	return newContainer(types.NewArray(elem), children)
}

// NewMaybe creates a maybe value. With a nil child the result is Nothing of type
// `m<childType>`, which must then be definite. With a child, childType may be nil
// or any supertype of the child's type.
func NewMaybe(childType types.Type, child *Value) (*Value, error) {
	if child == nil {
		if childType == nil || !childType.IsDefinite() {
			return nil, ErrUnresolvedIndefiniteType
		}
		if err := types.Check(childType); err != nil {
			return nil, err
		}
		return newContainer(types.NewMaybe(childType), nil)
	}
	if childType != nil && !types.IsSubtypeOf(child.t, childType) {
		return nil, mismatch("maybe", childType, child.t)
	}
	return newContainer(types.NewMaybe(child.t), []*Value{child})
}

// NewTuple creates a tuple of children. With no children the result is the unit tuple `()`.
func NewTuple(children ...*Value) (*Value, error) {
	if len(children) == 0 {
		return newContainer(types.UnitType, nil)
	}
	items := make([]types.Type, len(children))
	for i, child := range children {
		if child == nil {
			return nil, ErrNilValue
		}
		items[i] = child.t
	}
	return newContainer(types.NewTuple(items...), children)
}

// NewDictEntry creates a dict entry. The key must be a basic value.
func NewDictEntry(key, value *Value) (*Value, error) {
	if key == nil || value == nil {
		return nil, ErrNilValue
	}
	k, ok := key.t.(*types.Basic)
	if !ok {
		return nil, ErrNonBasicDictKey
	}
	return newContainer(types.NewDictEntry(k, value.t), []*Value{key, value})
}

// NewVariant boxes child, erasing its type until it is unboxed.
func NewVariant(child *Value) (*Value, error) {
	if child == nil {
		return nil, ErrNilValue
	}
	return newContainer(types.VariantType, []*Value{child})
}

// MustVariant is like NewVariant but panics on error.
func MustVariant(child *Value) *Value {
	v, err := NewVariant(child)
	if err != nil {
		panic(err)
	}
	return v
}

func newContainer(t types.Type, children []*Value) (*Value, error) {
	depth := types.Depth(t)
	for _, child := range children {
		if d := child.depth + 1; d > depth {
			depth = d
		}
	}
	if depth > types.MaxDepth {
		return nil, ErrDepthExceeded
	}
	return &Value{t: t, children: newValueList(children), depth: depth}, nil
}

// Type returns the definite type of v.
func (v *Value) Type() types.Type { return v.t }

// TypeString returns the signature of v's type.
func (v *Value) TypeString() string { return types.TypeString(v.t) }

// IsOfType reports whether v's type is a subtype of t.
func (v *Value) IsOfType(t types.Type) bool { return types.IsSubtypeOf(v.t, t) }

// IsContainer reports whether v is an array, maybe, tuple, dict entry or variant.
func (v *Value) IsContainer() bool { return types.IsContainer(v.t) }

// Depth returns the container nesting of v, including boxed values.
func (v *Value) Depth() int { return v.depth }

// NChildren returns the number of children of a container value, or 0 for basic values.
func (v *Value) NChildren() int {
	if v.isByteArray() {
		return len(v.bytes)
	}
	return v.children.Len()
}

// ChildValue returns the i'th child of a container value, or nil if i is out of range.
// The children of a byte array are byte values.
func (v *Value) ChildValue(i int) *Value {
	if i < 0 || i >= v.NChildren() {
		return nil
	}
	if v.isByteArray() {
		return NewByte(v.bytes[i])
	}
	return v.children.Get(i)
}

func (v *Value) isByteArray() bool {
	a, ok := v.t.(*types.Array)
	if !ok {
		return false
	}
	b, ok := a.Elem.(*types.Basic)
	return ok && b.Kind == types.KindByte
}

// Str returns the contents of a string, object path or signature value, or "" for other types.
func (v *Value) Str() string {
	s, _ := v.scalar.(string)
	return s
}

// Bytes returns a copy of the contents of a byte array, or nil for other types.
func (v *Value) Bytes() []byte {
	if !v.isByteArray() {
		return nil
	}
	return append([]byte{}, v.bytes...)
}

// Strv returns the strings of an array of strings, object paths or signatures, or nil for other types.
func (v *Value) Strv() []string {
	a, ok := v.t.(*types.Array)
	if !ok {
		return nil
	}
	if b, ok := a.Elem.(*types.Basic); !ok || !b.Kind.IsStringLike() {
		return nil
	}
	strv := make([]string, 0, v.children.Len())
	v.children.Range(func(i int, child *Value) bool {
		strv = append(strv, child.Str())
		return true
	})
	return strv
}

// Maybe returns the child of a non-empty maybe value, or nil.
func (v *Value) Maybe() *Value {
	if _, ok := v.t.(*types.Maybe); !ok || v.children.Len() == 0 {
		return nil
	}
	return v.children.Get(0)
}

// Unbox returns the boxed value of a variant, or nil for other types.
func (v *Value) Unbox() *Value {
	if _, ok := v.t.(*types.Variant); !ok {
		return nil
	}
	return v.children.Get(0)
}

// LookupValue looks up key in a dictionary with string or object path keys
// (`a{s*}` or `a{o*}`). Variant values are unboxed. A missing key returns nil
// without an error; if expected is non-nil and the value's type is not a subtype
// of expected, an error matching ErrTypeMismatch is returned.
func (v *Value) LookupValue(key string, expected types.Type) (*Value, error) {
	if !isStringKeyedDict(v.t) {
		return nil, mismatch("lookup", types.MustParse("a{s*}"), v.t)
	}
	var found *Value
	v.children.Range(func(i int, entry *Value) bool {
		if entry.children.Get(0).Str() == key {
			found = entry.children.Get(1)
			return false
		}
		return true
	})
	if found == nil {
		return nil, nil
	}
	if inner := found.Unbox(); inner != nil {
		found = inner
	}
	if expected != nil && !types.IsSubtypeOf(found.t, expected) {
		return nil, mismatch("lookup", expected, found.t)
	}
	return found, nil
}

func isStringKeyedDict(t types.Type) bool {
	a, ok := t.(*types.Array)
	if !ok {
		return false
	}
	e, ok := a.Elem.(*types.DictEntry)
	return ok && (e.Key.Kind == types.KindString || e.Key.Kind == types.KindObjectPath)
}
