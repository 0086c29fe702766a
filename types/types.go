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

// types provides the type tree for variant signatures: parsing, printing,
// equality and the subtype relation.
package types

// MaxDepth is the maximum container nesting of a type or value. Arrays, maybes,
// tuples, dict entries, variants and the any-tuple wildcard each count as one level.
const MaxDepth = 64

// Type is the base interface for all types.
type Type interface {
	TypeName() string
	// IsDefinite is false if the type contains a wildcard (`?`, `r` or `*`).
	IsDefinite() bool
}

func (t *Basic) TypeName() string     { return "Basic" }
func (t *Array) TypeName() string     { return "Array" }
func (t *Maybe) TypeName() string     { return "Maybe" }
func (t *Tuple) TypeName() string     { return "Tuple" }
func (t *DictEntry) TypeName() string { return "DictEntry" }
func (t *Variant) TypeName() string   { return "Variant" }
func (t *AnyTuple) TypeName() string  { return "AnyTuple" }
func (t *Any) TypeName() string       { return "Any" }

func (t *Basic) IsDefinite() bool     { return t.Kind != KindAnyBasic }
func (t *Array) IsDefinite() bool     { return t.Elem.IsDefinite() }
func (t *Maybe) IsDefinite() bool     { return t.Elem.IsDefinite() }
func (t *DictEntry) IsDefinite() bool { return t.Key.IsDefinite() && t.Value.IsDefinite() }
func (t *Variant) IsDefinite() bool   { return true }
func (t *AnyTuple) IsDefinite() bool  { return false }
func (t *Any) IsDefinite() bool       { return false }

func (t *Tuple) IsDefinite() bool {
	definite := true
	t.Items.Range(func(i int, item Type) bool {
		definite = item.IsDefinite()
		return definite
	})
	return definite
}

// Basic type: `i`, `s`, etc. The basic wildcard `?` is a Basic with KindAnyBasic.
type Basic struct {
	Kind Kind
}

// Array type: `ai`, `a{sv}`
type Array struct {
	Elem Type
}

// Maybe type: `mi`
type Maybe struct {
	Elem Type
}

// Tuple type: `(isv)`. The unit tuple `()` has no items.
type Tuple struct {
	Items TypeList
}

// Dict entry type: `{sv}`. The key is always basic.
type DictEntry struct {
	Key   *Basic
	Value Type
}

// Boxed value of any type: `v`
type Variant struct{}

// Wildcard matching any tuple: `r`
type AnyTuple struct{}

// Wildcard matching any type: `*`
type Any struct{}

var (
	BooleanType    = &Basic{KindBoolean}
	ByteType       = &Basic{KindByte}
	Int16Type      = &Basic{KindInt16}
	Uint16Type     = &Basic{KindUint16}
	Int32Type      = &Basic{KindInt32}
	Uint32Type     = &Basic{KindUint32}
	Int64Type      = &Basic{KindInt64}
	Uint64Type     = &Basic{KindUint64}
	HandleType     = &Basic{KindHandle}
	DoubleType     = &Basic{KindDouble}
	StringType     = &Basic{KindString}
	ObjectPathType = &Basic{KindObjectPath}
	SignatureType  = &Basic{KindSignature}
	AnyBasicType   = &Basic{KindAnyBasic}

	VariantType  = &Variant{}
	AnyTupleType = &AnyTuple{}
	AnyType      = &Any{}
	UnitType     = &Tuple{Items: EmptyTypeList}

	ByteArrayType = &Array{Elem: ByteType}
	// Vardict: `a{sv}`
	VardictType = &Array{Elem: &DictEntry{Key: StringType, Value: VariantType}}
)

var basics = map[Kind]*Basic{
	KindBoolean:    BooleanType,
	KindByte:       ByteType,
	KindInt16:      Int16Type,
	KindUint16:     Uint16Type,
	KindInt32:      Int32Type,
	KindUint32:     Uint32Type,
	KindInt64:      Int64Type,
	KindUint64:     Uint64Type,
	KindHandle:     HandleType,
	KindDouble:     DoubleType,
	KindString:     StringType,
	KindObjectPath: ObjectPathType,
	KindSignature:  SignatureType,
	KindAnyBasic:   AnyBasicType,
}

// BasicType returns the shared instance for a basic kind, or nil if k is not a basic kind.
func BasicType(k Kind) *Basic { return basics[k] }

func NewArray(elem Type) *Array { return &Array{Elem: elem} }

func NewMaybe(elem Type) *Maybe { return &Maybe{Elem: elem} }

func NewTuple(items ...Type) *Tuple {
	if len(items) == 0 {
		return UnitType
	}
	b := NewTypeListBuilder()
	for _, item := range items {
		b.Append(item)
	}
	return &Tuple{Items: b.Build()}
}

func NewDictEntry(key *Basic, value Type) *DictEntry {
	return &DictEntry{Key: key, Value: value}
}

// IsBasic reports whether t is a basic type, including the basic wildcard.
func IsBasic(t Type) bool {
	_, ok := t.(*Basic)
	return ok
}

// IsContainer reports whether every definite subtype of t is a container.
// Basic types and `*` are not containers.
func IsContainer(t Type) bool {
	switch t.(type) {
	case *Array, *Maybe, *Tuple, *DictEntry, *Variant, *AnyTuple:
		return true
	}
	return false
}

// IsDictArray reports whether t is an array of dict entries: `a{..}`.
func IsDictArray(t Type) bool {
	if a, ok := t.(*Array); ok {
		_, ok = a.Elem.(*DictEntry)
		return ok
	}
	return false
}

// Element returns the element type of an array or maybe type, or nil.
func Element(t Type) Type {
	switch t := t.(type) {
	case *Array:
		return t.Elem
	case *Maybe:
		return t.Elem
	}
	return nil
}

// Depth returns the container nesting of t.
func Depth(t Type) int {
	switch t := t.(type) {
	case *Array:
		return 1 + Depth(t.Elem)
	case *Maybe:
		return 1 + Depth(t.Elem)
	case *Tuple:
		max := 0
		t.Items.Range(func(i int, item Type) bool {
			if d := Depth(item); d > max {
				max = d
			}
			return true
		})
		return 1 + max
	case *DictEntry:
		return 1 + Depth(t.Value)
	case *Variant, *AnyTuple:
		return 1
	default:
		return 0
	}
}

// Check validates a type tree which was not produced by the parser: nodes must be
// non-nil, dict entry keys must be basic and the nesting must not exceed MaxDepth.
func Check(t Type) error {
	if err := check(t); err != nil {
		return err
	}
	if Depth(t) > MaxDepth {
		return ErrDepthExceeded
	}
	return nil
}

func check(t Type) error {
	switch t := t.(type) {
	case nil:
		return ErrNilType
	case *Basic:
		if t == nil || !t.Kind.Valid() {
			return ErrMalformedSignature
		}
	case *Array:
		return check(t.Elem)
	case *Maybe:
		return check(t.Elem)
	case *Tuple:
		var err error
		t.Items.Range(func(i int, item Type) bool {
			err = check(item)
			return err == nil
		})
		return err
	case *DictEntry:
		if t.Key == nil {
			return ErrNonBasicDictKey
		}
		if err := check(t.Key); err != nil {
			return err
		}
		return check(t.Value)
	}
	return nil
}
