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

// Kind identifies a basic (non-container) type. The value of each kind is the
// character which represents it within a signature.
type Kind byte

const (
	KindBoolean    Kind = 'b'
	KindByte       Kind = 'y'
	KindInt16      Kind = 'n'
	KindUint16     Kind = 'q'
	KindInt32      Kind = 'i'
	KindUint32     Kind = 'u'
	KindInt64      Kind = 'x'
	KindUint64     Kind = 't'
	KindHandle     Kind = 'h'
	KindDouble     Kind = 'd'
	KindString     Kind = 's'
	KindObjectPath Kind = 'o'
	KindSignature  Kind = 'g'
	// Matches any basic type. Never instantiated as a value.
	KindAnyBasic Kind = '?'
)

var kindNames = [...]struct {
	kind Kind
	name string
}{
	{KindBoolean, "boolean"},
	{KindByte, "byte"},
	{KindInt16, "int16"},
	{KindUint16, "uint16"},
	{KindInt32, "int32"},
	{KindUint32, "uint32"},
	{KindInt64, "int64"},
	{KindUint64, "uint64"},
	{KindHandle, "handle"},
	{KindDouble, "double"},
	{KindString, "string"},
	{KindObjectPath, "objectpath"},
	{KindSignature, "signature"},
	{KindAnyBasic, "anybasic"},
}

// Name returns the lower-case name of the kind, e.g. "int32" for 'i'.
func (k Kind) Name() string {
	for _, kn := range kindNames {
		if kn.kind == k {
			return kn.name
		}
	}
	return "invalid"
}

func (k Kind) String() string { return string(rune(k)) }

// Valid reports whether k is one of the basic kinds (including the basic wildcard).
func (k Kind) Valid() bool {
	switch k {
	case KindBoolean, KindByte, KindInt16, KindUint16, KindInt32, KindUint32,
		KindInt64, KindUint64, KindHandle, KindDouble, KindString, KindObjectPath,
		KindSignature, KindAnyBasic:
		return true
	}
	return false
}

// IsNumeric is true for the fixed-width integer kinds and doubles. Handles are not numeric.
func (k Kind) IsNumeric() bool {
	switch k {
	case KindByte, KindInt16, KindUint16, KindInt32, KindUint32, KindInt64, KindUint64, KindDouble:
		return true
	}
	return false
}

// IsStringLike is true for strings, object paths and signatures.
func (k Kind) IsStringLike() bool {
	return k == KindString || k == KindObjectPath || k == KindSignature
}

// Range returns the inclusive bounds of an integer kind (handles are int32).
// ok is false for non-integer kinds.
func (k Kind) Range() (min int64, max uint64, ok bool) {
	switch k {
	case KindByte:
		return 0, 1<<8 - 1, true
	case KindInt16:
		return -1 << 15, 1<<15 - 1, true
	case KindUint16:
		return 0, 1<<16 - 1, true
	case KindInt32, KindHandle:
		return -1 << 31, 1<<31 - 1, true
	case KindUint32:
		return 0, 1<<32 - 1, true
	case KindInt64:
		return -1 << 63, 1<<63 - 1, true
	case KindUint64:
		return 0, 1<<64 - 1, true
	}
	return 0, 0, false
}
