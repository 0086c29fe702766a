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
	"strings"
	"sync"
)

var printerPool = sync.Pool{
	New: func() interface{} { return &typePrinter{} },
}

func newTypePrinter() *typePrinter { return printerPool.Get().(*typePrinter) }

func (p *typePrinter) Release() {
	p.sb.Reset()
	printerPool.Put(p)
}

type typePrinter struct {
	sb strings.Builder
}

// TypeString returns the canonical signature of a Type.
func TypeString(t Type) string {
	p := newTypePrinter()
	typeString(p, t)
	s := p.sb.String()
	p.Release()
	return s
}

// AppendTypeString writes the canonical signature of t to sb.
func AppendTypeString(sb *strings.Builder, t Type) {
	p := newTypePrinter()
	typeString(p, t)
	sb.WriteString(p.sb.String())
	p.Release()
}

func typeString(p *typePrinter, t Type) {
	switch t := t.(type) {
	case *Basic:
		p.sb.WriteByte(byte(t.Kind))

	case *Array:
		p.sb.WriteByte('a')
		typeString(p, t.Elem)

	case *Maybe:
		p.sb.WriteByte('m')
		typeString(p, t.Elem)

	case *Tuple:
		p.sb.WriteByte('(')
		t.Items.Range(func(i int, item Type) bool {
			typeString(p, item)
			return true
		})
		p.sb.WriteByte(')')

	case *DictEntry:
		p.sb.WriteByte('{')
		typeString(p, t.Key)
		typeString(p, t.Value)
		p.sb.WriteByte('}')

	case *Variant:
		p.sb.WriteByte('v')

	case *AnyTuple:
		p.sb.WriteByte('r')

	case *Any:
		p.sb.WriteByte('*')

	default:
		p.sb.WriteString("<INVALID-TYPE>")
	}
}
