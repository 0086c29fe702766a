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
	"strconv"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/wdamron/variant/types"
)

var printerPool = sync.Pool{
	New: func() interface{} { return &valuePrinter{} },
}

func newValuePrinter() *valuePrinter { return printerPool.Get().(*valuePrinter) }

func (p *valuePrinter) Release() {
	p.sb.Reset()
	printerPool.Put(p)
}

type valuePrinter struct {
	sb strings.Builder
}

// Print formats v in the GVariant text format. If annotate is true, type
// annotations are added wherever the type of a value could not be inferred from
// its text, e.g. `int16 3`, `@as []` or `objectpath '/a'`. The contents of
// variants are always annotated.
func (v *Value) Print(annotate bool) string {
	p := newValuePrinter()
	p.print(v, annotate)
	s := p.sb.String()
	p.Release()
	return s
}

// String formats v without type annotations.
func (v *Value) String() string { return v.Print(false) }

func (p *valuePrinter) print(v *Value, annotate bool) {
	switch t := v.t.(type) {
	case *types.Basic:
		p.printBasic(t.Kind, v.scalar, annotate)

	case *types.Array:
		p.printArray(v, t, annotate)

	case *types.Maybe:
		if v.children.Len() == 0 {
			if annotate {
				p.annotation(t)
			}
			p.sb.WriteString("nothing")
			return
		}
		p.sb.WriteString("just ")
		p.print(v.children.Get(0), annotate)

	case *types.Tuple:
		p.sb.WriteByte('(')
		v.children.Range(func(i int, child *Value) bool {
			if i > 0 {
				p.sb.WriteString(", ")
			}
			p.print(child, annotate)
			return true
		})
		if v.children.Len() == 1 {
			p.sb.WriteByte(',')
		}
		p.sb.WriteByte(')')

	case *types.DictEntry:
		p.sb.WriteByte('{')
		p.print(v.children.Get(0), annotate)
		p.sb.WriteString(", ")
		p.print(v.children.Get(1), annotate)
		p.sb.WriteByte('}')

	case *types.Variant:
		p.sb.WriteByte('<')
		p.print(v.children.Get(0), true)
		p.sb.WriteByte('>')
	}
}

func (p *valuePrinter) annotation(t types.Type) {
	p.sb.WriteByte('@')
	types.AppendTypeString(&p.sb, t)
	p.sb.WriteByte(' ')
}

// Only the first element of an array is annotated; the rest share its type.
func (p *valuePrinter) printArray(v *Value, t *types.Array, annotate bool) {
	if v.NChildren() == 0 {
		if annotate {
			p.annotation(t)
		}
		if types.IsDictArray(t) {
			p.sb.WriteString("{}")
		} else {
			p.sb.WriteString("[]")
		}
		return
	}

	if v.isByteArray() {
		if isBytestring(v.bytes) {
			p.sb.WriteByte('b')
			p.quote(string(v.bytes[:len(v.bytes)-1]))
			return
		}
		p.sb.WriteByte('[')
		for i, b := range v.bytes {
			if i > 0 {
				p.sb.WriteString(", ")
			}
			p.printBasic(types.KindByte, b, annotate && i == 0)
		}
		p.sb.WriteByte(']')
		return
	}

	if types.IsDictArray(t) {
		p.sb.WriteByte('{')
		v.children.Range(func(i int, entry *Value) bool {
			if i > 0 {
				p.sb.WriteString(", ")
			}
			p.print(entry.children.Get(0), annotate && i == 0)
			p.sb.WriteString(": ")
			p.print(entry.children.Get(1), annotate && i == 0)
			return true
		})
		p.sb.WriteByte('}')
		return
	}

	p.sb.WriteByte('[')
	v.children.Range(func(i int, child *Value) bool {
		if i > 0 {
			p.sb.WriteString(", ")
		}
		p.print(child, annotate && i == 0)
		return true
	})
	p.sb.WriteByte(']')
}

// A bytestring is NUL-terminated printable ASCII.
func isBytestring(b []byte) bool {
	if len(b) == 0 || b[len(b)-1] != 0 {
		return false
	}
	for _, c := range b[:len(b)-1] {
		if c < 0x20 || c > 0x7e {
			return false
		}
	}
	return true
}

func (p *valuePrinter) printBasic(k types.Kind, scalar interface{}, annotate bool) {
	switch k {
	case types.KindInt16, types.KindUint16, types.KindUint32, types.KindInt64,
		types.KindUint64, types.KindHandle, types.KindByte, types.KindObjectPath,
		types.KindSignature:
		if annotate {
			p.sb.WriteString(k.Name())
			p.sb.WriteByte(' ')
		}
	}

	switch s := scalar.(type) {
	case bool:
		p.sb.WriteString(strconv.FormatBool(s))
	case uint8:
		p.sb.WriteString("0x")
		if s < 0x10 {
			p.sb.WriteByte('0')
		}
		p.sb.WriteString(strconv.FormatUint(uint64(s), 16))
	case int16:
		p.sb.WriteString(strconv.FormatInt(int64(s), 10))
	case uint16:
		p.sb.WriteString(strconv.FormatUint(uint64(s), 10))
	case int32:
		p.sb.WriteString(strconv.FormatInt(int64(s), 10))
	case uint32:
		p.sb.WriteString(strconv.FormatUint(uint64(s), 10))
	case int64:
		p.sb.WriteString(strconv.FormatInt(s, 10))
	case uint64:
		p.sb.WriteString(strconv.FormatUint(s, 10))
	case Handle:
		p.sb.WriteString(strconv.FormatInt(int64(s), 10))
	case float64:
		f := strconv.FormatFloat(s, 'g', -1, 64)
		p.sb.WriteString(f)
		if !strings.ContainsAny(f, ".eIN") {
			p.sb.WriteString(".0")
		}
	case string:
		p.quote(s)
	}
}

// quote writes s in single quotes, or double quotes if s contains a single quote
// but no double quote.
func (p *valuePrinter) quote(s string) {
	q := byte('\'')
	if strings.IndexByte(s, '\'') >= 0 && strings.IndexByte(s, '"') < 0 {
		q = '"'
	}
	p.sb.WriteByte(q)
	for len(s) > 0 {
		r, size := utf8.DecodeRuneInString(s)
		s = s[size:]
		switch r {
		case rune(q), '\\':
			p.sb.WriteByte('\\')
			p.sb.WriteRune(r)
		case '\a':
			p.sb.WriteString(`\a`)
		case '\b':
			p.sb.WriteString(`\b`)
		case '\f':
			p.sb.WriteString(`\f`)
		case '\n':
			p.sb.WriteString(`\n`)
		case '\r':
			p.sb.WriteString(`\r`)
		case '\t':
			p.sb.WriteString(`\t`)
		case '\v':
			p.sb.WriteString(`\v`)
		default:
			switch {
			case unicode.IsPrint(r):
				p.sb.WriteRune(r)
			case r <= 0xffff:
				p.sb.WriteString(`\u`)
				p.hex(uint64(r), 4)
			default:
				p.sb.WriteString(`\U`)
				p.hex(uint64(r), 8)
			}
		}
	}
	p.sb.WriteByte(q)
}

func (p *valuePrinter) hex(n uint64, width int) {
	h := strconv.FormatUint(n, 16)
	for i := len(h); i < width; i++ {
		p.sb.WriteByte('0')
	}
	p.sb.WriteString(h)
}
