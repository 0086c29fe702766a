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

// Grammar:
//
//	sig       := basic | 'v' | 'r' | '*' | array | maybe | tuple | dictentry
//	basic     := 'b'|'y'|'n'|'q'|'i'|'u'|'x'|'t'|'h'|'d'|'s'|'o'|'g'|'?'
//	array     := 'a' sig
//	maybe     := 'm' sig
//	tuple     := '(' sig* ')'
//	dictentry := '{' basic sig '}'

type parser struct {
	sig   string
	limit int
	pos   int
}

func (p *parser) fail(kind ParseErrorKind, pos int) error {
	return &ParseError{Kind: kind, Pos: pos, Signature: p.sig}
}

func (p *parser) peek() (byte, bool) {
	if p.pos >= p.limit {
		return 0, false
	}
	return p.sig[p.pos], true
}

// enter checks that a container opened at pos fits within MaxDepth.
func (p *parser) enter(depth, pos int) error {
	if depth+1 > MaxDepth {
		return p.fail(DepthExceeded, pos)
	}
	return nil
}

// depth is the number of containers enclosing the type being parsed.
func (p *parser) parseType(depth int) (Type, error) {
	start := p.pos
	c, ok := p.peek()
	if !ok {
		return nil, p.fail(UnexpectedEnd, start)
	}
	if b := basics[Kind(c)]; b != nil {
		p.pos++
		return b, nil
	}
	switch c {
	case '*':
		p.pos++
		return AnyType, nil

	case 'v', 'r':
		if err := p.enter(depth, start); err != nil {
			return nil, err
		}
		p.pos++
		if c == 'v' {
			return VariantType, nil
		}
		return AnyTupleType, nil

	case 'a', 'm':
		if err := p.enter(depth, start); err != nil {
			return nil, err
		}
		p.pos++
		elem, err := p.parseType(depth + 1)
		if err != nil {
			return nil, err
		}
		if c == 'a' {
			return &Array{Elem: elem}, nil
		}
		return &Maybe{Elem: elem}, nil

	case '(':
		if err := p.enter(depth, start); err != nil {
			return nil, err
		}
		p.pos++
		return p.parseTuple(depth + 1)

	case '{':
		if err := p.enter(depth, start); err != nil {
			return nil, err
		}
		p.pos++
		return p.parseDictEntry(depth + 1)

	case ')', '}':
		return nil, p.fail(UnmatchedClose, start)
	}
	return nil, p.fail(UnrecognizedChar, start)
}

func (p *parser) parseTuple(depth int) (Type, error) {
	var items TypeListBuilder
	for {
		c, ok := p.peek()
		if !ok {
			return nil, p.fail(UnexpectedEnd, p.pos)
		}
		if c == ')' {
			p.pos++
			break
		}
		item, err := p.parseType(depth)
		if err != nil {
			return nil, err
		}
		items.EnsureInitialized()
		items.Append(item)
	}
	if items.Len() == 0 {
		return UnitType, nil
	}
	return &Tuple{Items: items.Build()}, nil
}

func (p *parser) parseDictEntry(depth int) (Type, error) {
	keyPos := p.pos
	c, ok := p.peek()
	switch {
	case !ok:
		return nil, p.fail(UnexpectedEnd, keyPos)
	case c == '}':
		return nil, p.fail(DictEntryArity, keyPos)
	case c == ')':
		return nil, p.fail(UnmatchedClose, keyPos)
	}
	key := basics[Kind(c)]
	if key == nil {
		switch c {
		case 'a', 'm', '(', '{', 'v', 'r', '*':
			return nil, p.fail(NonBasicKey, keyPos)
		}
		return nil, p.fail(UnrecognizedChar, keyPos)
	}
	p.pos++

	if c, ok := p.peek(); ok && c == '}' {
		return nil, p.fail(DictEntryArity, p.pos)
	}
	value, err := p.parseType(depth)
	if err != nil {
		return nil, err
	}

	c, ok = p.peek()
	switch {
	case !ok:
		return nil, p.fail(UnexpectedEnd, p.pos)
	case c == ')':
		return nil, p.fail(UnmatchedClose, p.pos)
	case c != '}':
		return nil, p.fail(DictEntryArity, p.pos)
	}
	p.pos++
	return &DictEntry{Key: key, Value: value}, nil
}

// Parse parses a signature describing exactly one type.
func Parse(sig string) (Type, error) {
	p := parser{sig: sig, limit: len(sig)}
	t, err := p.parseType(0)
	if err != nil {
		return nil, err
	}
	if p.pos != len(sig) {
		if c := sig[p.pos]; c == ')' || c == '}' {
			return nil, p.fail(UnmatchedClose, p.pos)
		}
		return nil, p.fail(TrailingInput, p.pos)
	}
	return t, nil
}

// MustParse is like Parse but panics if the signature is invalid.
func MustParse(sig string) Type {
	t, err := Parse(sig)
	if err != nil {
		panic(err)
	}
	return t
}

// Scan finds the end of the single complete type which starts at the beginning of sig.
// At most limit bytes are examined; a negative limit examines the whole string.
// ok is false if no prefix of sig (within the limit) is a complete type.
func Scan(sig string, limit int) (end int, ok bool) {
	if limit < 0 || limit > len(sig) {
		limit = len(sig)
	}
	p := parser{sig: sig, limit: limit}
	if _, err := p.parseType(0); err != nil {
		return 0, false
	}
	return p.pos, true
}

// IsValid reports whether sig is exactly one (possibly indefinite) type.
func IsValid(sig string) bool {
	end, ok := Scan(sig, -1)
	return ok && end == len(sig)
}
