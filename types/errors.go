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
	"errors"
	"strconv"
)

var (
	ErrMalformedSignature = errors.New("types: malformed signature")
	ErrDepthExceeded      = errors.New("types: maximum nesting depth exceeded")
	ErrNonBasicDictKey    = errors.New("types: dict entry key is not a basic type")
	ErrNilType            = errors.New("types: nil type")
)

// ParseErrorKind classifies a signature parse failure.
type ParseErrorKind int

const (
	// The signature ended inside a container (or was empty).
	UnexpectedEnd ParseErrorKind = iota
	// A `)` or `}` without a matching opening bracket of the same kind.
	UnmatchedClose
	// A dict entry whose key is a container, `v`, `r` or `*`.
	NonBasicKey
	// The container nesting exceeds MaxDepth.
	DepthExceeded
	// A character which does not start any type.
	UnrecognizedChar
	// A dict entry with more than a key and a value.
	DictEntryArity
	// Characters remain after one complete type.
	TrailingInput
)

var parseErrorReasons = [...]string{
	UnexpectedEnd:    "unexpected end of signature",
	UnmatchedClose:   "unmatched closing bracket",
	NonBasicKey:      "dict entry key must be a basic type",
	DepthExceeded:    "maximum nesting depth exceeded",
	UnrecognizedChar: "unrecognized type character",
	DictEntryArity:   "dict entry must contain exactly one key and one value",
	TrailingInput:    "trailing characters after complete type",
}

func (k ParseErrorKind) String() string {
	if k < 0 || int(k) >= len(parseErrorReasons) {
		return "unknown parse error"
	}
	return parseErrorReasons[k]
}

// ParseError describes where and why a signature failed to parse.
type ParseError struct {
	Kind      ParseErrorKind
	Pos       int
	Signature string
}

func (e *ParseError) Error() string {
	return "types: " + e.Kind.String() + " at offset " + strconv.Itoa(e.Pos) + " in " + strconv.Quote(e.Signature)
}

// Is matches ErrMalformedSignature for every parse error, and the more specific
// sentinel for depth and dict-key failures.
func (e *ParseError) Is(target error) bool {
	switch target {
	case ErrMalformedSignature:
		return true
	case ErrDepthExceeded:
		return e.Kind == DepthExceeded
	case ErrNonBasicDictKey:
		return e.Kind == NonBasicKey
	}
	return false
}
