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
	"errors"
	"strconv"

	"github.com/wdamron/variant/types"
)

var (
	ErrTypeMismatch             = errors.New("variant: type mismatch")
	ErrArityMismatch            = errors.New("variant: wrong number of children")
	ErrUnresolvedIndefiniteType = errors.New("variant: indefinite type was never resolved")
	ErrBuilderFinalized         = errors.New("variant: builder has already been finalized")
	ErrNotContainer             = errors.New("variant: type is not a container")
	ErrNoOpenContainer          = errors.New("variant: no open sub-container to close")
	ErrUnclosedContainer        = errors.New("variant: sub-container has not been closed")
	ErrIndefiniteType           = errors.New("variant: values must have a definite type")
	ErrOutOfRange               = errors.New("variant: number out of range for type")
	ErrInvalidObjectPath        = errors.New("variant: invalid object path")
	ErrInvalidSignature         = errors.New("variant: invalid signature string")
	ErrNilValue                 = errors.New("variant: nil value")

	// Nesting beyond types.MaxDepth.
	ErrDepthExceeded = types.ErrDepthExceeded
	// Dict entry keys must be basic values.
	ErrNonBasicDictKey = types.ErrNonBasicDictKey
)

// TypeMismatchError is returned when a value does not have the type expected
// by a container, a builder or a lookup. It matches ErrTypeMismatch.
type TypeMismatchError struct {
	Op       string
	Expected types.Type
	Actual   types.Type
}

func (e *TypeMismatchError) Error() string {
	s := "variant: " + e.Op + ": type mismatch: expected " + typeString(e.Expected)
	if e.Actual != nil {
		s += ", got " + typeString(e.Actual)
	}
	return s
}

func (e *TypeMismatchError) Is(target error) bool { return target == ErrTypeMismatch }

// ArityError is returned when a fixed-size container (a tuple, dict entry, maybe
// or variant) receives the wrong number of children. It matches ErrArityMismatch.
type ArityError struct {
	Type types.Type
	Want int
	Got  int
}

func (e *ArityError) Error() string {
	return "variant: " + typeString(e.Type) + " requires " + strconv.Itoa(e.Want) +
		" children, got " + strconv.Itoa(e.Got)
}

func (e *ArityError) Is(target error) bool { return target == ErrArityMismatch }

func mismatch(op string, expected, actual types.Type) error {
	return &TypeMismatchError{Op: op, Expected: expected, Actual: actual}
}

func typeString(t types.Type) string {
	if t == nil {
		return "<nil>"
	}
	return types.TypeString(t)
}
