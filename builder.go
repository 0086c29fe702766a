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

// Builder incrementally constructs a container value. Sub-containers are built in
// place with Open and Close; the outermost container is produced by End.
//
// The target type may be indefinite. An array whose element type is indefinite
// takes its element type from its first child, after which every child must have
// exactly that type. Tuple items and dict entry keys and values must be subtypes
// of the corresponding part of the target.
//
// A Builder is not safe for concurrent use.
type Builder struct {
	stack []*frame
	done  bool
}

type frame struct {
	target types.Type
	// arrays: the element type, which is fixed by the first child
	elem     types.Type
	children []*Value
}

// NewBuilder returns a builder for a container of type target, which must be an
// array, maybe, tuple, dict entry or variant type, or `r`.
func NewBuilder(target types.Type) (*Builder, error) {
	if err := checkContainer(target); err != nil {
		return nil, err
	}
	return &Builder{stack: []*frame{newFrame(target)}}, nil
}

func checkContainer(t types.Type) error {
	if t == nil {
		return types.ErrNilType
	}
	if !types.IsContainer(t) {
		return ErrNotContainer
	}
	return types.Check(t)
}

func newFrame(target types.Type) *frame {
	return &frame{target: target, elem: types.Element(target)}
}

func (b *Builder) top() *frame { return b.stack[len(b.stack)-1] }

// AddValue adds v as the next child of the innermost open container.
func (b *Builder) AddValue(v *Value) error {
	if b.done {
		return ErrBuilderFinalized
	}
	if v == nil {
		return ErrNilValue
	}
	return b.top().add(v)
}

// Open starts a sub-container of type subType as the next child of the innermost
// open container. subType must be a container type and a subtype of the type
// expected for the next child.
func (b *Builder) Open(subType types.Type) error {
	if b.done {
		return ErrBuilderFinalized
	}
	if err := checkContainer(subType); err != nil {
		return err
	}
	f := b.top()
	if _, ok := f.target.(*types.DictEntry); ok && len(f.children) == 0 {
		return ErrNonBasicDictKey
	}
	expected, err := f.expected()
	if err != nil {
		return err
	}
	if !types.IsSubtypeOf(subType, expected) {
		return mismatch("open", expected, subType)
	}
	if len(b.stack) >= types.MaxDepth {
		return ErrDepthExceeded
	}
	b.stack = append(b.stack, newFrame(subType))
	Logger().Debug("opened container", "type", types.TypeString(subType), "depth", len(b.stack)-1)
	return nil
}

// Close finishes the innermost open sub-container and adds it to its parent. If
// the sub-container is incomplete, an error is returned and the builder is left
// unchanged.
func (b *Builder) Close() error {
	if b.done {
		return ErrBuilderFinalized
	}
	if len(b.stack) < 2 {
		return ErrNoOpenContainer
	}
	child, err := b.top().finish()
	if err != nil {
		return err
	}
	if err := b.stack[len(b.stack)-2].add(child); err != nil {
		return err
	}
	b.stack[len(b.stack)-1] = nil
	b.stack = b.stack[:len(b.stack)-1]
	Logger().Debug("closed container", "type", child.TypeString(), "depth", len(b.stack))
	return nil
}

// End finishes the builder and returns the container value. After a successful
// End, every method of the builder returns ErrBuilderFinalized.
func (b *Builder) End() (*Value, error) {
	if b.done {
		return nil, ErrBuilderFinalized
	}
	if len(b.stack) > 1 {
		return nil, ErrUnclosedContainer
	}
	v, err := b.stack[0].finish()
	if err != nil {
		return nil, err
	}
	b.done = true
	b.stack = nil
	Logger().Debug("finalized builder", "type", v.TypeString())
	return v, nil
}

// expected returns the type which the next child must match.
func (f *frame) expected() (types.Type, error) {
	n := len(f.children)
	switch t := f.target.(type) {
	case *types.Array:
		return f.elem, nil
	case *types.Maybe:
		if n >= 1 {
			return nil, &ArityError{Type: t, Want: 1, Got: n + 1}
		}
		return t.Elem, nil
	case *types.Tuple:
		if n >= t.Items.Len() {
			return nil, &ArityError{Type: t, Want: t.Items.Len(), Got: n + 1}
		}
		return t.Items.Get(n), nil
	case *types.DictEntry:
		switch n {
		case 0:
			return t.Key, nil
		case 1:
			return t.Value, nil
		}
		return nil, &ArityError{Type: t, Want: 2, Got: n + 1}
	case *types.Variant:
		if n >= 1 {
			return nil, &ArityError{Type: t, Want: 1, Got: n + 1}
		}
	}
	return types.AnyType, nil
}

func (f *frame) add(v *Value) error {
	if _, ok := f.target.(*types.DictEntry); ok && len(f.children) == 0 && !types.IsBasic(v.t) {
		return ErrNonBasicDictKey
	}
	expected, err := f.expected()
	if err != nil {
		return err
	}
	if !types.IsSubtypeOf(v.t, expected) {
		return mismatch("add", expected, v.t)
	}
	if _, ok := f.target.(*types.Array); ok && !f.elem.IsDefinite() {
		f.elem = v.t
		Logger().Debug("inferred array element type", "type", v.TypeString())
	}
	f.children = append(f.children, v)
	return nil
}

func (f *frame) finish() (*Value, error) {
	n := len(f.children)
	switch t := f.target.(type) {
	case *types.Array:
		if n == 0 && !f.elem.IsDefinite() {
			return nil, ErrUnresolvedIndefiniteType
		}
		return newArray(f.elem, f.children)

	case *types.Maybe:
		if n == 0 {
			return NewMaybe(t.Elem, nil)
		}
		return NewMaybe(nil, f.children[0])

	case *types.Tuple:
		if n != t.Items.Len() {
			return nil, &ArityError{Type: t, Want: t.Items.Len(), Got: n}
		}
		return NewTuple(f.children...)

	case *types.AnyTuple:
		return NewTuple(f.children...)

	case *types.DictEntry:
		if n != 2 {
			return nil, &ArityError{Type: t, Want: 2, Got: n}
		}
		return NewDictEntry(f.children[0], f.children[1])

	case *types.Variant:
		if n != 1 {
			return nil, &ArityError{Type: t, Want: 1, Got: n}
		}
		return NewVariant(f.children[0])
	}
	return nil, ErrNotContainer
}
