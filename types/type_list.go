package types

import (
	"github.com/benbjohnson/immutable"
)

var emptyList = immutable.NewList()

var EmptyTypeList = TypeList{emptyList}

// TypeList is an immutable list of types, used for the items of a tuple.
type TypeList struct {
	l *immutable.List
}

func NewTypeList() TypeList { return TypeList{emptyList} }

func SingletonTypeList(t Type) TypeList {
	return TypeList{emptyList.Append(t)}
}

func (l TypeList) Len() int {
	if l.l == nil {
		return 0
	}
	return l.l.Len()
}

func (l TypeList) Get(i int) Type { return l.l.Get(i).(Type) }

// If f returns false, iteration will be stopped.
func (l TypeList) Range(f func(int, Type) bool) {
	if l.l == nil {
		return
	}
	iter := l.l.Iterator()
	for !iter.Done() {
		i, v := iter.Next()
		if !f(i, v.(Type)) {
			return
		}
	}
}

// Slice copies the list into a new slice.
func (l TypeList) Slice() []Type {
	ts := make([]Type, 0, l.Len())
	l.Range(func(i int, t Type) bool {
		ts = append(ts, t)
		return true
	})
	return ts
}

func (l TypeList) Builder() TypeListBuilder {
	imm := l.l
	if imm == nil {
		imm = emptyList
	}
	return TypeListBuilder{immutable.NewListBuilder(imm)}
}

// TypeListBuilder enables in-place appends to a list before finalization.
type TypeListBuilder struct {
	b *immutable.ListBuilder
}

func NewTypeListBuilder() TypeListBuilder {
	return TypeListBuilder{immutable.NewListBuilder(emptyList)}
}

func (b *TypeListBuilder) EnsureInitialized() {
	if b.b != nil {
		return
	}
	b.b = immutable.NewListBuilder(emptyList)
}

func (b TypeListBuilder) Len() int {
	if b.b == nil {
		return 0
	}
	return b.b.Len()
}

func (b TypeListBuilder) Append(t Type) { b.b.Append(t) }

func (b TypeListBuilder) Build() TypeList {
	if b.b == nil {
		return EmptyTypeList
	}
	return TypeList{b.b.List()}
}
