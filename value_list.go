package variant

import (
	"github.com/benbjohnson/immutable"
)

var emptyList = immutable.NewList()

// valueList holds the children of a container value. It is never mutated after
// the value is constructed, so values may share children freely.
type valueList struct {
	l *immutable.List
}

func newValueList(vs []*Value) valueList {
	if len(vs) == 0 {
		return valueList{emptyList}
	}
	b := immutable.NewListBuilder(emptyList)
	for _, v := range vs {
		b.Append(v)
	}
	return valueList{b.List()}
}

func (l valueList) Len() int {
	if l.l == nil {
		return 0
	}
	return l.l.Len()
}

func (l valueList) Get(i int) *Value { return l.l.Get(i).(*Value) }

// If f returns false, iteration will be stopped.
func (l valueList) Range(f func(int, *Value) bool) {
	if l.l == nil {
		return
	}
	iter := l.l.Iterator()
	for !iter.Done() {
		i, v := iter.Next()
		if !f(i, v.(*Value)) {
			return
		}
	}
}
