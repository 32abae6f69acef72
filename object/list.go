package object

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// List is an ordered sequence of objects. It is the usual source of
// integers for the bytes constructor.
type List struct {
	items []Object
}

func NewList(items []Object) *List {
	return &List{items: items}
}

// NewIntList returns a List of Ints.
func NewIntList(values []int64) *List {
	items := make([]Object, len(values))
	for i, v := range values {
		items[i] = NewInt(v)
	}
	return &List{items: items}
}

func (ls *List) Type() Type {
	return LIST
}

func (ls *List) Class() *Class {
	return listClass
}

// Value returns the underlying items.
func (ls *List) Value() []Object {
	return ls.items
}

func (ls *List) Inspect() string {
	items := make([]string, len(ls.items))
	for i, item := range ls.items {
		items[i] = item.Inspect()
	}
	return fmt.Sprintf("[%s]", strings.Join(items, ", "))
}

func (ls *List) String() string {
	return ls.Inspect()
}

func (ls *List) Interface() interface{} {
	result := make([]interface{}, len(ls.items))
	for i, item := range ls.items {
		result[i] = item.Interface()
	}
	return result
}

func (ls *List) Equals(other Object) bool {
	o, ok := other.(*List)
	if !ok || len(o.items) != len(ls.items) {
		return false
	}
	for i, item := range ls.items {
		if !item.Equals(o.items[i]) {
			return false
		}
	}
	return true
}

func (ls *List) IsTruthy() bool {
	return len(ls.items) > 0
}

func (ls *List) Len() *Int {
	return NewInt(int64(len(ls.items)))
}

func (ls *List) Iter() Iterator {
	return &ListIter{list: ls}
}

func (ls *List) MarshalJSON() ([]byte, error) {
	return json.Marshal(ls.items)
}

// ListIter walks the items of a List.
type ListIter struct {
	list     *List
	position int
}

func (it *ListIter) Type() Type {
	return LIST_ITER
}

func (it *ListIter) Class() *Class {
	return listIterClass
}

func (it *ListIter) Inspect() string {
	return fmt.Sprintf("list_iterator(pos=%d)", it.position)
}

func (it *ListIter) Interface() interface{} {
	return it
}

func (it *ListIter) Equals(other Object) bool {
	o, ok := other.(*ListIter)
	return ok && o == it
}

func (it *ListIter) IsTruthy() bool {
	return true
}

func (it *ListIter) Next(ctx context.Context) (Object, error) {
	if it.position >= len(it.list.items) {
		return nil, StopIteration
	}
	item := it.list.items[it.position]
	it.position++
	return item, nil
}

func (it *ListIter) Iter() Iterator {
	return it
}
