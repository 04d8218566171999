package list

import (
	"sync"
)

// Element is an entry of a List. An element pointer stays valid from the
// moment it is returned by PushBack until it is passed to Remove, no matter
// how the rest of the list changes, which makes it usable as a stable
// position handle.
type Element[T any] struct {
	next, prev *Element[T]
	list       *List[T]
	Value      T
}

// Next returns the next list element or nil.
func (e *Element[T]) Next() *Element[T] {
	if p := e.next; e.list != nil && p != &e.list.root {
		return p
	}
	return nil
}

// Prev returns the previous list element or nil.
func (e *Element[T]) Prev() *Element[T] {
	if p := e.prev; e.list != nil && p != &e.list.root {
		return p
	}
	return nil
}

// List is a doubly linked list with optionally pooled elements.
// NOTE: Not thread-safe.
type List[T any] struct {
	pool *sync.Pool // optional pool used to create/release list elements
	root Element[T] // sentinel element, only &root, root.prev and root.next are used
	len  int
}

// NewList creates new List instance.
func NewList[T any]() *List[T] {
	return NewListPooled[T](nil)
}

// NewListPooled creates new List instance which takes its elements from the
// given pool and returns them there on removal.
func NewListPooled[T any](pool *sync.Pool) *List[T] {
	l := new(List[T])
	l.pool = pool
	l.root.next = &l.root
	l.root.prev = &l.root
	return l
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int {
	return l.len
}

// Front returns the first element of the list or nil if the list is empty.
func (l *List[T]) Front() *Element[T] {
	if l.len == 0 {
		return nil
	}
	return l.root.next
}

// Back returns the last element of the list or nil if the list is empty.
func (l *List[T]) Back() *Element[T] {
	if l.len == 0 {
		return nil
	}
	return l.root.prev
}

// PushBack appends a new element with value v to the list and returns it.
func (l *List[T]) PushBack(v T) *Element[T] {
	var e *Element[T]
	if l.pool != nil {
		e = l.pool.Get().(*Element[T])
		e.Value = v
	} else {
		e = &Element[T]{Value: v}
	}
	at := l.root.prev
	e.prev = at
	e.next = at.next
	e.prev.next = e
	e.next.prev = e
	e.list = l
	l.len++
	return e
}

// Remove removes element e from the list. The element must belong to this
// list, otherwise an error is returned and the list is left untouched.
func (l *List[T]) Remove(e *Element[T]) (v T, err error) {
	if e == nil {
		err = ErrorListElementIsNil
		return
	}
	if e.list != l {
		err = ErrorListElementIsNotInTheList
		return
	}
	v = e.Value
	e.prev.next = e.next
	e.next.prev = e.prev
	e.next, e.prev, e.list = nil, nil, nil
	l.len--
	if l.pool != nil {
		var zero T
		e.Value = zero
		l.pool.Put(e)
	}
	return
}

// Clean removes all elements from the list, releasing them to the pool when
// one is used.
func (l *List[T]) Clean() {
	if l.pool != nil {
		for e := l.root.next; e != &l.root; {
			next := e.next
			var zero T
			e.next, e.prev, e.list = nil, nil, nil
			e.Value = zero
			l.pool.Put(e)
			e = next
		}
	}
	l.root.next = &l.root
	l.root.prev = &l.root
	l.len = 0
}
