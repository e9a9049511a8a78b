package mutant

import (
	"fmt"
	"iter"

	"github.com/emirpasic/gods/lists/doublylinkedlist"
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/ctnr"
)

// Stack is a LIFO stack which may be iterated in storage order.
// The zero value is an empty stack ready to use.
type Stack[T any] struct {
	list *doublylinkedlist.List // bottom at index 0, TOS at index size-1
}

// New creates a stack and pushes values onto it, in order.
// values[len(values)-1] will therefore be the top of stack.
func New[T any](values ...T) *Stack[T] {
	s := &Stack[T]{}
	for _, v := range values {
		s.Push(v)
	}
	return s
}

func (s *Stack[T]) storage() *doublylinkedlist.List {
	if s.list == nil {
		s.list = doublylinkedlist.New()
	}
	return s.list
}

// Push puts a value on top of the stack.
func (s *Stack[T]) Push(v T) {
	s.storage().Append(v)
}

// Pop removes the top-most value and returns it. If the stack is empty,
// an error wrapping ctnr.ErrEmpty is returned.
func (s *Stack[T]) Pop() (T, error) {
	v, err := s.Top()
	if err != nil {
		return v, err
	}
	s.list.Remove(s.list.Size() - 1)
	tracer().Debugf("popped %v, %d values left", v, s.list.Size())
	return v, nil
}

// Top returns the top-most value without removing it. If the stack is empty,
// an error wrapping ctnr.ErrEmpty is returned.
func (s *Stack[T]) Top() (T, error) {
	var zero T
	if s.Empty() {
		return zero, fmt.Errorf("%w: no top of stack", ctnr.ErrEmpty)
	}
	v, _ := s.list.Get(s.list.Size() - 1)
	return v.(T), nil
}

// Size returns the number of values on the stack.
func (s *Stack[T]) Size() int {
	if s.list == nil {
		return 0
	}
	return s.list.Size()
}

// Empty is a predicate: is the stack empty?
func (s *Stack[T]) Empty() bool {
	return s.Size() == 0
}

// Clear removes all values from the stack.
func (s *Stack[T]) Clear() {
	s.storage().Clear()
}

// Values returns the values of the stack in storage order, i.e. the oldest
// value first and the top of stack last.
func (s *Stack[T]) Values() []T {
	values := make([]T, 0, s.Size())
	for v := range s.All() {
		values = append(values, v)
	}
	return values
}

// Clone returns an independent copy of the stack.
func (s *Stack[T]) Clone() *Stack[T] {
	return New(s.Values()...)
}

// Each calls f for every value, in storage order.
func (s *Stack[T]) Each(f func(index int, v T)) {
	s.storage().Each(func(index int, value interface{}) {
		f(index, value.(T))
	})
}

// All returns a sequence over the values in storage order (oldest first).
//
//     for v := range stack.All() {
//         fmt.Println(v)
//     }
//
func (s *Stack[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := s.storage().Iterator()
		for it.Next() {
			if !yield(it.Value().(T)) {
				return
			}
		}
	}
}

// Backward returns a sequence over the values from the top of stack down to
// the bottom-most value, i.e. in the order successive calls to Pop would
// produce them.
func (s *Stack[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := s.storage().Iterator()
		it.End()
		for it.Prev() {
			if !yield(it.Value().(T)) {
				return
			}
		}
	}
}

// Stack copies the values into a plain stack. Popping from the plain stack
// will yield the values newest first.
func (s *Stack[T]) Stack() *arraystack.Stack {
	plain := arraystack.New()
	s.Each(func(_ int, v T) {
		plain.Push(v)
	})
	return plain
}

func (s *Stack[T]) String() string {
	return fmt.Sprintf("MutantStack%v", s.Values())
}

// --- Iterator --------------------------------------------------------------

// Iterator moves over the values of a stack in storage order. It may be moved
// in both directions. Iterators are invalidated by Push and Pop.
//
//     it := stack.Iterator()
//     for it.Next() {          // from bottom to top
//         v := it.Value()
//         …
//     }
//     for it.Prev() {          // and back again
//         …
//     }
//
type Iterator[T any] struct {
	it   doublylinkedlist.Iterator
	list *doublylinkedlist.List
}

var _ ctnr.Iterator[int] = (*Iterator[int])(nil)

// Iterator returns an iterator positioned before the first value.
func (s *Stack[T]) Iterator() *Iterator[T] {
	list := s.storage()
	return &Iterator[T]{
		it:   list.Iterator(),
		list: list,
	}
}

// Next moves to the next value and reports whether there is one.
func (it *Iterator[T]) Next() bool {
	return it.it.Next()
}

// Prev moves to the previous value and reports whether there is one.
func (it *Iterator[T]) Prev() bool {
	return it.it.Prev()
}

// Value returns the value at the current position.
func (it *Iterator[T]) Value() T {
	return it.it.Value().(T)
}

// Index returns the current position, with 0 being the bottom of the stack.
func (it *Iterator[T]) Index() int {
	return it.it.Index()
}

// Begin resets the iterator to its initial state (one-before-first).
func (it *Iterator[T]) Begin() {
	it.it.Begin()
}

// End moves the iterator past the last value (one-past-last).
func (it *Iterator[T]) End() {
	it.it.End()
}

// First moves to the bottom-most value. It returns false for an empty stack.
func (it *Iterator[T]) First() bool {
	return it.it.First()
}

// Last moves to the top-most value. It returns false for an empty stack.
func (it *Iterator[T]) Last() bool {
	return it.it.Last()
}

// Set replaces the value at the current position. It is a no-op if the
// iterator is not positioned at a value.
func (it *Iterator[T]) Set(v T) {
	if i := it.it.Index(); i >= 0 && i < it.list.Size() {
		it.list.Set(i, v)
	}
}
