package ctnr

import (
	"errors"
	"fmt"

	"github.com/emirpasic/gods/containers"
	"golang.org/x/exp/constraints"
)

// --- Error kinds -----------------------------------------------------------

// Operations of the container packages fail immediately if a precondition
// is violated. Errors returned will wrap one of these, test with errors.Is.
var (
	ErrNotFound = errors.New("value not found")
	ErrFull     = errors.New("collection is full")
	ErrTooFew   = errors.New("fewer than two elements")
	ErrEmpty    = errors.New("collection is empty")
)

// --- Spans -----------------------------------------------------------------

// Span is a small type for capturing the distance between two values. A span
// denotes a lower value and an upper value; its length is the absolute
// distance between the two.
type Span[T constraints.Integer] [2]T // (x…y)

// MakeSpan creates a span from two values, in any order.
//
//    s := MakeSpan(17, 3)  // (3…17)
//    s.Len()               // 14
//
func MakeSpan[T constraints.Integer](a, b T) Span[T] {
	if b < a {
		a, b = b, a
	}
	return Span[T]{a, b}
}

// From returns the lower value of a span.
func (s Span[T]) From() T {
	return s[0]
}

// To returns the upper value of a span.
func (s Span[T]) To() T {
	return s[1]
}

// Len returns the distance of (x…y). The distance of any two values of an
// integer type fits into a uint64, even if it does not fit into T.
func (s Span[T]) Len() uint64 {
	return uint64(s[1]) - uint64(s[0])
}

// String returns the span formatted as (x…y).
func (s Span[T]) String() string {
	return fmt.Sprintf("(%v…%v)", s[0], s[1])
}

// --- Iterators -------------------------------------------------------------

// Iterator is a forward iterator over a sequence of values. A fresh iterator
// is positioned before the first element, i.e. clients have to call Next()
// before accessing a value:
//
//     for it.Next() {
//         fmt.Printf("[%d] = %v\n", it.Index(), it.Value())
//     }
//
type Iterator[T any] interface {
	Next() bool
	Value() T
	Index() int
}

// Slice returns an iterator over the elements of a slice.
func Slice[T any](s []T) Iterator[T] {
	return &sliceIterator[T]{s: s, index: -1}
}

type sliceIterator[T any] struct {
	s     []T
	index int
}

func (it *sliceIterator[T]) Next() bool {
	if it.index < len(it.s) {
		it.index++
	}
	return it.index < len(it.s)
}

func (it *sliceIterator[T]) Value() T {
	return it.s[it.index]
}

func (it *sliceIterator[T]) Index() int {
	return it.index
}

// Wrap adapts an untyped iterator of one of the gods containers (array lists,
// linked lists, etc.) to Iterator[T]. Values not of type T will cause a panic
// on access. The gods iterator is reset to its initial position.
//
//     list := doublylinkedlist.New(1, 2, 3)
//     it := list.Iterator()
//     pos, err := easyfind.In(ctnr.Wrap[int](&it), 2)
//
func Wrap[T any](it containers.IteratorWithIndex) Iterator[T] {
	it.Begin()
	return godsIterator[T]{it}
}

type godsIterator[T any] struct {
	containers.IteratorWithIndex
}

func (it godsIterator[T]) Value() T {
	return it.IteratorWithIndex.Value().(T)
}
