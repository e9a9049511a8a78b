package span

import (
	"fmt"
	"math"
	"strings"

	"github.com/npillmayer/ctnr"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Numbers is a bounded collection of integers. Construct with
//
//     sp := span.New[int](5)     // room for 5 numbers
//
// Now
//
//     sp.Add(6)                  // add a single number
//     sp.AddRange(3, 17, 9, 11)  // add several numbers at once
//     d, _ := sp.Shortest()      // returns 2, i.e. |11-9|
//     d, _ = sp.Longest()        // returns 14, i.e. |17-3|
//     err := sp.Add(1)           // err wraps ctnr.ErrFull
//
// The zero value is a collection of capacity 0, which will reject every insertion.
type Numbers[T constraints.Integer] struct {
	capacity uint
	values   []T
}

// New creates an empty collection with room for capacity numbers.
func New[T constraints.Integer](capacity uint) *Numbers[T] {
	return &Numbers[T]{
		capacity: capacity,
		values:   []T{},
	}
}

// Cap returns the declared capacity. Capacities beyond the range of int are
// reported as math.MaxInt.
func (sp *Numbers[T]) Cap() int {
	if sp.capacity > math.MaxInt {
		return math.MaxInt
	}
	return int(sp.capacity)
}

// room returns the count of numbers which may still be added.
func (sp *Numbers[T]) room() uint {
	return sp.capacity - uint(len(sp.values))
}

// Len returns the count of numbers stored.
func (sp *Numbers[T]) Len() int {
	return len(sp.values)
}

// Values returns a copy of the numbers, in order of insertion.
func (sp *Numbers[T]) Values() []T {
	return slices.Clone(sp.values)
}

// Clone returns an independent copy of the collection, with the same capacity.
func (sp *Numbers[T]) Clone() *Numbers[T] {
	return &Numbers[T]{
		capacity: sp.capacity,
		values:   slices.Clone(sp.values),
	}
}

// Add stores a number. If the collection is at capacity, an error wrapping
// ctnr.ErrFull is returned and the collection is unchanged.
func (sp *Numbers[T]) Add(n T) error {
	if sp.room() == 0 {
		return fmt.Errorf("%w: capacity is %d", ctnr.ErrFull, sp.capacity)
	}
	sp.values = append(sp.values, n)
	tracer().Debugf("added %v, now holding %d/%d", n, sp.Len(), sp.capacity)
	return nil
}

// AddRange stores a run of numbers. Either all of them fit, or none of them
// is stored and an error wrapping ctnr.ErrFull is returned.
func (sp *Numbers[T]) AddRange(values ...T) error {
	if room := sp.room(); uint(len(values)) > room {
		return fmt.Errorf("%w: %d numbers to add, room for %d", ctnr.ErrFull, len(values), room)
	}
	sp.values = append(sp.values, values...)
	tracer().Debugf("added %d numbers, now holding %d/%d", len(values), sp.Len(), sp.capacity)
	return nil
}

// Shortest returns the smallest distance between any two numbers of the
// collection. It is an error to call Shortest with fewer than 2 numbers stored.
func (sp *Numbers[T]) Shortest() (uint64, error) {
	s, err := sp.ShortestSpan()
	return s.Len(), err
}

// Longest returns the largest distance between any two numbers of the
// collection. It is an error to call Longest with fewer than 2 numbers stored.
func (sp *Numbers[T]) Longest() (uint64, error) {
	s, err := sp.LongestSpan()
	return s.Len(), err
}

// ShortestSpan returns a pair of numbers with the smallest distance.
func (sp *Numbers[T]) ShortestSpan() (ctnr.Span[T], error) {
	shortest, _, err := sp.scan()
	return shortest, err
}

// LongestSpan returns a pair of numbers with the largest distance.
func (sp *Numbers[T]) LongestSpan() (ctnr.Span[T], error) {
	_, longest, err := sp.scan()
	return longest, err
}

// scan looks at every pair of a sorted copy of the values. As the copy is
// sorted, the uint64 difference computed by Span.Len is the true distance for
// i < j, for signed and unsigned types alike.
func (sp *Numbers[T]) scan() (shortest, longest ctnr.Span[T], err error) {
	if sp.Len() < 2 {
		err = fmt.Errorf("%w: have %d", ctnr.ErrTooFew, sp.Len())
		return
	}
	sorted := slices.Clone(sp.values)
	slices.Sort(sorted)
	shortest = ctnr.Span[T]{sorted[0], sorted[1]}
	longest = shortest
	for i := 0; i < len(sorted); i++ {
		for j := i + 1; j < len(sorted); j++ {
			d := ctnr.Span[T]{sorted[i], sorted[j]}
			if d.Len() < shortest.Len() {
				shortest = d
			}
			if d.Len() > longest.Len() {
				longest = d
			}
		}
	}
	tracer().Debugf("spans of %d numbers: shortest %v, longest %v", len(sorted), shortest, longest)
	return
}

func (sp *Numbers[T]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%d/%d:", sp.Len(), sp.capacity)
	for _, n := range sp.values {
		fmt.Fprintf(&b, " %v", n)
	}
	b.WriteString(" ]")
	return b.String()
}
