package easyfind

import (
	"fmt"
	"iter"

	"github.com/npillmayer/ctnr"
	"golang.org/x/exp/slices"
)

// Find returns the position of the first occurence of v in s.
func Find[T comparable](s []T, v T) (int, error) {
	if i := slices.Index(s, v); i >= 0 {
		tracer().Debugf("found %v at position %d of %d", v, i, len(s))
		return i, nil
	}
	return -1, notFound(v)
}

// FindFunc returns the position of the first element of s satisfying pred.
func FindFunc[T any](s []T, pred func(T) bool) (int, error) {
	if i := slices.IndexFunc(s, pred); i >= 0 {
		return i, nil
	}
	return -1, fmt.Errorf("%w: no element satisfies predicate", ctnr.ErrNotFound)
}

// In advances it until a value equal to v turns up, and returns the
// iterator's index at that point. The iterator is left positioned at the
// match, so callers may continue the search from there.
//
//     stack := mutant.New(5, 17, 3)
//     pos, err := easyfind.In(stack.Iterator(), 17)  // pos = 1
//
func In[T comparable](it ctnr.Iterator[T], v T) (int, error) {
	for it.Next() {
		if it.Value() == v {
			tracer().Debugf("found %v at index %d", v, it.Index())
			return it.Index(), nil
		}
	}
	return -1, notFound(v)
}

// InSeq returns the number of values seq yields before the first one equal
// to v.
func InSeq[T comparable](seq iter.Seq[T], v T) (int, error) {
	pos := 0
	for x := range seq {
		if x == v {
			return pos, nil
		}
		pos++
	}
	return -1, notFound(v)
}

func notFound[T any](v T) error {
	tracer().Debugf("value %v not found", v)
	return fmt.Errorf("%w: %v", ctnr.ErrNotFound, v)
}
