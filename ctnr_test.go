package ctnr

import (
	"math"
	"testing"

	"github.com/emirpasic/gods/lists/doublylinkedlist"
	"github.com/emirpasic/gods/lists/singlylinkedlist"
)

func TestSpanOrdersValues(t *testing.T) {
	s := MakeSpan(17, 3)
	if s.From() != 3 || s.To() != 17 {
		t.Errorf("expected span (3…17), have %v", s)
	}
	if s.Len() != 14 {
		t.Errorf("expected span length 14, have %d", s.Len())
	}
	if s.String() != "(3…17)" {
		t.Errorf("unexpected string representation %q", s.String())
	}
}

func TestSpanUnsigned(t *testing.T) {
	s := MakeSpan[uint8](200, 10)
	if s.Len() != 190 {
		t.Errorf("expected span length 190, have %d", s.Len())
	}
}

func TestSpanLenBeyondValueType(t *testing.T) {
	if d := MakeSpan[int8](100, -100).Len(); d != 200 {
		t.Errorf("expected int8 span length 200, have %d", d)
	}
	if d := MakeSpan[int64](math.MinInt64, math.MaxInt64).Len(); d != math.MaxUint64 {
		t.Errorf("expected int64 span length %d, have %d", uint64(math.MaxUint64), d)
	}
}

func TestSliceIterator(t *testing.T) {
	values := []string{"a", "b", "c"}
	it := Slice(values)
	n := 0
	for it.Next() {
		if it.Index() != n {
			t.Errorf("expected index %d, have %d", n, it.Index())
		}
		if it.Value() != values[n] {
			t.Errorf("expected value %q at %d, have %q", values[n], n, it.Value())
		}
		n++
	}
	if n != len(values) {
		t.Errorf("expected %d iterations, have %d", len(values), n)
	}
	if it.Next() {
		t.Errorf("exhausted iterator should stay exhausted")
	}
}

func TestSliceIteratorEmpty(t *testing.T) {
	if Slice[int](nil).Next() {
		t.Errorf("iterator over nil slice should be empty")
	}
}

func TestWrapLinkedLists(t *testing.T) {
	dl := doublylinkedlist.New(3, 1, 4, 1, 5)
	dit := dl.Iterator()
	sum := 0
	for it := Wrap[int](&dit); it.Next(); {
		sum += it.Value()
	}
	if sum != 14 {
		t.Errorf("expected sum 14 over doubly linked list, have %d", sum)
	}
	sl := singlylinkedlist.New("x", "y")
	sit := sl.Iterator()
	it := Wrap[string](&sit)
	if !it.Next() || it.Value() != "x" || it.Index() != 0 {
		t.Errorf("expected first element x at 0")
	}
}
