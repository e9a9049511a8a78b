package span

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/npillmayer/ctnr"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestSubjectExample(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ctnr.span")
	defer teardown()
	//
	sp := New[int](5)
	for _, n := range []int{6, 3, 17, 9, 11} {
		if err := sp.Add(n); err != nil {
			t.Fatal(err)
		}
	}
	if d, err := sp.Shortest(); err != nil || d != 2 {
		t.Errorf("expected shortest span 2, have %d (%v)", d, err)
	}
	if d, err := sp.Longest(); err != nil || d != 14 {
		t.Errorf("expected longest span 14, have %d (%v)", d, err)
	}
	if s, _ := sp.LongestSpan(); s != (ctnr.Span[int]{3, 17}) {
		t.Errorf("expected longest span (3…17), have %v", s)
	}
}

func TestCapacity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ctnr.span")
	defer teardown()
	//
	sp := New[int](3)
	for i := 0; i < 3; i++ {
		if err := sp.Add(i); err != nil {
			t.Fatalf("unexpected error for insertion #%d: %v", i, err)
		}
	}
	if err := sp.Add(42); !errors.Is(err, ctnr.ErrFull) {
		t.Errorf("expected capacity error, have %v", err)
	}
	if sp.Len() != 3 {
		t.Errorf("expected 3 numbers after failed insertion, have %d", sp.Len())
	}
	var zero Numbers[int]
	if err := zero.Add(1); !errors.Is(err, ctnr.ErrFull) {
		t.Errorf("zero collection should reject insertion, have %v", err)
	}
}

func TestAddRangeAllOrNothing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ctnr.span")
	defer teardown()
	//
	sp := New[int64](4)
	if err := sp.AddRange(1, 2); err != nil {
		t.Fatal(err)
	}
	if err := sp.AddRange(3, 4, 5); !errors.Is(err, ctnr.ErrFull) {
		t.Errorf("expected capacity error, have %v", err)
	}
	if sp.Len() != 2 {
		t.Errorf("failed AddRange must not store anything, have %d numbers", sp.Len())
	}
	if err := sp.AddRange(3, 4); err != nil {
		t.Errorf("expected exact fit to succeed, have %v", err)
	}
}

func TestTooFew(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ctnr.span")
	defer teardown()
	//
	sp := New[int](10)
	if _, err := sp.Shortest(); !errors.Is(err, ctnr.ErrTooFew) {
		t.Errorf("empty collection: expected error, have %v", err)
	}
	sp.Add(7)
	if _, err := sp.Longest(); !errors.Is(err, ctnr.ErrTooFew) {
		t.Errorf("singleton collection: expected error, have %v", err)
	}
	sp.Add(7)
	if d, err := sp.Longest(); err != nil || d != 0 {
		t.Errorf("two equal numbers: expected span 0, have %d (%v)", d, err)
	}
}

func TestAllEqual(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ctnr.span")
	defer teardown()
	//
	sp := New[int](6)
	sp.AddRange(-4, -4, -4, -4, -4, -4)
	short, _ := sp.Shortest()
	long, _ := sp.Longest()
	if short != 0 || long != 0 {
		t.Errorf("expected spans 0 and 0, have %d and %d", short, long)
	}
}

func TestShortestNotLongerThanLongest(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ctnr.span")
	defer teardown()
	//
	r := rand.New(rand.NewSource(4711))
	for round := 0; round < 50; round++ {
		n := 2 + r.Intn(40)
		sp := New[int](uint(n))
		for i := 0; i < n; i++ {
			sp.Add(r.Intn(2000) - 1000)
		}
		short, err1 := sp.Shortest()
		long, err2 := sp.Longest()
		if err1 != nil || err2 != nil {
			t.Fatalf("round %d: unexpected errors %v, %v", round, err1, err2)
		}
		if short > long {
			t.Errorf("round %d: expected %d ≤ %d", round, short, long)
		}
	}
}

func TestUnsigned(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ctnr.span")
	defer teardown()
	//
	sp := New[uint](3)
	sp.AddRange(10, 3, 250)
	if d, _ := sp.Shortest(); d != 7 {
		t.Errorf("expected shortest span 7, have %d", d)
	}
	if d, _ := sp.Longest(); d != 247 {
		t.Errorf("expected longest span 247, have %d", d)
	}
}

func TestQueryKeepsInsertionOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ctnr.span")
	defer teardown()
	//
	sp := New[int](3)
	sp.AddRange(9, 1, 5)
	sp.Shortest()
	v := sp.Values()
	if v[0] != 9 || v[1] != 1 || v[2] != 5 {
		t.Errorf("expected values [9 1 5], have %v", v)
	}
	c := sp.Clone()
	c.values[0] = 0
	if sp.Values()[0] != 9 {
		t.Errorf("clone should not share storage")
	}
	if sp.String() != "[3/3: 9 1 5 ]" {
		t.Errorf("unexpected string representation %q", sp.String())
	}
}

func TestNarrowTypeDistances(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ctnr.span")
	defer teardown()
	//
	sp := New[int8](3)
	sp.AddRange(-100, 0, 100)
	if d, err := sp.Shortest(); err != nil || d != 100 {
		t.Errorf("expected shortest span 100, have %d (%v)", d, err)
	}
	if d, err := sp.Longest(); err != nil || d != 200 {
		t.Errorf("expected longest span 200, have %d (%v)", d, err)
	}
	if s, _ := sp.LongestSpan(); s != (ctnr.Span[int8]{-100, 100}) {
		t.Errorf("expected longest span (-100…100), have %v", s)
	}
}

func TestExtremeDistances(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ctnr.span")
	defer teardown()
	//
	sp := New[int64](3)
	sp.AddRange(math.MaxInt64, math.MinInt64, 0)
	if d, _ := sp.Shortest(); d != math.MaxInt64 {
		t.Errorf("expected shortest span %d, have %d", int64(math.MaxInt64), d)
	}
	if d, _ := sp.Longest(); d != math.MaxUint64 {
		t.Errorf("expected longest span %d, have %d", uint64(math.MaxUint64), d)
	}
}

func TestHugeCapacity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ctnr.span")
	defer teardown()
	//
	sp := New[int](math.MaxUint)
	if sp.Cap() != math.MaxInt {
		t.Errorf("expected capacity to be reported as MaxInt, have %d", sp.Cap())
	}
	if err := sp.AddRange(1, 2, 3); err != nil {
		t.Errorf("expected insertion into huge collection to succeed, have %v", err)
	}
	if err := sp.Add(4); err != nil {
		t.Errorf("expected insertion into huge collection to succeed, have %v", err)
	}
}
