package list_test

import (
	"testing"

	"github.com/npillmayer/cons/list"
)

func TestFilter(t *testing.T) {
	lst := list.L(1, 2, 3, 4, 5)
	odd, err := list.Filter(lst, func(e any) bool {
		return e.(int)%2 == 1
	})
	if err != nil {
		t.Fatalf("Filter failed: %v", err)
	}
	if list.ToString(odd) != "(1, 3, 5)" {
		t.Errorf("expected odd elements (1, 3, 5), got %s", list.ToString(odd))
	}
	if list.ToString(lst) != "(1, 2, 3, 4, 5)" {
		t.Error("expected Filter to leave its input untouched, didn't")
	}
}

func TestFilterAllAndNone(t *testing.T) {
	lst := list.L(1, 2, 3)
	all, err := list.Filter(lst, func(any) bool { return true })
	if err != nil {
		t.Fatalf("Filter failed: %v", err)
	}
	if eq, _ := list.IsEqual(all, lst); !eq {
		t.Error("expected filter with always-true to equal the input, doesn't")
	}
	none, err := list.Filter(lst, func(any) bool { return false })
	if err != nil {
		t.Fatalf("Filter failed: %v", err)
	}
	if empty, _ := list.IsEmpty(none); !empty {
		t.Error("expected filter with always-false to be empty, isn't")
	}
}

func TestMap(t *testing.T) {
	lst := list.L(1, 2, 3)
	doubled, err := list.Map(lst, func(e any) any {
		return e.(int) * 2
	})
	if err != nil {
		t.Fatalf("Map failed: %v", err)
	}
	if list.ToString(doubled) != "(2, 4, 6)" {
		t.Errorf("expected (2, 4, 6), got %s", list.ToString(doubled))
	}
}

func TestMapIdentity(t *testing.T) {
	lst := list.L("x", "y")
	same, err := list.Map(lst, func(e any) any { return e })
	if err != nil {
		t.Fatalf("Map failed: %v", err)
	}
	if eq, _ := list.IsEqual(same, lst); !eq {
		t.Error("expected map with identity to equal the input, doesn't")
	}
}

func TestReduce(t *testing.T) {
	sum, err := list.Reduce(list.L(1, 2, 3), func(e, acc any) any {
		return e.(int) + acc.(int)
	}, 0)
	if err != nil {
		t.Fatalf("Reduce failed: %v", err)
	}
	if sum != 6 {
		t.Errorf("expected sum of L(1,2,3) to be 6, is %v", sum)
	}
}

func TestReduceEmpty(t *testing.T) {
	got, err := list.Reduce(list.L(), func(e, acc any) any {
		t.Error("fold function must not be called for the empty list")
		return nil
	}, "seed")
	if err != nil {
		t.Fatalf("Reduce failed: %v", err)
	}
	if got != "seed" {
		t.Errorf("expected reduce of empty list to return the initial value, returned %v", got)
	}
	got, err = list.Reduce(list.L(), func(e, acc any) any { return nil })
	if err != nil || got != nil {
		t.Errorf("expected reduce of empty list without initial value to be nil, is %v", got)
	}
}

func TestReduceFoldsLeftToRight(t *testing.T) {
	concat, err := list.Reduce(list.L("a", "b", "c"), func(e, acc any) any {
		return acc.(string) + e.(string)
	}, "")
	if err != nil {
		t.Fatalf("Reduce failed: %v", err)
	}
	if concat != "abc" {
		t.Errorf("expected left fold to produce \"abc\", produced %v", concat)
	}
}

func TestReverse(t *testing.T) {
	rev, err := list.Reverse(list.L(1, 2, 3))
	if err != nil {
		t.Fatalf("Reverse failed: %v", err)
	}
	if list.ToString(rev) != "(3, 2, 1)" {
		t.Errorf("expected (3, 2, 1), got %s", list.ToString(rev))
	}
}

func TestReverseTwiceIsIdentity(t *testing.T) {
	lst := list.L(1, 2, 3, 4)
	rev, err := list.Reverse(lst)
	if err != nil {
		t.Fatalf("Reverse failed: %v", err)
	}
	back, err := list.Reverse(rev)
	if err != nil {
		t.Fatalf("Reverse failed: %v", err)
	}
	if eq, _ := list.IsEqual(back, lst); !eq {
		t.Error("expected reverse(reverse(xs)) to equal xs, doesn't")
	}
}

func TestConcat(t *testing.T) {
	got, err := list.Concat(list.L(3, 4, 5, 8), list.L(3, 2, 9))
	if err != nil {
		t.Fatalf("Concat failed: %v", err)
	}
	if list.ToString(got) != "(3, 4, 5, 8, 3, 2, 9)" {
		t.Errorf("expected (3, 4, 5, 8, 3, 2, 9), got %s", list.ToString(got))
	}
}

func TestConcatLengths(t *testing.T) {
	xs, ys := list.L(1, 2), list.L(3, 4, 5)
	got, err := list.Concat(xs, ys)
	if err != nil {
		t.Fatalf("Concat failed: %v", err)
	}
	n, _ := list.Length(got)
	nx, _ := list.Length(xs)
	ny, _ := list.Length(ys)
	if n != nx+ny {
		t.Errorf("expected concat length %d, is %d", nx+ny, n)
	}
}

func TestConcatEmptyLeftIsIdentity(t *testing.T) {
	ys := list.L(1, 2)
	got, err := list.Concat(list.L(), ys)
	if err != nil {
		t.Fatalf("Concat failed: %v", err)
	}
	if got != ys {
		t.Error("expected concat with empty left operand to return the right operand itself, doesn't")
	}
}

func TestConcatEmptyRight(t *testing.T) {
	xs := list.L(1, 2)
	got, err := list.Concat(xs, list.L())
	if err != nil {
		t.Fatalf("Concat failed: %v", err)
	}
	if eq, _ := list.IsEqual(got, xs); !eq {
		t.Error("expected concat with empty right operand to equal the left operand, doesn't")
	}
}

func TestConcatSharesRightOperand(t *testing.T) {
	ys := list.L(8, 9)
	got, err := list.Concat(list.L(1), ys)
	if err != nil {
		t.Fatalf("Concat failed: %v", err)
	}
	tail, err := list.Tail(got)
	if err != nil {
		t.Fatalf("Tail failed: %v", err)
	}
	if tail != ys {
		t.Error("expected concat result to share the right operand's cells, doesn't")
	}
}
