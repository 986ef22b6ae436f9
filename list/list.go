package list

import (
	"github.com/npillmayer/cons"
	"github.com/npillmayer/cons/maybe"
)

// List documents the list position of this package's API. A valid list is
// either Empty{} or a *cons.Pair whose second slot is recursively a valid
// list. Any other value in list position is rejected at run-time with an
// *InvalidArgumentError.
type List = any

// Empty is the canonical terminal marker. All Empty values compare equal,
// so it behaves like a singleton.
type Empty struct{}

// String renders the empty list.
func (Empty) String() string {
	return "()"
}

// IsList is true if v is the empty marker, or a pair whose second slot
// recursively satisfies IsList. False for anything else, including pairs
// which do not terminate in Empty and typed nil *cons.Pair values, which
// Cons never produces.
func IsList(v any) bool {
	for {
		if _, ok := v.(Empty); ok {
			return true
		}
		p, ok := v.(*cons.Pair)
		if !ok || p == nil {
			return false
		}
		v = p.Cdr()
	}
}

// CheckList returns an *InvalidArgumentError when IsList(v) is false, nil
// otherwise. Every accessing operation of this package calls it on its
// list arguments and propagates the failure.
func CheckList(v any) error {
	if IsList(v) {
		return nil
	}
	return &InvalidArgumentError{Value: v}
}

// L builds a list from items, preserving their order. L() yields Empty{}.
func L(items ...any) List {
	return fromSlice(items, Empty{})
}

// Cons prepends item to lst. The result shares lst as its tail.
func Cons(item any, lst List) (List, error) {
	if err := CheckList(lst); err != nil {
		return nil, err
	}
	return cons.Cons(item, lst), nil
}

// Head returns the first element of lst. The head of the empty list fails
// with an *EmptyListError.
func Head(lst List) (any, error) {
	if err := CheckList(lst); err != nil {
		return nil, err
	}
	p, ok := lst.(*cons.Pair)
	if !ok {
		return nil, &EmptyListError{Op: "head"}
	}
	return p.Car(), nil
}

// Tail returns lst without its first element. The tail of the empty list
// fails with an *EmptyListError.
func Tail(lst List) (List, error) {
	if err := CheckList(lst); err != nil {
		return nil, err
	}
	p, ok := lst.(*cons.Pair)
	if !ok {
		return nil, &EmptyListError{Op: "tail"}
	}
	return p.Cdr(), nil
}

// First returns the head of lst as an optional value: Nothing for the
// empty list as well as for a non-list argument.
func First(lst List) maybe.Maybe[any] {
	if p, ok := lst.(*cons.Pair); ok && p != nil && IsList(p.Cdr()) {
		return maybe.Just(p.Car())
	}
	return maybe.Nothing[any]()
}

// IsEmpty is true iff lst is the empty list.
func IsEmpty(lst List) (bool, error) {
	if err := CheckList(lst); err != nil {
		return false, err
	}
	_, ok := lst.(Empty)
	return ok, nil
}

// Get returns the element of lst at 0-based index i. Indexes outside
// [0, length) fail with an *OutOfRangeError.
func Get(i int, lst List) (any, error) {
	if err := CheckList(lst); err != nil {
		return nil, err
	}
	if i < 0 {
		return nil, &OutOfRangeError{Index: i, Length: count(lst)}
	}
	cur := lst
	for n := 0; ; n++ {
		p, ok := cur.(*cons.Pair)
		if !ok {
			return nil, &OutOfRangeError{Index: i, Length: n}
		}
		if n == i {
			return p.Car(), nil
		}
		cur = p.Cdr()
	}
}

// Length returns the number of elements of lst.
func Length(lst List) (int, error) {
	if err := CheckList(lst); err != nil {
		return 0, err
	}
	return count(lst), nil
}

// Has is true iff element equals some element of lst under strict
// equality (see IsEqual).
func Has(lst List, element any) (bool, error) {
	if err := CheckList(lst); err != nil {
		return false, err
	}
	return has(lst, element), nil
}

// IsEqual compares two lists element-wise. Elements compare under strict
// equality: comparable values by ==, reference values (including nested
// lists and pairs) by identity, never by deep structural comparison.
// Values of an uncomparable kind without an identity, e.g. a struct
// holding a slice, are never equal, not even to themselves. Lists of
// different lengths are unequal.
func IsEqual(l1, l2 List) (bool, error) {
	if err := CheckList(l1); err != nil {
		return false, err
	}
	if err := CheckList(l2); err != nil {
		return false, err
	}
	for {
		p1, ok1 := l1.(*cons.Pair)
		p2, ok2 := l2.(*cons.Pair)
		if !ok1 || !ok2 {
			return ok1 == ok2, nil
		}
		if !strictEq(p1.Car(), p2.Car()) {
			return false, nil
		}
		l1, l2 = p1.Cdr(), p2.Cdr()
	}
}
