package list

import (
	"github.com/npillmayer/cons"
)

// A "set" in this package is just a list guaranteed by construction to
// hold no duplicate elements under strict equality. There is no separate
// representation; S, Conj and Disj maintain the guarantee.

// S builds a list holding each distinct item exactly once. Items are
// folded from right to left, skipping items already present, so the
// result keeps the order of first occurrence among the de-duplicated
// input, e.g. S(3, 4, 3, 5, 5) renders as "(4, 3, 5)".
func S(items ...any) List {
	var lst List = Empty{}
	for i := len(items) - 1; i >= 0; i-- {
		if !has(lst, items[i]) {
			lst = cons.Cons(items[i], lst)
		}
	}
	return lst
}

// Conj returns lst itself if element is already present, otherwise a new
// list with element prepended.
func Conj(lst List, element any) (List, error) {
	if err := CheckList(lst); err != nil {
		return nil, err
	}
	if has(lst, element) {
		tracer().Debugf("conj: element already present, list unchanged")
		return lst, nil
	}
	return cons.Cons(element, lst), nil
}

// Disj returns a new list with every occurrence of element removed.
func Disj(lst List, element any) (List, error) {
	return Filter(lst, func(item any) bool {
		return !strictEq(item, element)
	})
}
