package list

import (
	"github.com/npillmayer/cons"
)

// Filter returns a new list holding the elements of lst for which pred is
// true, preserving their order. lst is left untouched.
func Filter(lst List, pred func(element any) bool) (List, error) {
	if err := CheckList(lst); err != nil {
		return nil, err
	}
	var kept []any
	for cur := lst; ; {
		p, ok := cur.(*cons.Pair)
		if !ok {
			break
		}
		if pred(p.Car()) {
			kept = append(kept, p.Car())
		}
		cur = p.Cdr()
	}
	return fromSlice(kept, Empty{}), nil
}

// Map returns a new list of the same length as lst, holding f applied to
// every element, order and position preserved.
func Map(lst List, f func(element any) any) (List, error) {
	if err := CheckList(lst); err != nil {
		return nil, err
	}
	var mapped []any
	for cur := lst; ; {
		p, ok := cur.(*cons.Pair)
		if !ok {
			break
		}
		mapped = append(mapped, f(p.Car()))
		cur = p.Cdr()
	}
	return fromSlice(mapped, Empty{}), nil
}

// Reduce folds lst from the left: acc = f(element, acc) for every element
// in order. With no initial value the fold starts from nil; an empty list
// returns the initial value unchanged.
func Reduce(lst List, f func(element, acc any) any, initial ...any) (any, error) {
	if err := CheckList(lst); err != nil {
		return nil, err
	}
	var acc any
	if len(initial) > 0 {
		acc = initial[0]
	}
	for cur := lst; ; {
		p, ok := cur.(*cons.Pair)
		if !ok {
			return acc, nil
		}
		acc = f(p.Car(), acc)
		cur = p.Cdr()
	}
}

// Reverse returns a new list with lst's elements in reverse order.
func Reverse(lst List) (List, error) {
	if err := CheckList(lst); err != nil {
		return nil, err
	}
	var rev List = Empty{}
	for cur := lst; ; {
		p, ok := cur.(*cons.Pair)
		if !ok {
			return rev, nil
		}
		rev = cons.Cons(p.Car(), rev)
		cur = p.Cdr()
	}
}

// Concat returns a new list of l1's elements followed by l2's elements.
// The result shares l2's entire structure; an empty l1 returns l2 itself,
// not a copy.
func Concat(l1, l2 List) (List, error) {
	if err := CheckList(l1); err != nil {
		return nil, err
	}
	if err := CheckList(l2); err != nil {
		return nil, err
	}
	if _, ok := l1.(Empty); ok {
		return l2, nil
	}
	var items []any
	for cur := l1; ; {
		p, ok := cur.(*cons.Pair)
		if !ok {
			break
		}
		items = append(items, p.Car())
		cur = p.Cdr()
	}
	tracer().Debugf("concat: re-chaining %d cells onto shared tail", len(items))
	return fromSlice(items, l2), nil
}
