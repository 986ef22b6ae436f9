package list

import (
	"fmt"
	"reflect"

	"github.com/npillmayer/cons"
)

// fromSlice builds a list over tail, prepending items from right to left.
func fromSlice(items []any, tail List) List {
	lst := tail
	for i := len(items) - 1; i >= 0; i-- {
		lst = cons.Cons(items[i], lst)
	}
	return lst
}

// count assumes lst already passed CheckList.
func count(lst List) int {
	n := 0
	for {
		p, ok := lst.(*cons.Pair)
		if !ok {
			return n
		}
		n++
		lst = p.Cdr()
	}
}

// has assumes lst already passed CheckList.
func has(lst List, element any) bool {
	for {
		p, ok := lst.(*cons.Pair)
		if !ok {
			return false
		}
		if strictEq(p.Car(), element) {
			return true
		}
		lst = p.Cdr()
	}
}

// strictEq implements strict equality: values of different dynamic types
// are unequal, comparable values compare with ==, and reference kinds
// (slices, maps, funcs) compare by identity. Nested lists and pairs are
// *cons.Pair pointers and thus compare by identity, too. Uncomparable
// kinds without an identity (e.g. structs holding slices) are never
// equal.
func strictEq(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	if ta.Comparable() {
		return a == b
	}
	switch ta.Kind() {
	case reflect.Slice, reflect.Map, reflect.Func:
		return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
	}
	return false
}

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("list: "+msg, msgargs...)
		panic(msg)
	}
}
