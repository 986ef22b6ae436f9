package list

import (
	"fmt"
	"reflect"

	"github.com/npillmayer/cons"
)

// InvalidArgumentError reports a value in list position which is not a
// list. Clients match it with errors.As.
type InvalidArgumentError struct {
	Value any
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("Argument must be list, but it was '%s'", describe(e.Value))
}

// EmptyListError reports element access on the empty list.
type EmptyListError struct {
	Op string
}

func (e *EmptyListError) Error() string {
	return fmt.Sprintf("cannot take %s of empty list", e.Op)
}

// OutOfRangeError reports a list index outside [0, length).
type OutOfRangeError struct {
	Index  int
	Length int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("index %d out of range for list of length %d", e.Index, e.Length)
}

// describe names a rejected value for error messages: non-list pairs as
// "pair: (…)", native aggregates as "array", everything else in its
// natural %v form.
func describe(v any) string {
	if p, ok := v.(*cons.Pair); ok && p != nil {
		return "pair: " + p.String()
	}
	if v != nil {
		switch reflect.TypeOf(v).Kind() {
		case reflect.Slice, reflect.Array:
			return "array"
		}
	}
	return fmt.Sprintf("%v", v)
}
