package list

import (
	"fmt"
	"strings"

	"github.com/npillmayer/cons"
)

// ToString renders a value in the list notation of this package. This
// format is a compatibility contract:
//
//   - the empty list renders as "()"
//   - a list renders as "(e1, e2, …, en)" with every element rendered
//     recursively, so nested lists render as nested parenthesized forms
//   - a non-list pair renders as "pair: (…)"
//   - any other value renders in its natural %v form
//
// E.g. ToString(L(1, L(3, 4), 5)) yields "(1, (3, 4), 5)".
func ToString(v any) string {
	if !IsList(v) {
		if p, ok := v.(*cons.Pair); ok && p != nil {
			return "pair: " + p.String()
		}
		return fmt.Sprintf("%v", v)
	}
	var b strings.Builder
	b.WriteByte('(')
	first := true
	for cur := v; ; {
		p, ok := cur.(*cons.Pair)
		if !ok {
			break
		}
		if !first {
			b.WriteString(", ")
		}
		first = false
		b.WriteString(ToString(p.Car()))
		cur = p.Cdr()
	}
	b.WriteByte(')')
	return b.String()
}
