/*
Package list implements a persistent singly-linked list, built exclusively
from cons pairs, together with a rich set of derived operations:
construction, predicates, equality, membership, transformation, folding,
concatenation, random access and set semantics (conj/disj over lists
without duplicates).

A list is either the empty marker Empty{}, or a *cons.Pair whose second
slot is itself a list. Whether an arbitrary value is a list therefore is a
runtime structural property, not a static type: every operation accepts
any value in list position and rejects non-lists with an
*InvalidArgumentError.

Lists are never mutated after construction. Every "modifying" operation
(Cons, Map, Filter, Conj, Disj, Concat, Reverse) returns a new list and
shares as much of its operands' structure as possible, leaving the inputs
untouched. This makes copies cheap and all list values safe for concurrent
readers.

All traversals iterate over the cell chain instead of recursing per
element, so very long lists do not exhaust the stack.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package list

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cons.list'.
func tracer() tracing.Trace {
	return tracing.Select("cons.list")
}
