package list

import (
	"github.com/benbjohnson/immutable"
	"github.com/npillmayer/cons"
)

// FromImmutable converts an immutable vector-backed list into a cons
// list, preserving element order.
func FromImmutable(imm *immutable.List) List {
	var lst List = Empty{}
	for i := imm.Len() - 1; i >= 0; i-- {
		lst = cons.Cons(imm.Get(i), lst)
	}
	return lst
}

// ToImmutable converts lst into an immutable vector-backed list,
// preserving element order.
func ToImmutable(lst List) (*immutable.List, error) {
	if err := CheckList(lst); err != nil {
		return nil, err
	}
	b := immutable.NewListBuilder(immutable.NewList())
	for cur := lst; ; {
		p, ok := cur.(*cons.Pair)
		if !ok {
			break
		}
		b.Append(p.Car())
		cur = p.Cdr()
	}
	return b.List(), nil
}
