package cons

import "fmt"

// Pair is an immutable two-slot cell. Both slots may hold values of any
// type, including other pairs. Pairs are constructed by Cons and never
// change afterwards, so a *Pair may be shared freely between structures.
type Pair struct {
	first  any
	second any
}

// Cons creates a pair from two values. It never fails.
func Cons(a, b any) *Pair {
	return &Pair{first: a, second: b}
}

// Car returns the first slot of a pair.
func (p *Pair) Car() any {
	return p.first
}

// Cdr returns the second slot of a pair.
func (p *Pair) Cdr() any {
	return p.second
}

// Decompose returns both slots of a pair at once.
func (p *Pair) Decompose() (any, any) {
	return p.first, p.second
}

// IsPair is true iff v has been constructed by Cons. A typed nil *Pair
// is not a pair: Cons never produces one.
func IsPair(v any) bool {
	p, ok := v.(*Pair)
	return ok && p != nil
}

// String renders a pair as "(first, second)", recursing through nested
// pairs. Leaf values render in their natural %v form.
func (p *Pair) String() string {
	return fmt.Sprintf("(%s, %s)", render(p.first), render(p.second))
}

func render(v any) string {
	if p, ok := v.(*Pair); ok && p != nil {
		return p.String()
	}
	return fmt.Sprintf("%v", v)
}
