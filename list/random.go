package list

import (
	"math/rand"
)

// Option is a type to help configuring operations with tunable behavior.
type Option struct {
	config func(props) props
}

type props struct {
	rng *rand.Rand
}

// Source is an option to substitute the random-number source used by
// Random, e.g. a seeded deterministic source in tests.
//
// Use it like this:
//
//     e, err := list.Random(lst, list.Source(rand.New(rand.NewSource(42))))
//
// Without this option Random draws from the process-wide source.
func Source(rng *rand.Rand) Option {
	conf := func(p props) props {
		p.rng = rng
		return p
	}
	return Option{config: conf}
}

// Random returns a uniformly chosen element of lst. Choosing from the
// empty list fails with an *EmptyListError.
func Random(lst List, opts ...Option) (any, error) {
	if err := CheckList(lst); err != nil {
		return nil, err
	}
	var p props
	for _, option := range opts {
		p = option.config(p)
	}
	n := count(lst)
	if n == 0 {
		return nil, &EmptyListError{Op: "random element"}
	}
	var i int
	if p.rng != nil {
		i = p.rng.Intn(n)
	} else {
		i = rand.Intn(n)
	}
	tracer().Debugf("random: picked index %d of %d", i, n)
	e, err := Get(i, lst)
	assertThat(err == nil, "inconsistency: index %d expected to be valid for length %d", i, n)
	return e, nil
}
