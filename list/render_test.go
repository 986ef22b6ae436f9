package list_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/cons"
	"github.com/npillmayer/cons/list"
)

// The exact rendering format is a compatibility contract, so these tests
// verify it verbatim.
func TestToStringContract(t *testing.T) {
	cases := []struct {
		name string
		v    any
		want string
	}{
		{"empty", list.L(), "()"},
		{"flat", list.L(1, 2, 3), "(1, 2, 3)"},
		{"nested list", list.L(1, list.L(3, 4), 5), "(1, (3, 4), 5)"},
		{"deeply nested", list.L(list.L(list.L(1))), "(((1)))"},
		{"set", list.S(3, 4, 3, 5, 5), "(4, 3, 5)"},
		{"stray pair", cons.Cons(1, cons.Cons(2, 3)), "pair: (1, (2, 3))"},
		{"pair element", list.L(1, cons.Cons(2, 3)), "(1, pair: (2, 3))"},
		{"raw value", 42, "42"},
		{"string value", "abc", "abc"},
	}
	for _, c := range cases {
		if diff := cmp.Diff(c.want, list.ToString(c.v)); diff != "" {
			t.Errorf("%s: rendering mismatch (-want +got):\n%s", c.name, diff)
		}
	}
}

func TestDump(t *testing.T) {
	out := list.Dump(list.L(1, list.L(2), 3))
	t.Logf("cell structure:\n%s", out)
	if !strings.Contains(out, "cons") {
		t.Error("expected dump to show cons cells, doesn't")
	}
	if !strings.Contains(out, "()") {
		t.Error("expected dump to show the terminal marker, doesn't")
	}
}
