package list

import (
	"fmt"
	"hash"

	"github.com/npillmayer/cons"
	"github.com/spaolacci/murmur3"
)

// Hash computes a murmur3 hash over the cell structure of v. Lists which
// are IsEqual and hold comparable leaf values hash identically; lists
// with different elements will hash differently with very high
// probability. Leaf values feed the hash in their %v form.
func Hash(v any) uint32 {
	h := murmur3.New32()
	hashValue(h, v)
	return h.Sum32()
}

func hashValue(h hash.Hash32, v any) {
	for {
		switch cell := v.(type) {
		case Empty:
			h.Write([]byte{0})
			return
		case *cons.Pair:
			if cell == nil {
				h.Write([]byte{2})
				fmt.Fprintf(h, "%v", cell)
				return
			}
			h.Write([]byte{1})
			hashValue(h, cell.Car())
			v = cell.Cdr() // iterate the spine, recurse only into heads
		default:
			h.Write([]byte{2})
			fmt.Fprintf(h, "%v", v)
			return
		}
	}
}
