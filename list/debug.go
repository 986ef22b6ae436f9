package list

import (
	"fmt"

	"github.com/npillmayer/cons"
	tp "github.com/xlab/treeprint"
)

// Dump draws the raw cell structure of v as an ASCII tree, intended for
// debugging and test logs. Unlike ToString it makes every cons cell
// visible, including the terminal Empty marker.
func Dump(v any) string {
	printer := tp.New()
	dumpValue(printer, v)
	return printer.String()
}

func dumpValue(printer tp.Tree, v any) {
	switch cell := v.(type) {
	case Empty:
		printer.AddNode("()")
	case *cons.Pair:
		if cell == nil {
			printer.AddNode("<nil>")
			return
		}
		branch := printer.AddBranch("cons")
		dumpValue(branch, cell.Car())
		dumpValue(branch, cell.Cdr())
	default:
		printer.AddNode(fmt.Sprintf("%v", v))
	}
}
