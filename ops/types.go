package ops

import "golang.org/x/exp/constraints"

// Comparable covers every vector element type a filter kernel can run on
type Comparable interface {
	constraints.Integer | constraints.Float | ~string
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
