package ops

import "golang.org/x/exp/constraints"

type Bounds[T constraints.Integer | constraints.Float] struct {
	Min T
	Max T
}

func (b *Bounds[T]) Morph(other Bounds[T]) {
	if other.Min < b.Min {
		b.Min = other.Min
	}
	if other.Max > b.Max {
		b.Max = other.Max
	}
}

// GetMaxMin returns zero bounds for an empty input
func GetMaxMin[T constraints.Integer | constraints.Float](arr []T) Bounds[T] {

	if len(arr) == 0 {
		return Bounds[T]{}
	}

	resultBounds := Bounds[T]{
		Min: arr[0],
		Max: arr[0],
	}

	for _, v := range arr[1:] {
		if v < resultBounds.Min {
			resultBounds.Min = v
		}
		if v > resultBounds.Max {
			resultBounds.Max = v
		}
	}
	return resultBounds
}
