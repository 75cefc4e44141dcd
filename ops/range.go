package ops

// CompareValuesAreInRange matches from <= v <= to. Swapped bounds are normalized.
func CompareValuesAreInRange[T Comparable](arr []T, from, to T, out []int) int {
	if from > to {
		from, to = to, from
	}

	filled := 0
	for i, v := range arr {
		if v >= from && v <= to {
			out[filled] = i
			filled++
		}
	}
	return filled
}
