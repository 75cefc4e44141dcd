package ops

func CompareValuesAreBigger[T Comparable](arr []T, cmp T, out []int) int {
	filled := 0
	for i, v := range arr {
		if v > cmp {
			out[filled] = i
			filled++
		}
	}
	return filled
}
