package ops

// CompareValuesAreEqual writes indices of arr elements equal to cmp into out.
// out must be at least len(arr) long.
func CompareValuesAreEqual[T Comparable](arr []T, cmp T, out []int) int {
	n := len(arr)
	filled := 0
	i := 0

	for ; i+3 < n; i += 4 {

		im0 := b2i(arr[i+0] == cmp)
		im1 := b2i(arr[i+1] == cmp)
		im2 := b2i(arr[i+2] == cmp)
		im3 := b2i(arr[i+3] == cmp)

		out[filled] = i + 0
		filled += im0
		out[filled] = i + 1
		filled += im1
		out[filled] = i + 2
		filled += im2
		out[filled] = i + 3
		filled += im3
	}

	// tail
	for ; i < n; i++ {
		if arr[i] == cmp {
			out[filled] = i
			filled++
		}
	}
	return filled
}
