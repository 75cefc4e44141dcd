package lists

// IndiceUnmerged accumulates the row indices matched by each filter
// condition and keeps only rows matched by all of them.
type IndiceUnmerged struct {
	initialized bool

	size int

	ResultBitset Bitset
}

func NewUnmerged(size int) *IndiceUnmerged {
	return &IndiceUnmerged{
		size: size,
	}
}

// Reset prepares the merger for a new set of size rows, the bitset memory
// is kept when it is large enough
func (i *IndiceUnmerged) Reset(size int) {
	i.size = size
	i.initialized = false
}

func (i *IndiceUnmerged) With(input []int) {

	if !i.initialized {
		words := (i.size + 63) >> 6
		if cap(i.ResultBitset) < words {
			i.ResultBitset = NewBitset(i.size)
		} else {
			i.ResultBitset = i.ResultBitset[:words]
			clear(i.ResultBitset)
		}

		i.ResultBitset.FromSorted(input)
		i.initialized = true
		return
	}

	other := NewBitset(i.size)
	other.FromSorted(input)

	i.ResultBitset.MergeAND(other)
}

// Empty reports whether the merged conditions already exclude every row
func (i *IndiceUnmerged) Empty() bool {
	return i.initialized && !i.ResultBitset.Any()
}

// Result returns the merged indices in ascending order.
// Without any merge every row matches.
func (i *IndiceUnmerged) Result() []int {

	if !i.initialized {
		all := make([]int, i.size)
		for idx := range all {
			all[idx] = idx
		}
		return all
	}

	out := make([]int, i.ResultBitset.Count())
	i.ResultBitset.ToIndices(out)

	return out
}
