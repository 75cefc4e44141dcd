package lists

import "math/bits"

// Bitset is a growable set of row indices
type Bitset []uint64

func NewBitset(size int) Bitset {
	return make(Bitset, (size+63)>>6)
}

func (b Bitset) Set(bit int) {
	word := bit >> 6 // bit / 64
	mask := uint64(1) << (bit & 63)
	b[word] |= mask
}

func (b Bitset) FromSorted(indices []int) {
	for _, bit := range indices {
		b.Set(bit)
	}
}

func (b Bitset) ToIndices(out []int) int {
	filled := 0
	for wi, w := range b {
		for w != 0 {
			tz := bits.TrailingZeros64(w)
			out[filled] = wi*64 + tz
			filled += 1
			w &= w - 1 // clear lowest set bit
		}
	}
	return filled
}

func (b Bitset) Count() int {
	c := 0
	for _, w := range b {
		c += bits.OnesCount64(w)
	}
	return c
}

func (b Bitset) Any() bool {
	for _, w := range b {
		if w != 0 {
			return true
		}
	}
	return false
}

// MergeAND intersects other into b in place
func (b Bitset) MergeAND(other Bitset) {
	for i := range b {
		if i < len(other) {
			b[i] &= other[i]
		} else {
			b[i] = 0
		}
	}
}
