package lists

import (
	"math/rand/v2"
	"slices"
	"testing"
)

func randomFillIndices(n int, fillPercent int) []int {
	out := make([]int, 0, n*fillPercent/100)
	for i := 0; i < n; i++ {
		if rand.IntN(100) < fillPercent {
			out = append(out, i)
		}
	}
	return out
}

func slowIntersect(a, b []int) []int {
	out := []int{}
	for _, v := range a {
		if slices.Contains(b, v) {
			out = append(out, v)
		}
	}
	return out
}

func TestMergeIsCorrect(t *testing.T) {
	size := 4000

	input := randomFillIndices(size, 35)
	input2 := randomFillIndices(size, 30)

	merger := NewUnmerged(size)
	merger.With(input)
	merger.With(input2)

	expected := slowIntersect(input, input2)
	result := merger.Result()

	if !slices.Equal(expected, result) {
		t.Errorf("merge mismatch: expected %d items, got %d", len(expected), len(result))
	}
}

func TestUnmergedWithoutInputsKeepsAll(t *testing.T) {
	merger := NewUnmerged(5)

	result := merger.Result()
	if !slices.Equal(result, []int{0, 1, 2, 3, 4}) {
		t.Errorf("Expected every row, got %v", result)
	}
}

func TestUnmergedResetReusesMemory(t *testing.T) {
	merger := NewUnmerged(200)
	merger.With([]int{1, 2, 150, 199})
	merger.With([]int{2, 150})

	merger.Reset(100)
	if merger.Empty() {
		t.Errorf("Expected a fresh merger after reset")
	}
	if result := merger.Result(); len(result) != 100 {
		t.Errorf("Expected every row of the new size, got %d", len(result))
	}

	merger.With([]int{7, 99})
	if result := merger.Result(); !slices.Equal(result, []int{7, 99}) {
		t.Errorf("Expected [7 99], got %v", result)
	}

	merger.Reset(300)
	merger.With([]int{250})
	if result := merger.Result(); !slices.Equal(result, []int{250}) {
		t.Errorf("Expected [250], got %v", result)
	}
}

func TestUnmergedEmptyInputMatchesNothing(t *testing.T) {
	merger := NewUnmerged(10)
	merger.With([]int{1, 2, 3})
	merger.With([]int{})

	if result := merger.Result(); len(result) != 0 {
		t.Errorf("Expected no rows, got %v", result)
	}
}

func TestBitset(t *testing.T) {
	b := NewBitset(130)
	b.FromSorted([]int{0, 63, 64, 129})

	if b.Count() != 4 {
		t.Errorf("Expected 4 bits, got %d", b.Count())
	}

	out := make([]int, 130)
	n := b.ToIndices(out)

	if !slices.Equal(out[:n], []int{0, 63, 64, 129}) {
		t.Errorf("Expected [0 63 64 129], got %v", out[:n])
	}

	short := NewBitset(70)
	short.FromSorted([]int{0, 1, 64})
	b.MergeAND(short)
	if b.Count() != 2 {
		t.Errorf("Expected 2 common bits, got %d", b.Count())
	}

	empty := NewBitset(64)
	if empty.Any() || !b.Any() {
		t.Errorf("unexpected Any result")
	}
}

func TestUnmergedEmpty(t *testing.T) {
	merger := NewUnmerged(10)
	if merger.Empty() {
		t.Errorf("Expected no verdict before any merge")
	}

	merger.With([]int{1, 2})
	merger.With([]int{3})
	if !merger.Empty() {
		t.Errorf("Expected disjoint inputs to exclude every row")
	}
}

func BenchmarkMergeRandSparse(b *testing.B) {
	size := 4000

	input := randomFillIndices(size, 35)
	input2 := randomFillIndices(size, 30)

	merger := NewUnmerged(size)

	for b.Loop() {
		merger.Reset(size)
		merger.With(input)
		merger.With(input2)
		merger.Result()
	}
}
