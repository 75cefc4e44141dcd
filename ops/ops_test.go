package ops

import (
	"math/rand/v2"
	"testing"
)

func TestRangeTail(t *testing.T) {
	input := []int64{1050, 9000, 2000}

	out := make([]int, len(input))

	resultSize := CompareValuesAreInRange(input, 1024, 8192, out)

	if resultSize != 2 {
		t.Errorf("Expected %d but got %d", 2, resultSize)
	} else if out[0] != 0 || out[1] != 2 {
		t.Errorf("Expected indices [0 2] but got %v", out[:resultSize])
	}
}

func TestRangeBlockAndTailFloat(t *testing.T) {
	input := []float64{0, 0, 0, 1, 0, 0, 0, 7000, 1500}

	out := make([]int, len(input))

	resultSize := CompareValuesAreInRange(input, 1024.0, 8192, out)

	if resultSize != 2 {
		t.Errorf("Expected %d but got %d. filtered : %v", 2, resultSize, out[:resultSize])
	} else if out[1] != 8 {
		t.Errorf("Expected last index %d but got %d", 8, out[1])
	}
}

func TestRangeSwappedBounds(t *testing.T) {
	input := []float64{1, 5, 10}
	out := make([]int, len(input))

	if n := CompareValuesAreInRange(input, 6, 4, out); n != 1 || out[0] != 1 {
		t.Errorf("Expected only index 1, got %v", out[:n])
	}
}

func TestEqualUnrolledAndTail(t *testing.T) {
	input := []string{"a", "b", "a", "a", "c", "a", "b"}
	out := make([]int, len(input))

	n := CompareValuesAreEqual(input, "a", out)

	expected := []int{0, 2, 3, 5}
	if n != len(expected) {
		t.Fatalf("Expected %d matches but got %d", len(expected), n)
	}
	for idx, v := range expected {
		if out[idx] != v {
			t.Errorf("match %d: expected %d but got %d", idx, v, out[idx])
		}
	}
}

func TestBiggerSmaller(t *testing.T) {
	input := []float64{3, 1, 4, 1, 5, 9, 2, 6}
	out := make([]int, len(input))

	if n := CompareValuesAreBigger(input, 4, out); n != 3 {
		t.Errorf("Expected 3 values above 4, got %v", out[:n])
	}

	if n := CompareValuesAreSmaller(input, 2, out); n != 2 || out[0] != 1 || out[1] != 3 {
		t.Errorf("Expected indices [1 3] below 2, got %v", out[:n])
	}
}

func TestNonBlankStrings(t *testing.T) {
	input := []string{"", "  ", "\t\n", "text", " padded ", " "}
	out := make([]int, len(input))

	n := NonBlankStrings(input, out)

	if n != 2 || out[0] != 3 || out[1] != 4 {
		t.Errorf("Expected indices [3 4], got %v", out[:n])
	}
}

func TestValid(t *testing.T) {
	valid := []bool{true, false, false, true, true}
	out := make([]int, len(valid))

	n := Valid(valid, out)

	if n != 3 || out[0] != 0 || out[1] != 3 || out[2] != 4 {
		t.Errorf("Expected indices [0 3 4], got %v", out[:n])
	}
}

func TestMinMax(t *testing.T) {
	input := []float64{0, 7000, 1, 2, 3, 4, 5, 6, 0}

	result := GetMaxMin(input)

	if result.Max != 7000 {
		t.Errorf("Expected %v but got %v", 7000, result.Max)
	}
	if result.Min != 0 {
		t.Errorf("Expected %v but got %v", 0, result.Min)
	}
}

func TestMinMaxEmpty(t *testing.T) {
	result := GetMaxMin([]int{})
	if result.Min != 0 || result.Max != 0 {
		t.Errorf("Expected zero bounds, got %+v", result)
	}
}

func TestBoundsMorph(t *testing.T) {
	b := Bounds[int]{Min: 5, Max: 10}
	b.Morph(Bounds[int]{Min: 2, Max: 8})
	b.Morph(Bounds[int]{Min: 6, Max: 20})

	if b.Min != 2 || b.Max != 20 {
		t.Errorf("Expected [2, 20], got %+v", b)
	}
}

func BenchmarkRangeFloats(b *testing.B) {
	size := 40000

	input := make([]float64, size)
	for i := range size {
		input[i] = float64(rand.IntN(50000))
	}

	out := make([]int, size)

	for b.Loop() {
		CompareValuesAreInRange(input, 1024, 8192, out)
	}
}

func BenchmarkEqualStrings(b *testing.B) {
	size := 40000
	words := []string{"politics", "sport", "lifestyle", "economy"}

	input := make([]string, size)
	for i := range size {
		input[i] = words[rand.IntN(len(words))]
	}

	out := make([]int, size)

	for b.Loop() {
		CompareValuesAreEqual(input, "lifestyle", out)
	}
}

func BenchmarkMinMaxRand(b *testing.B) {
	size := 40000

	input := make([]int64, size)
	for i := range size {
		input[i] = rand.Int64N(50000)
	}

	var result Bounds[int64]

	for b.Loop() {
		result = GetMaxMin(input)
	}

	b.Logf("min : %d, max : %d", result.Min, result.Max)
}
