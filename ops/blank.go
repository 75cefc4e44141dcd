package ops

import (
	"strings"
	"unicode"
)

// NonBlankStrings matches entries that are still non-empty after trimming
// surrounding whitespace
func NonBlankStrings(arr []string, out []int) int {
	filled := 0
	for i, v := range arr {
		if strings.TrimFunc(v, unicode.IsSpace) != "" {
			out[filled] = i
			filled++
		}
	}
	return filled
}

// Valid matches entries flagged as present (non null)
func Valid(valid []bool, out []int) int {
	filled := 0
	for i, v := range valid {
		out[filled] = i
		filled += b2i(v)
	}
	return filled
}
