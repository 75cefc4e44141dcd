package udf

// TokenCount is the length of a token vector, never below 1 so it can be
// used as a divisor when normalizing bag-of-words vectors
func TokenCount(tokens []string) float64 {
	return max(1.0, float64(len(tokens)))
}
