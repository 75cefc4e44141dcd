package table

import (
	"fmt"
	"math"
	"math/rand/v2"
	"slices"
)

// RandomSplit partitions the table into len(weights) disjoint tables.
// Split i receives about weights[i]/sum(weights) of the rows.
//
// Every partition is sorted on all row fields first, then a generator
// seeded with (seed, partition index) draws one uniform value per row and
// the row goes to the split whose cumulative weight range holds it.
// Same rows, weights and seed always give the same membership.
func (t *Table) RandomSplit(weights []float64, seed int64) ([]*Table, error) {

	if len(weights) == 0 {
		return nil, fmt.Errorf("no weights given: %w", ErrInvalidWeights)
	}

	total := 0.0
	for _, w := range weights {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, fmt.Errorf("weight %v is not a finite non negative number: %w", w, ErrInvalidWeights)
		}
		total += w
	}

	if total <= 0 {
		return nil, fmt.Errorf("weights sum to %v: %w", total, ErrInvalidWeights)
	}

	// cumulative upper bounds, last one pinned to 1
	bounds := make([]float64, len(weights))
	acc := 0.0
	for idx, w := range weights {
		acc += w
		bounds[idx] = acc / total
	}
	bounds[len(bounds)-1] = 1.0

	splitPartitions := make([][][]Row, len(weights))
	for idx := range splitPartitions {
		splitPartitions[idx] = make([][]Row, len(t.partitions))
	}

	for partitionIdx, partition := range t.partitions {

		sorted := slices.Clone(partition)
		slices.SortFunc(sorted, compareRowsTotal)

		rnd := rand.New(rand.NewPCG(uint64(seed), uint64(partitionIdx)))

		for _, row := range sorted {
			x := rnd.Float64()

			target := len(bounds) - 1
			for idx, upper := range bounds {
				if x < upper {
					target = idx
					break
				}
			}

			splitPartitions[target][partitionIdx] = append(splitPartitions[target][partitionIdx], row)
		}
	}

	result := make([]*Table, len(weights))
	for idx, partitions := range splitPartitions {
		for pIdx := range partitions {
			if partitions[pIdx] == nil {
				partitions[pIdx] = []Row{}
			}
		}
		result[idx] = NewPartitioned(fmt.Sprintf("%s_split_%d", t.name, idx), partitions)
	}

	return result, nil
}
