package table

import (
	"github.com/bobycv06fpm/news-credibility/ops"
)

type Stats struct {
	Rows       int
	Partitions int
	SizeBytes  int

	Labels        map[float64]int
	ContentLength ops.Bounds[int]
}

func (t *Table) Stats() Stats {
	labels := map[float64]int{}
	lengths := make([]int, 0, t.Count())

	for _, p := range t.partitions {
		for _, r := range p {
			labels[r.Label]++
			lengths = append(lengths, len([]rune(r.Content)))
		}
	}

	return Stats{
		Rows:          len(lengths),
		Partitions:    len(t.partitions),
		SizeBytes:     t.SizeBytes(),
		Labels:        labels,
		ContentLength: ops.GetMaxMin(lengths),
	}
}

// LabelFraction is the share of rows carrying label, 0 for an empty table
func (s Stats) LabelFraction(label float64) float64 {
	if s.Rows == 0 {
		return 0
	}
	return float64(s.Labels[label]) / float64(s.Rows)
}
