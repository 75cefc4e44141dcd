package table

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func genRows(n int, label float64) []Row {
	rows := make([]Row, n)
	for i := range n {
		rows[i] = Row{Id: int32(i), Content: fmt.Sprintf("article %04d label %v", i, label), Label: label}
	}
	return rows
}

func contents(t *Table) []string {
	out := []string{}
	for _, r := range t.Rows() {
		out = append(out, r.Content)
	}
	return out
}

func TestRandomSplitIsDeterministic(t *testing.T) {
	source := New("unreliable", genRows(500, 0))

	first, err := source.RandomSplit([]float64{0.8, 0.2}, 11)
	require.NoError(t, err)

	second, err := source.RandomSplit([]float64{0.8, 0.2}, 11)
	require.NoError(t, err)

	require.Len(t, first, 2)
	for idx := range first {
		if diff := cmp.Diff(first[idx].Rows(), second[idx].Rows()); diff != "" {
			t.Errorf("split %d differs between runs (-first +second):\n%s", idx, diff)
		}
	}

	other, err := source.RandomSplit([]float64{0.8, 0.2}, 12)
	require.NoError(t, err)
	assert.NotEqual(t, contents(first[0]), contents(other[0]), "another seed should give another split")
}

func TestRandomSplitIgnoresInputOrder(t *testing.T) {
	rows := genRows(200, 1)

	reversed := make([]Row, len(rows))
	for i, r := range rows {
		reversed[len(rows)-1-i] = r
	}

	a, err := New("a", rows).RandomSplit([]float64{3, 1}, 11)
	require.NoError(t, err)
	b, err := New("b", reversed).RandomSplit([]float64{3, 1}, 11)
	require.NoError(t, err)

	assert.Equal(t, contents(a[0]), contents(b[0]))
	assert.Equal(t, contents(a[1]), contents(b[1]))
}

func TestRandomSplitIsDisjointAndComplete(t *testing.T) {
	source := New("credible", genRows(1000, 1))

	splits, err := source.RandomSplit([]float64{8, 2}, 11)
	require.NoError(t, err)

	seen := map[string]int{}
	for _, split := range splits {
		for _, c := range contents(split) {
			seen[c]++
		}
	}

	require.Len(t, seen, 1000)
	for c, n := range seen {
		require.Equal(t, 1, n, "row %q appears in more than one split", c)
	}

	// only the ratio matters
	fraction := float64(splits[0].Count()) / 1000
	assert.InDelta(t, 0.8, fraction, 0.05)
}

func TestRandomSplitWeightsErrors(t *testing.T) {
	source := New("x", genRows(10, 0))

	for _, weights := range [][]float64{nil, {0, 0}, {-1, 2}} {
		_, err := source.RandomSplit(weights, 11)
		assert.True(t, errors.Is(err, ErrInvalidWeights), "weights %v: %v", weights, err)
	}
}

func TestRandomSplitEmptyTable(t *testing.T) {
	splits, err := New("empty", nil).RandomSplit([]float64{0.8, 0.2}, 11)
	require.NoError(t, err)

	for _, s := range splits {
		assert.True(t, s.IsEmpty())
	}
}

func TestOrderByContentAndRepartition(t *testing.T) {
	rows := []Row{
		{Id: 1, Content: "delta"},
		{Id: 2, Content: "alpha"},
		{Id: 3, Content: "charlie"},
		{Id: 4, Content: "bravo"},
		{Id: 5, Content: "echo"},
	}

	sorted := New("t", rows[:2]).Union(New("u", rows[2:])).OrderByContent()

	parts, err := sorted.Repartition(3)
	require.NoError(t, err)

	assert.Equal(t, 3, parts.NumPartitions())
	assert.Equal(t, []string{"alpha", "bravo", "charlie", "delta", "echo"}, contents(parts))
	assert.Len(t, parts.Partition(0), 2)
	assert.Len(t, parts.Partition(2), 1)

	many, err := sorted.Repartition(10)
	require.NoError(t, err)
	assert.Equal(t, 10, many.NumPartitions())
	assert.Equal(t, 5, many.Count())
	assert.Equal(t, contents(parts), contents(many))

	_, err = sorted.Repartition(0)
	assert.True(t, errors.Is(err, ErrInvalidPartitions))
}

func TestFilterAndStats(t *testing.T) {
	rows := append(genRows(3, 0), genRows(1, 1)...)
	tbl := New("mixed", rows)

	credible := tbl.Filter(func(r Row) bool { return r.Label == 1 })
	assert.Equal(t, 1, credible.Count())

	stats := tbl.Stats()
	assert.Equal(t, 4, stats.Rows)
	assert.Equal(t, 3, stats.Labels[0])
	assert.InDelta(t, 0.25, stats.LabelFraction(1), 1e-9)
	assert.Equal(t, tbl.SizeBytes(), stats.SizeBytes)
	assert.Greater(t, stats.ContentLength.Max, 0)

	assert.Equal(t, 0.0, New("e", nil).Stats().LabelFraction(1))
}

func TestTableIdentity(t *testing.T) {
	tbl := New("a", genRows(2, 0))
	renamed := tbl.WithName("b")

	assert.Equal(t, "b", renamed.Name())
	assert.Equal(t, "b", renamed.Schema().Name)
	assert.NotEqual(t, tbl.Uid(), renamed.Uid())
	assert.Equal(t, tbl.Rows(), renamed.Rows())
}
