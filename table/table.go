package table

import (
	"errors"
	"slices"

	"github.com/bobycv06fpm/news-credibility/schema"
	"github.com/google/uuid"
)

var (
	ErrInvalidWeights    = errors.New("invalid split weights")
	ErrInvalidPartitions = errors.New("invalid partitions count")
)

// Table is an immutable, partitioned collection of rows. Every operation
// returns a new table; partition slices may be shared between tables and
// must never be written to.
type Table struct {
	uid    uuid.UUID
	name   string
	schema schema.Schema

	partitions [][]Row
}

func New(name string, rows []Row) *Table {
	return NewPartitioned(name, [][]Row{rows})
}

func NewPartitioned(name string, partitions [][]Row) *Table {
	if len(partitions) == 0 {
		partitions = [][]Row{{}}
	}

	return &Table{
		uid:        uuid.New(),
		name:       name,
		schema:     schema.Extracted(name),
		partitions: partitions,
	}
}

func (t *Table) Uid() uuid.UUID {
	return t.uid
}

func (t *Table) Name() string {
	return t.name
}

func (t *Table) Schema() schema.Schema {
	return t.schema
}

// WithName returns the same rows under another name
func (t *Table) WithName(name string) *Table {
	return NewPartitioned(name, t.partitions)
}

func (t *Table) Count() int {
	total := 0
	for _, p := range t.partitions {
		total += len(p)
	}
	return total
}

func (t *Table) IsEmpty() bool {
	return t.Count() == 0
}

func (t *Table) NumPartitions() int {
	return len(t.partitions)
}

func (t *Table) Partition(idx int) []Row {
	return slices.Clone(t.partitions[idx])
}

// Rows returns a copy of all rows, partition after partition
func (t *Table) Rows() []Row {
	out := make([]Row, 0, t.Count())
	for _, p := range t.partitions {
		out = append(out, p...)
	}
	return out
}

func (t *Table) SizeBytes() int {
	total := 0
	for _, p := range t.partitions {
		for _, r := range p {
			total += r.SizeBytes()
		}
	}
	return total
}

// Union appends the partitions of others after the partitions of t
func (t *Table) Union(others ...*Table) *Table {
	partitions := slices.Clone(t.partitions)
	for _, o := range others {
		partitions = append(partitions, o.partitions...)
	}
	return NewPartitioned(t.name, partitions)
}

func (t *Table) Filter(pred func(Row) bool) *Table {
	partitions := make([][]Row, len(t.partitions))
	for idx, p := range t.partitions {
		kept := []Row{}
		for _, r := range p {
			if pred(r) {
				kept = append(kept, r)
			}
		}
		partitions[idx] = kept
	}
	return NewPartitioned(t.name, partitions)
}

// OrderBy collects all rows into one globally sorted partition.
// The sort is stable, rows comparing equal keep their union order.
func (t *Table) OrderBy(compare func(a, b Row) int) *Table {
	rows := t.Rows()
	slices.SortStableFunc(rows, compare)
	return New(t.name, rows)
}

func (t *Table) OrderByContent() *Table {
	return t.OrderBy(CompareByContent)
}

// Repartition cuts the row sequence into n contiguous ranges of near equal
// size, so reading partitions in order gives back the original order
func (t *Table) Repartition(n int) (*Table, error) {
	if n <= 0 {
		return nil, ErrInvalidPartitions
	}

	rows := t.Rows()
	partitions := make([][]Row, n)

	base := len(rows) / n
	extra := len(rows) % n
	start := 0

	for idx := range n {
		size := base
		if idx < extra {
			size++
		}
		partitions[idx] = rows[start : start+size : start+size]
		start += size
	}

	return NewPartitioned(t.name, partitions), nil
}
