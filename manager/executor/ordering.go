package executor

import (
	"cmp"
	"slices"
	"strings"

	"github.com/bobycv06fpm/news-credibility/manager/query"
	"github.com/bobycv06fpm/news-credibility/source"
	"github.com/tidwall/gjson"
)

// compareValues orders numbers numerically and anything else by its text.
// Nulls sort before any value.
func compareValues(a, b gjson.Result) int {

	aNull, bNull := source.IsNull(a), source.IsNull(b)

	switch {
	case aNull && bNull:
		return 0
	case aNull:
		return -1
	case bNull:
		return 1
	}

	if a.Type == gjson.Number && b.Type == gjson.Number {
		return cmp.Compare(a.Float(), b.Float())
	}

	return strings.Compare(a.String(), b.String())
}

// orderRows stable sorts row indices, rows equal on every key keep their
// source order. Descending keys put nulls last.
func orderRows(src *source.Source, indices []int, orderBy []query.Ordering) {

	if len(orderBy) == 0 {
		return
	}

	paths := make([]string, len(orderBy))
	for idx, it := range orderBy {
		paths[idx] = source.FieldPath(it.Field)
	}

	keys := make([][]gjson.Result, len(paths))
	for k, path := range paths {
		keys[k] = make([]gjson.Result, src.Count())
		for _, row := range indices {
			keys[k][row] = src.Records[row].Get(path)
		}
	}

	slices.SortStableFunc(indices, func(a, b int) int {
		for k, ordering := range orderBy {
			res := compareValues(keys[k][a], keys[k][b])
			if res == 0 {
				continue
			}
			if ordering.Descending {
				return -res
			}
			return res
		}
		return 0
	})
}
