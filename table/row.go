package table

import (
	"cmp"
	"strings"
)

type Row struct {
	Id      int32   `json:"id"`
	Content string  `json:"content"`
	Label   float64 `json:"label"`
}

// fixed part of a row: id + label
const rowFixedSize = 4 + 8

func (r Row) SizeBytes() int {
	return rowFixedSize + len(r.Content)
}

func CompareByContent(a, b Row) int {
	return strings.Compare(a.Content, b.Content)
}

// compareRowsTotal orders rows by every field, so equal keys can only come
// from fully identical rows
func compareRowsTotal(a, b Row) int {
	if c := strings.Compare(a.Content, b.Content); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Label, b.Label); c != 0 {
		return c
	}
	return cmp.Compare(a.Id, b.Id)
}
