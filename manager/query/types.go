package query

import (
	"errors"

	"github.com/bobycv06fpm/news-credibility/schema"
)

var (
	ErrColumnNotFound   = errors.New("column not found")
	ErrFunctionNotFound = errors.New("function not found")
	ErrInvalidQuery     = errors.New("invalid query")
)

type (
	Ordering struct {
		Field      string
		Descending bool
	}

	Query struct {
		Select  []Selector
		Filter  []FilterCondition
		OrderBy []Ordering

		// 0 means no limit
		Limit int
	}

	QueryPlan struct {
		Source schema.Schema
		Output schema.Schema

		Select                []Selector
		FilterGroupedByFields []FilterGroupedRT
		OrderBy               []Ordering
		Limit                 int

		FilterSize int
	}
)

func Asc(field string) Ordering {
	return Ordering{Field: field}
}

func Desc(field string) Ordering {
	return Ordering{Field: field, Descending: true}
}
