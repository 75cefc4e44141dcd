package extract

import (
	"github.com/bobycv06fpm/news-credibility/manager/query"
	"github.com/bobycv06fpm/news-credibility/schema"
	"github.com/bobycv06fpm/news-credibility/udf"
)

// Spec describes how one source becomes an (id, content, label) table
type Spec struct {
	Name string
	Path string

	BodyColumn string

	Where   []query.FilterCondition
	OrderBy []query.Ordering
	Limit   int

	Label query.Selector
}

// ConstantLabel labels every row with the same value
func ConstantLabel(label float64) query.Selector {
	return query.Literal(label)
}

// CategoryLabel labels rows through categoryToLabel(column)
func CategoryLabel(column string) query.Selector {
	return query.Call(udf.CategoryToLabelFunction, query.Field(column))
}

// Query renders the spec as a structured query
func (s Spec) Query() query.Query {

	where := make([]query.FilterCondition, 0, len(s.Where)+1)
	where = append(where, query.NotBlank(s.BodyColumn))
	where = append(where, s.Where...)

	return query.NewBuilder().
		Select(
			query.Call(udf.GenerateIdFunction).As(schema.IdColumn),
			query.Field(s.BodyColumn).CastTo(schema.StringFieldType).As(schema.ContentColumn),
			s.Label.CastTo(schema.Float64FieldType).As(schema.LabelColumn),
		).
		Where(where...).
		OrderBy(s.OrderBy...).
		Limit(s.Limit).
		Build()
}
