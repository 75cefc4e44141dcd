package query

import (
	"errors"
	"testing"

	"github.com/bobycv06fpm/news-credibility/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type functionsStub map[string]schema.FieldType

func (f functionsStub) ReturnType(name string) (schema.FieldType, bool) {
	typ, ok := f[name]
	return typ, ok
}

var testFunctions = functionsStub{
	"generateId":      schema.Int32FieldType,
	"categoryToLabel": schema.Float64FieldType,
}

func newsSchema() schema.Schema {
	return schema.New("news",
		schema.SchemaColumn{Name: "DatePublished", Type: schema.StringFieldType},
		schema.SchemaColumn{Name: "category", Type: schema.StringFieldType, Nullable: true},
		schema.SchemaColumn{Name: "content", Type: schema.StringFieldType, Nullable: true},
		schema.SchemaColumn{Name: "views", Type: schema.Int64FieldType},
	)
}

func TestPlanExtractionQuery(t *testing.T) {
	q := NewBuilder().
		Select(
			Call("generateId").As("id"),
			Field("content").As("content"),
			Call("categoryToLabel", Field("category")).CastTo(schema.Float64FieldType).As("label"),
		).
		Where(NotBlank("content"), Gt("views", 10), Lt("views", 100)).
		OrderBy(Desc("DatePublished")).
		Limit(5).
		Build()

	plan, err := NewQueryPlanner().Plan(q, newsSchema(), testFunctions)
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "content", "label"}, plan.Output.ColumnNames())
	assert.Equal(t, schema.Int32FieldType, plan.Output.Columns[0].Type)
	assert.Equal(t, schema.StringFieldType, plan.Output.Columns[1].Type)
	assert.Equal(t, schema.Float64FieldType, plan.Output.Columns[2].Type)

	require.Len(t, plan.FilterGroupedByFields, 2)
	assert.Equal(t, "content", plan.FilterGroupedByFields[0].FieldName)
	assert.Equal(t, "views", plan.FilterGroupedByFields[1].FieldName)
	assert.Len(t, plan.FilterGroupedByFields[1].Conditions, 2)
	assert.Equal(t, 3, plan.FilterGroupedByFields[1].ColumnIdx)
	assert.Equal(t, 3, plan.FilterSize)
	assert.Equal(t, 5, plan.Limit)
}

func TestPlanErrors(t *testing.T) {
	planner := NewQueryPlanner()
	src := newsSchema()

	cases := []struct {
		name     string
		query    Query
		expected error
	}{
		{"empty select", Query{}, ErrInvalidQuery},
		{"missing select column", NewBuilder().Select(Field("BodyText")).Build(), ErrColumnNotFound},
		{"missing filter column", NewBuilder().Select(Field("content")).Where(NotBlank("BodyText")).Build(), ErrColumnNotFound},
		{"missing order column", NewBuilder().Select(Field("content")).OrderBy(Asc("nope")).Build(), ErrColumnNotFound},
		{"unknown function", NewBuilder().Select(Call("tokenize").As("x")).Build(), ErrFunctionNotFound},
		{"function over missing column", NewBuilder().Select(Call("categoryToLabel", Field("nope")).As("x")).Build(), ErrColumnNotFound},
		{"no alias", NewBuilder().Select(Literal(1.0)).Build(), ErrInvalidQuery},
		{"duplicate alias", NewBuilder().Select(Field("content"), Literal("x").As("content")).Build(), ErrInvalidQuery},
		{"negative limit", NewBuilder().Select(Field("content")).Limit(-1).Build(), ErrInvalidQuery},
		{"range arity", NewBuilder().Select(Field("content")).Where(FilterCondition{Field: "views", Operand: RANGE, Arguments: []any{1}}).Build(), ErrInvalidQuery},
		{"bad argument", NewBuilder().Select(Field("content")).Where(Eq("views", []int{1})).Build(), ErrInvalidQuery},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := planner.Plan(c.query, src, testFunctions)
			require.Error(t, err)
			assert.True(t, errors.Is(err, c.expected), "got %v", err)
		})
	}
}

func TestSelectorString(t *testing.T) {
	s := Call("categoryToLabel", Field("category")).CastTo(schema.Float64FieldType).As("label")
	assert.Equal(t, "CAST(categoryToLabel(category) AS double) AS label", s.String())

	assert.Equal(t, []string{"category"}, s.Fields())
	assert.Equal(t, "label", s.OutputName())
	assert.Equal(t, "content", Field("content").OutputName())
}

func TestFilterArguments(t *testing.T) {
	f := Range("views", int32(1), 2.5)

	require.NoError(t, f.Validate())
	assert.True(t, f.IsNumeric())

	v, ok := f.ArgumentFloatValue(0)
	assert.True(t, ok)
	assert.Equal(t, 1.0, v)

	assert.False(t, Eq("category", "Политика").IsNumeric())
	assert.Equal(t, "Политика", Eq("category", "Политика").ArgumentStringValue(0))
}
