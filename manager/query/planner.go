package query

import (
	"fmt"
	"slices"
	"strings"

	"github.com/bobycv06fpm/news-credibility/schema"
)

// FunctionLookup resolves the declared return type of a registered function
type FunctionLookup interface {
	ReturnType(name string) (schema.FieldType, bool)
}

type QueryPlanner struct {
}

func NewQueryPlanner() *QueryPlanner {
	return &QueryPlanner{}
}

func (qp *QueryPlanner) Plan(
	queryData Query,
	source schema.Schema,
	functions FunctionLookup,
) (QueryPlan, error) {

	if len(queryData.Select) == 0 {
		return QueryPlan{}, fmt.Errorf("nothing selected: %w", ErrInvalidQuery)
	}

	if queryData.Limit < 0 {
		return QueryPlan{}, fmt.Errorf("negative limit %d: %w", queryData.Limit, ErrInvalidQuery)
	}

	// check fields before filtering data
	for _, filter := range queryData.Filter {
		if err := filter.Validate(); err != nil {
			return QueryPlan{}, err
		}

		if !source.HasColumn(filter.Field) {
			return QueryPlan{}, fmt.Errorf("filter column `%v` not found on schema `%v`: %w", filter.Field, source.Name, ErrColumnNotFound)
		}
	}

	for _, ordering := range queryData.OrderBy {
		if !source.HasColumn(ordering.Field) {
			return QueryPlan{}, fmt.Errorf("order column `%v` not found on schema `%v`: %w", ordering.Field, source.Name, ErrColumnNotFound)
		}
	}

	outputColumns := make([]schema.SchemaColumn, 0, len(queryData.Select))
	seen := map[string]bool{}

	for _, selector := range queryData.Select {

		name := selector.OutputName()
		if name == "" {
			return QueryPlan{}, fmt.Errorf("selector `%s` needs an alias: %w", selector.String(), ErrInvalidQuery)
		}

		if seen[name] {
			return QueryPlan{}, fmt.Errorf("duplicate output column `%s`: %w", name, ErrInvalidQuery)
		}
		seen[name] = true

		typ, nullable, typeErr := qp.resolveType(selector, source, functions)
		if typeErr != nil {
			return QueryPlan{}, typeErr
		}

		outputColumns = append(outputColumns, schema.SchemaColumn{
			Name:     name,
			Type:     typ,
			Nullable: nullable,
		})
	}

	// group filters by columns
	filtersByColumns := map[string][]FilterCondition{}
	for _, filter := range queryData.Filter {
		filtersByColumns[filter.Field] = append(filtersByColumns[filter.Field], filter)
	}

	filterByColumnsArray := []FilterGroupedRT{}
	for fname, it := range filtersByColumns {

		// all fields exist, as they were checked above
		columnInfo, columnIdx, _ := source.Column(fname)

		filterByColumnsArray = append(filterByColumnsArray, FilterGroupedRT{
			FieldName:        fname,
			Conditions:       it,
			ColumnSchemaInfo: &columnInfo,
			ColumnIdx:        columnIdx,
		})
	}

	// sort by name
	// for consistency of results
	slices.SortStableFunc(filterByColumnsArray, func(a, b FilterGroupedRT) int {
		return strings.Compare(a.FieldName, b.FieldName)
	})

	return QueryPlan{
		Source:                source,
		Output:                schema.New(source.Name, outputColumns...),
		Select:                queryData.Select,
		FilterGroupedByFields: filterByColumnsArray,
		OrderBy:               queryData.OrderBy,
		Limit:                 queryData.Limit,
		FilterSize:            len(queryData.Filter),
	}, nil
}

func (qp *QueryPlanner) resolveType(selector Selector, source schema.Schema, functions FunctionLookup) (schema.FieldType, bool, error) {

	var typ schema.FieldType
	nullable := false

	switch selector.Type {
	case SelectField:
		column, _, ok := source.Column(selector.Name)
		if !ok {
			return 0, false, fmt.Errorf("column `%v` not found on schema `%v`: %w", selector.Name, source.Name, ErrColumnNotFound)
		}
		typ = column.Type
		nullable = column.Nullable

	case SelectLiteral:
		switch selector.Value.(type) {
		case string:
			typ = schema.StringFieldType
		case bool:
			typ = schema.BoolFieldType
		case float32, float64:
			typ = schema.Float64FieldType
		case int, int64, uint32, uint64:
			typ = schema.Int64FieldType
		case int8, int16, int32, uint8, uint16:
			typ = schema.Int32FieldType
		case nil:
			typ = schema.NullFieldType
			nullable = true
		default:
			return 0, false, fmt.Errorf("unsupported literal %T: %w", selector.Value, ErrInvalidQuery)
		}

	case SelectFunction:
		if functions == nil {
			return 0, false, fmt.Errorf("%w: %s", ErrFunctionNotFound, selector.Name)
		}

		returnType, ok := functions.ReturnType(selector.Name)
		if !ok {
			return 0, false, fmt.Errorf("%w: %s", ErrFunctionNotFound, selector.Name)
		}
		typ = returnType

		for _, arg := range selector.Arguments {
			if _, _, argErr := qp.resolveType(arg, source, functions); argErr != nil {
				return 0, false, argErr
			}
		}

	default:
		return 0, false, fmt.Errorf("unsupported selector type %s: %w", selector.Type.String(), ErrInvalidQuery)
	}

	if selector.Cast != schema.NullFieldType {
		typ = selector.Cast
	}

	return typ, nullable, nil
}
