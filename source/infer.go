package source

import (
	"slices"
	"strings"

	"github.com/bobycv06fpm/news-credibility/schema"
	"github.com/tidwall/gjson"
)

// InferSchema unions the top level keys of all records, widening types
// that disagree between records. Columns are sorted by name, a column is
// nullable when some record lacks it or holds null.
func InferSchema(name string, records []gjson.Result) schema.Schema {

	types := map[string]schema.FieldType{}
	present := map[string]int{}
	nulls := map[string]bool{}

	for _, record := range records {
		record.ForEach(func(key, value gjson.Result) bool {
			k := key.String()

			typ := TypeOf(value)
			if typ == schema.NullFieldType {
				nulls[k] = true
			}

			if old, ok := types[k]; ok {
				types[k] = schema.Widen(old, typ)
			} else {
				types[k] = typ
			}
			present[k]++

			return true
		})
	}

	columns := make([]schema.SchemaColumn, 0, len(types))
	for k, typ := range types {
		// an all null column is read as string
		if typ == schema.NullFieldType {
			typ = schema.StringFieldType
		}

		columns = append(columns, schema.SchemaColumn{
			Name:     k,
			Type:     typ,
			Nullable: nulls[k] || present[k] < len(records),
		})
	}

	slices.SortFunc(columns, func(a, b schema.SchemaColumn) int {
		return strings.Compare(a.Name, b.Name)
	})

	return schema.New(name, columns...)
}

func TypeOf(value gjson.Result) schema.FieldType {
	switch value.Type {
	case gjson.Null:
		return schema.NullFieldType
	case gjson.True, gjson.False:
		return schema.BoolFieldType
	case gjson.String:
		return schema.StringFieldType
	case gjson.Number:
		if strings.ContainsAny(value.Raw, ".eE") {
			return schema.Float64FieldType
		}
		return schema.Int64FieldType
	case gjson.JSON:
		if value.IsArray() {
			return schema.ArrayFieldType
		}
		return schema.StructFieldType
	default:
		return schema.NullFieldType
	}
}
