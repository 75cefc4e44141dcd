package query

import "github.com/bobycv06fpm/news-credibility/schema"

type FilterGroupedRT struct {
	FieldName string

	ColumnSchemaInfo *schema.SchemaColumn
	ColumnIdx        int

	Conditions []FilterCondition
}
