package executor

import (
	"errors"
	"fmt"

	"github.com/bobycv06fpm/news-credibility/schema"
	"github.com/bobycv06fpm/news-credibility/table"
)

var (
	ErrNotExtractedLayout = errors.New("result does not have the id, content, label layout")
	ErrNullValue          = errors.New("unexpected null value")
)

type Result struct {
	Schema schema.Schema
	Rows   [][]any
}

func (r *Result) Count() int {
	return len(r.Rows)
}

// ToTable converts the rows into an extracted table. The result must
// select id, content and label, any other column is ignored.
func (r *Result) ToTable(name string) (*table.Table, error) {

	_, idIdx, idOk := r.Schema.Column(schema.IdColumn)
	_, contentIdx, contentOk := r.Schema.Column(schema.ContentColumn)
	_, labelIdx, labelOk := r.Schema.Column(schema.LabelColumn)

	if !idOk || !contentOk || !labelOk {
		return nil, fmt.Errorf("%w: got %v", ErrNotExtractedLayout, r.Schema.ColumnNames())
	}

	rows := make([]table.Row, 0, len(r.Rows))

	for rowIdx, values := range r.Rows {

		id, ok := CastValue(values[idIdx], schema.Int32FieldType).(int32)
		if !ok {
			return nil, fmt.Errorf("row %d column %s: %w", rowIdx, schema.IdColumn, ErrNullValue)
		}

		content, ok := CastValue(values[contentIdx], schema.StringFieldType).(string)
		if !ok {
			return nil, fmt.Errorf("row %d column %s: %w", rowIdx, schema.ContentColumn, ErrNullValue)
		}

		label, ok := CastValue(values[labelIdx], schema.Float64FieldType).(float64)
		if !ok {
			return nil, fmt.Errorf("row %d column %s: %w", rowIdx, schema.LabelColumn, ErrNullValue)
		}

		rows = append(rows, table.Row{Id: id, Content: content, Label: label})
	}

	return table.New(name, rows), nil
}
