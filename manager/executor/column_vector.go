package executor

import (
	"strconv"
	"strings"

	"github.com/bobycv06fpm/news-credibility/schema"
	"github.com/bobycv06fpm/news-credibility/source"
	"github.com/tidwall/gjson"
)

// ColumnVector is a single source column laid out as a flat array.
// Numeric columns fill Numbers, everything else fills Strings.
type ColumnVector struct {
	Column schema.SchemaColumn

	Numbers []float64
	Strings []string
	Valid   []bool

	parsed      []float64
	parsedValid []bool
}

func NewColumnVector(src *source.Source, column schema.SchemaColumn) *ColumnVector {

	rows := src.Count()
	vector := &ColumnVector{
		Column: column,
		Valid:  make([]bool, rows),
	}

	numeric := column.Type.IsNumeric()
	if numeric {
		vector.Numbers = make([]float64, rows)
	} else {
		vector.Strings = make([]string, rows)
	}

	path := source.FieldPath(column.Name)

	for idx, record := range src.Records {
		value := record.Get(path)
		if source.IsNull(value) {
			continue
		}

		if numeric {
			if value.Type != gjson.Number {
				continue
			}
			vector.Numbers[idx] = value.Float()
		} else {
			vector.Strings[idx] = value.String()
		}
		vector.Valid[idx] = true
	}

	return vector
}

func (v *ColumnVector) IsNumeric() bool {
	return v.Numbers != nil
}

func (v *ColumnVector) Len() int {
	return len(v.Valid)
}

// NumericView returns the column as numbers. Text values are parsed once,
// unparsable ones are reported as invalid.
func (v *ColumnVector) NumericView() ([]float64, []bool) {

	if v.IsNumeric() {
		return v.Numbers, v.Valid
	}

	if v.parsed == nil {
		v.parsed = make([]float64, len(v.Strings))
		v.parsedValid = make([]bool, len(v.Strings))

		for idx, it := range v.Strings {
			if !v.Valid[idx] {
				continue
			}

			num, err := strconv.ParseFloat(strings.TrimSpace(it), 64)
			if err != nil {
				continue
			}

			v.parsed[idx] = num
			v.parsedValid[idx] = true
		}
	}

	return v.parsed, v.parsedValid
}
