package executor

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/bobycv06fpm/news-credibility/manager/query"
	"github.com/bobycv06fpm/news-credibility/schema"
	"github.com/bobycv06fpm/news-credibility/source"
	"github.com/tidwall/gjson"
)

type FunctionCaller interface {
	Call(name string, args ...any) (any, error)
}

func evaluateSelector(selector query.Selector, record gjson.Result, functions FunctionCaller) (any, error) {

	var value any

	switch selector.Type {
	case query.SelectField:
		value = source.Value(source.Field(record, selector.Name))

	case query.SelectLiteral:
		value = selector.Value

	case query.SelectFunction:
		args := make([]any, len(selector.Arguments))
		for idx, arg := range selector.Arguments {
			argValue, err := evaluateSelector(arg, record, functions)
			if err != nil {
				return nil, err
			}
			args[idx] = argValue
		}

		res, err := functions.Call(selector.Name, args...)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", selector.String(), err)
		}
		value = res

	default:
		return nil, fmt.Errorf("unsupported selector type %s: %w", selector.Type.String(), query.ErrInvalidQuery)
	}

	if selector.Cast != schema.NullFieldType {
		return CastValue(value, selector.Cast), nil
	}

	return value, nil
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case bool:
		if v {
			return 1, true
		}
		return 0, true
	case string:
		num, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return num, true
	default:
		return 0, false
	}
}

// CastValue converts value to typ, values that can not be converted become nil
func CastValue(value any, typ schema.FieldType) any {

	if value == nil {
		return nil
	}

	switch typ {
	case schema.Float64FieldType:
		if num, ok := toFloat(value); ok {
			return num
		}
		return nil

	case schema.Int32FieldType, schema.Int64FieldType:
		num, ok := toFloat(value)
		if !ok || math.IsNaN(num) || math.IsInf(num, 0) {
			return nil
		}
		if typ == schema.Int32FieldType {
			if num > math.MaxInt32 || num < math.MinInt32 {
				return nil
			}
			return int32(num)
		}
		return int64(num)

	case schema.BoolFieldType:
		switch v := value.(type) {
		case bool:
			return v
		case string:
			b, err := strconv.ParseBool(strings.TrimSpace(v))
			if err != nil {
				return nil
			}
			return b
		default:
			num, ok := toFloat(value)
			if !ok {
				return nil
			}
			return num != 0
		}

	case schema.StringFieldType:
		switch v := value.(type) {
		case string:
			return v
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		default:
			return fmt.Sprint(v)
		}

	default:
		return value
	}
}
