package query

import "fmt"

type FilterCondition struct {
	Field     string
	Operand   CondOperand
	Arguments []any
}

func Eq(field string, value any) FilterCondition {
	return FilterCondition{Field: field, Operand: EQ, Arguments: []any{value}}
}

func Gt(field string, value any) FilterCondition {
	return FilterCondition{Field: field, Operand: GT, Arguments: []any{value}}
}

func Lt(field string, value any) FilterCondition {
	return FilterCondition{Field: field, Operand: LT, Arguments: []any{value}}
}

func Range(field string, from, to any) FilterCondition {
	return FilterCondition{Field: field, Operand: RANGE, Arguments: []any{from, to}}
}

func NotBlank(field string) FilterCondition {
	return FilterCondition{Field: field, Operand: NOT_BLANK}
}

func NotNull(field string) FilterCondition {
	return FilterCondition{Field: field, Operand: NOT_NULL}
}

func (fc FilterCondition) Validate() error {
	if fc.Field == "" {
		return fmt.Errorf("filter %s has no field: %w", fc.Operand.String(), ErrInvalidQuery)
	}

	if len(fc.Arguments) != fc.Operand.Arity() {
		return fmt.Errorf("filter %s on `%s` expects %d arguments, got %d: %w", fc.Operand.String(), fc.Field, fc.Operand.Arity(), len(fc.Arguments), ErrInvalidQuery)
	}

	for idx := range fc.Arguments {
		_, isNumeric := fc.ArgumentFloatValue(idx)
		_, isString := fc.Arguments[idx].(string)

		if !isNumeric && !isString {
			return fmt.Errorf("filter %s on `%s` argument %d has unsupported type %T: %w", fc.Operand.String(), fc.Field, idx, fc.Arguments[idx], ErrInvalidQuery)
		}
	}

	return nil
}

// IsNumeric reports whether all arguments are numbers
func (fc FilterCondition) IsNumeric() bool {
	for idx := range fc.Arguments {
		if _, ok := fc.ArgumentFloatValue(idx); !ok {
			return false
		}
	}
	return true
}

func (fc FilterCondition) ArgumentFloatValue(idx int) (float64, bool) {

	arg := fc.Arguments[idx]

	switch v := arg.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case int32:
		return float64(v), true
	case int16:
		return float64(v), true
	case int8:
		return float64(v), true
	case uint64:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint8:
		return float64(v), true
	case float32:
		return float64(v), true
	default:
		return 0, false
	}
}

func (fc FilterCondition) ArgumentStringValue(idx int) string {
	if s, ok := fc.Arguments[idx].(string); ok {
		return s
	}
	return fmt.Sprint(fc.Arguments[idx])
}
