package executor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bobycv06fpm/news-credibility/lists"
	"github.com/bobycv06fpm/news-credibility/manager/query"
	"github.com/bobycv06fpm/news-credibility/ops"
)

func ProcessComparableFilterOnColumnWithType[T ops.Comparable](
	filter query.FilterCondition,
	inputArray []T,
	operands []T,
	indicesCache []int,
) (int, error) {

	var itemsFiltered int

	switch filter.Operand {
	case query.RANGE:
		itemsFiltered = ops.CompareValuesAreInRange(inputArray, operands[0], operands[1], indicesCache)
	case query.EQ:
		itemsFiltered = ops.CompareValuesAreEqual(inputArray, operands[0], indicesCache)
	case query.GT:
		itemsFiltered = ops.CompareValuesAreBigger(inputArray, operands[0], indicesCache)
	case query.LT:
		itemsFiltered = ops.CompareValuesAreSmaller(inputArray, operands[0], indicesCache)
	default:
		return 0, fmt.Errorf("unsupported operand type=%s while comparing values", filter.Operand.String())
	}

	return itemsFiltered, nil
}

func numericOperands(filter query.FilterCondition) ([]float64, error) {

	operands := make([]float64, len(filter.Arguments))

	for idx := range filter.Arguments {
		if num, ok := filter.ArgumentFloatValue(idx); ok {
			operands[idx] = num
			continue
		}

		num, err := strconv.ParseFloat(strings.TrimSpace(filter.ArgumentStringValue(idx)), 64)
		if err != nil {
			return nil, fmt.Errorf("argument %d of %s on `%s` is not a number: %w", idx, filter.Operand.String(), filter.Field, query.ErrInvalidQuery)
		}
		operands[idx] = num
	}

	return operands, nil
}

func stringOperands(filter query.FilterCondition) []string {
	operands := make([]string, len(filter.Arguments))
	for idx := range filter.Arguments {
		operands[idx] = filter.ArgumentStringValue(idx)
	}
	return operands
}

// ProcessFilterOnColumn applies a single condition to the vector and merges
// the matching rows into merger. Null values never match.
func ProcessFilterOnColumn(
	filter query.FilterCondition,
	vector *ColumnVector,
	merger *lists.IndiceUnmerged,
	indicesCache []int,
) (int, error) {

	var itemsFiltered int

	switch filter.Operand {
	case query.NOT_NULL:
		itemsFiltered = ops.Valid(vector.Valid, indicesCache)
		merger.With(indicesCache[:itemsFiltered])
		return itemsFiltered, nil

	case query.NOT_BLANK:
		if vector.IsNumeric() {
			itemsFiltered = ops.Valid(vector.Valid, indicesCache)
		} else {
			itemsFiltered = ops.NonBlankStrings(vector.Strings, indicesCache)
		}
		merger.With(indicesCache[:itemsFiltered])
		return itemsFiltered, nil
	}

	var (
		err   error
		valid []bool
	)

	if vector.IsNumeric() || filter.IsNumeric() {

		operands, operandsErr := numericOperands(filter)
		if operandsErr != nil {
			return 0, operandsErr
		}

		var numbers []float64
		numbers, valid = vector.NumericView()

		itemsFiltered, err = ProcessComparableFilterOnColumnWithType(filter, numbers, operands, indicesCache)
	} else {
		valid = vector.Valid
		itemsFiltered, err = ProcessComparableFilterOnColumnWithType(filter, vector.Strings, stringOperands(filter), indicesCache)
	}

	if err != nil {
		return 0, fmt.Errorf("filter on `%s`: %w", filter.Field, err)
	}

	merger.With(indicesCache[:itemsFiltered])

	validItems := ops.Valid(valid, indicesCache)
	merger.With(indicesCache[:validItems])

	return itemsFiltered, nil
}
