package query

import "fmt"

type CondOperand byte

const (
	EQ CondOperand = iota
	GT
	LT
	RANGE

	// value is a string that is not empty once trimmed
	NOT_BLANK
	NOT_NULL
)

func (c CondOperand) String() string {
	switch c {
	case EQ:
		return "EQ"
	case GT:
		return "GT"
	case LT:
		return "LT"
	case RANGE:
		return "RANGE"
	case NOT_BLANK:
		return "NOT_BLANK"
	case NOT_NULL:
		return "NOT_NULL"
	default:
		return fmt.Sprintf("CondOperand(%d)", byte(c))
	}
}

// Arity is the number of arguments the operand expects
func (c CondOperand) Arity() int {
	switch c {
	case EQ, GT, LT:
		return 1
	case RANGE:
		return 2
	default:
		return 0
	}
}
