package schema

type FieldType uint8

const (
	NullFieldType FieldType = iota

	Int32FieldType
	Int64FieldType
	Float64FieldType

	BoolFieldType
	StringFieldType

	ArrayFieldType
	StructFieldType
)

func (f FieldType) String() string {
	switch f {
	case NullFieldType:
		return "null"
	case Int32FieldType:
		return "integer"
	case Int64FieldType:
		return "long"
	case Float64FieldType:
		return "double"
	case BoolFieldType:
		return "boolean"
	case StringFieldType:
		return "string"
	case ArrayFieldType:
		return "array"
	case StructFieldType:
		return "struct"
	default:
		return ""
	}
}

func (f FieldType) IsNumeric() bool {
	switch f {
	case Int32FieldType, Int64FieldType, Float64FieldType:
		return true
	default:
		return false
	}
}

// Size is the fixed in-memory width of a value, 0 for variable sized types
func (f FieldType) Size() int {
	switch f {
	case BoolFieldType:
		return 1
	case Int32FieldType:
		return 4
	case Int64FieldType, Float64FieldType:
		return 8
	default:
		return 0
	}
}

// Widen returns the narrowest type able to hold values of both a and b.
// Numeric types widen to the larger numeric type, anything mixed with a
// string (or with an incompatible kind) becomes a string, null yields to the other side.
func Widen(a, b FieldType) FieldType {
	if a == b {
		return a
	}
	if a == NullFieldType {
		return b
	}
	if b == NullFieldType {
		return a
	}

	if a.IsNumeric() && b.IsNumeric() {
		if a == Float64FieldType || b == Float64FieldType {
			return Float64FieldType
		}
		return Int64FieldType
	}

	return StringFieldType
}
