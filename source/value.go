package source

import (
	"strings"

	"github.com/tidwall/gjson"
)

const pathSpecialChars = `\.*?|#@!:`

// FieldPath escapes a top level key so gjson does not read it as a path
func FieldPath(name string) string {
	if !strings.ContainsAny(name, pathSpecialChars) {
		return name
	}

	sb := strings.Builder{}
	for _, ch := range name {
		if strings.ContainsRune(pathSpecialChars, ch) {
			sb.WriteByte('\\')
		}
		sb.WriteRune(ch)
	}
	return sb.String()
}

func Field(record gjson.Result, name string) gjson.Result {
	return record.Get(FieldPath(name))
}

// IsNull is true for a missing key as well as an explicit null
func IsNull(value gjson.Result) bool {
	return !value.Exists() || value.Type == gjson.Null
}

// Value decodes a JSON value into nil, string, float64, bool,
// []any or map[string]any
func Value(value gjson.Result) any {
	if IsNull(value) {
		return nil
	}
	return value.Value()
}
