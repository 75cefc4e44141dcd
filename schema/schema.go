package schema

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const (
	IdColumn      = "id"
	ContentColumn = "content"
	LabelColumn   = "label"
)

type Schema struct {
	Name    string         `json:"name"`
	Uid     string         `json:"uuid"`
	Columns []SchemaColumn `json:"columns"`
}

func New(name string, columns ...SchemaColumn) Schema {
	return Schema{
		Name:    name,
		Uid:     uuid.NewString(),
		Columns: columns,
	}
}

// Extracted is the fixed layout every extracted table carries,
// regardless of the source it was produced from.
func Extracted(name string) Schema {
	return New(name,
		SchemaColumn{Name: IdColumn, Type: Int32FieldType},
		SchemaColumn{Name: ContentColumn, Type: StringFieldType},
		SchemaColumn{Name: LabelColumn, Type: Float64FieldType},
	)
}

func (s Schema) Column(name string) (SchemaColumn, int, bool) {
	for idx, it := range s.Columns {
		if it.Name == name {
			return it, idx, true
		}
	}
	return SchemaColumn{}, -1, false
}

func (s Schema) HasColumn(name string) bool {
	_, _, ok := s.Column(name)
	return ok
}

func (s Schema) ColumnNames() []string {
	names := make([]string, len(s.Columns))
	for idx, it := range s.Columns {
		names[idx] = it.Name
	}
	return names
}

// SameLayout compares column names and types, ignoring name and uid
func (s Schema) SameLayout(other Schema) bool {
	if len(s.Columns) != len(other.Columns) {
		return false
	}
	for idx, it := range s.Columns {
		o := other.Columns[idx]
		if it.Name != o.Name || it.Type != o.Type {
			return false
		}
	}
	return true
}

// String renders the schema as a tree, one column per line
func (s Schema) String() string {
	sb := strings.Builder{}
	sb.WriteString("root\n")
	for _, it := range s.Columns {
		sb.WriteString(fmt.Sprintf(" |-- %s: %s (nullable = %t)\n", it.Name, it.Type.String(), it.Nullable))
	}
	return sb.String()
}
