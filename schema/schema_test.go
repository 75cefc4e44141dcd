package schema

import (
	"strings"
	"testing"
)

func TestWiden(t *testing.T) {
	cases := []struct {
		a, b     FieldType
		expected FieldType
	}{
		{Int64FieldType, Int64FieldType, Int64FieldType},
		{NullFieldType, StringFieldType, StringFieldType},
		{Float64FieldType, NullFieldType, Float64FieldType},
		{Int32FieldType, Int64FieldType, Int64FieldType},
		{Int64FieldType, Float64FieldType, Float64FieldType},
		{BoolFieldType, Int64FieldType, StringFieldType},
		{ArrayFieldType, StructFieldType, StringFieldType},
	}

	for _, c := range cases {
		if got := Widen(c.a, c.b); got != c.expected {
			t.Errorf("Widen(%s, %s): expected %s but got %s", c.a, c.b, c.expected, got)
		}
	}
}

func TestExtractedLayout(t *testing.T) {
	s := Extracted("train")

	names := s.ColumnNames()
	if len(names) != 3 || names[0] != IdColumn || names[1] != ContentColumn || names[2] != LabelColumn {
		t.Fatalf("unexpected columns %v", names)
	}

	col, idx, ok := s.Column(LabelColumn)
	if !ok || idx != 2 || col.Type != Float64FieldType {
		t.Errorf("unexpected label column %+v at %d", col, idx)
	}

	if s.HasColumn("category") {
		t.Errorf("extracted schema must not carry source columns")
	}

	if !s.SameLayout(Extracted("other")) {
		t.Errorf("extracted schemas must share the layout")
	}

	if s.Uid == Extracted("train").Uid {
		t.Errorf("every schema gets its own uid")
	}
}

func TestSchemaString(t *testing.T) {
	out := Extracted("x").String()

	if !strings.HasPrefix(out, "root\n") {
		t.Errorf("missing root line: %q", out)
	}
	if !strings.Contains(out, " |-- content: string (nullable = false)") {
		t.Errorf("missing content line: %q", out)
	}
}
