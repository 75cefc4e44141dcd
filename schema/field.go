package schema

type SchemaColumn struct {
	Name string    `json:"name"`
	Type FieldType `json:"type"`

	Nullable bool `json:"nullable"`
}
