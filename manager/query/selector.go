package query

import (
	"fmt"

	"github.com/bobycv06fpm/news-credibility/schema"
)

type SelectorType byte

const (
	SelectField SelectorType = iota
	SelectFunction
	SelectLiteral
)

func (s SelectorType) String() string {
	switch s {
	case SelectField:
		return "field"
	case SelectFunction:
		return "function"
	case SelectLiteral:
		return "literal"
	default:
		return fmt.Sprintf("SelectorType(%d)", byte(s))
	}
}

type Selector struct {
	Type SelectorType

	// field name for SelectField, function name for SelectFunction
	Name      string
	Arguments []Selector
	Value     any

	// NullFieldType keeps the natural type
	Cast  schema.FieldType
	Alias string
}

func Field(name string) Selector {
	return Selector{Type: SelectField, Name: name}
}

func Literal(value any) Selector {
	return Selector{Type: SelectLiteral, Value: value}
}

func Call(function string, args ...Selector) Selector {
	return Selector{Type: SelectFunction, Name: function, Arguments: args}
}

func (s Selector) As(alias string) Selector {
	s.Alias = alias
	return s
}

func (s Selector) CastTo(typ schema.FieldType) Selector {
	s.Cast = typ
	return s
}

// OutputName is the alias, falling back to the field name
func (s Selector) OutputName() string {
	if s.Alias != "" {
		return s.Alias
	}
	if s.Type == SelectField {
		return s.Name
	}
	return ""
}

// Fields lists every source column the selector reads
func (s Selector) Fields() []string {
	switch s.Type {
	case SelectField:
		return []string{s.Name}
	case SelectFunction:
		fields := []string{}
		for _, arg := range s.Arguments {
			fields = append(fields, arg.Fields()...)
		}
		return fields
	default:
		return nil
	}
}

func (s Selector) String() string {
	var expr string

	switch s.Type {
	case SelectField:
		expr = s.Name
	case SelectLiteral:
		expr = fmt.Sprintf("%v", s.Value)
	case SelectFunction:
		expr = s.Name + "("
		for idx, arg := range s.Arguments {
			if idx > 0 {
				expr += ", "
			}
			expr += arg.String()
		}
		expr += ")"
	}

	if s.Cast != schema.NullFieldType {
		expr = fmt.Sprintf("CAST(%s AS %s)", expr, s.Cast.String())
	}

	if s.Alias != "" {
		expr += " AS " + s.Alias
	}

	return expr
}
