package udf

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/bobycv06fpm/news-credibility/schema"
)

const (
	GenerateIdFunction      = "generateId"
	CategoryToLabelFunction = "categoryToLabel"
	VectorLengthFunction    = "getVectorLength"
)

var (
	ErrUnknownFunction = errors.New("unknown function")
	ErrBadArgument     = errors.New("bad function argument")
)

// Function receives decoded JSON values: nil, string, float64, bool, []any or map[string]any
type Function func(args ...any) (any, error)

type registered struct {
	fn         Function
	returnType schema.FieldType
}

type Registry struct {
	funcs map[string]registered
	lock  sync.RWMutex
}

func NewRegistry() *Registry {
	return &Registry{
		funcs: map[string]registered{},
	}
}

// NewDefaultRegistry registers generateId, categoryToLabel and getVectorLength
func NewDefaultRegistry(ids IdGenerator) *Registry {
	r := NewRegistry()

	r.Register(GenerateIdFunction, schema.Int32FieldType, func(args ...any) (any, error) {
		return ids.NextId(), nil
	})

	r.Register(CategoryToLabelFunction, schema.Float64FieldType, func(args ...any) (any, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("%s expects 1 argument, got %d: %w", CategoryToLabelFunction, len(args), ErrBadArgument)
		}

		switch v := args[0].(type) {
		case nil:
			return UnreliableLabel, nil
		case string:
			return LabelOf(v), nil
		default:
			return LabelOf(fmt.Sprint(v)), nil
		}
	})

	r.Register(VectorLengthFunction, schema.Float64FieldType, func(args ...any) (any, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("%s expects 1 argument, got %d: %w", VectorLengthFunction, len(args), ErrBadArgument)
		}

		switch v := args[0].(type) {
		case nil:
			return TokenCount(nil), nil
		case []string:
			return TokenCount(v), nil
		case []any:
			tokens := make([]string, len(v))
			for idx, it := range v {
				tokens[idx] = fmt.Sprint(it)
			}
			return TokenCount(tokens), nil
		default:
			return nil, fmt.Errorf("%s expects an array, got %T: %w", VectorLengthFunction, v, ErrBadArgument)
		}
	})

	return r
}

func (r *Registry) Register(name string, returnType schema.FieldType, fn Function) {
	r.lock.Lock()
	defer r.lock.Unlock()

	r.funcs[name] = registered{fn: fn, returnType: returnType}
}

func (r *Registry) ReturnType(name string) (schema.FieldType, bool) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	it, ok := r.funcs[name]
	return it.returnType, ok
}

func (r *Registry) Call(name string, args ...any) (any, error) {
	r.lock.RLock()
	it, ok := r.funcs[name]
	r.lock.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFunction, name)
	}

	return it.fn(args...)
}

func (r *Registry) Names() []string {
	r.lock.RLock()
	defer r.lock.RUnlock()

	names := make([]string, 0, len(r.funcs))
	for name := range r.funcs {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}
