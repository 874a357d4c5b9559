package tinyyaml

import (
	"log/slog"
	"reflect"
)

// Mapper maps between node trees and Go structs. Scalar members are handled
// by the converters of its registry; members of other struct types are
// mapped recursively.
//
// A Mapper is safe for concurrent use.
type Mapper struct {
	registry   *Registry
	knownTypes map[reflect.Type]bool
	logger     *slog.Logger
	maxDepth   int
}

// NewMapper returns a mapper configured by opts. Without options it uses the
// default converters and an empty known-type catalogue.
func NewMapper(opts ...Option) (*Mapper, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}
	return &Mapper{
		registry:   o.registry,
		knownTypes: o.knownTypes,
		logger:     o.logger,
		maxDepth:   o.maxDepth,
	}, nil
}

// Registry returns the mapper's converter registry.
func (m *Mapper) Registry() *Registry { return m.registry }

// structPointer returns a pointer to the struct held by v. A struct value is
// copied into a new addressable value. ok is false for anything else,
// including nil pointers.
func structPointer(v reflect.Value) (ptr reflect.Value, ok bool) {
	for v.Kind() == reflect.Interface && !v.IsNil() {
		v = v.Elem()
	}
	switch {
	case v.Kind() == reflect.Struct:
		p := reflect.New(v.Type())
		p.Elem().Set(v)
		return p, true
	case v.Kind() == reflect.Pointer && !v.IsNil() && v.Elem().Kind() == reflect.Struct:
		return v, true
	}
	return reflect.Value{}, false
}

func isNil(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}
