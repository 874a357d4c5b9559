package tinyyaml

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/KimNorgaard/go-tinyyaml/ast"
)

const listSeparator = ","

// Converter turns a node's value into a Go value of one exact type and back.
type Converter interface {
	// Type is the type the converter handles. Lookup is by identity.
	Type() reflect.Type
	// Decode returns the value of n as a value of Type.
	Decode(n *ast.Node) (reflect.Value, error)
	// Encode stores the text form of v in n.Value.
	Encode(n *ast.Node, v reflect.Value) error
}

type converter[T any] struct {
	typ    reflect.Type
	decode func(n *ast.Node) (T, error)
	encode func(n *ast.Node, v T) error
}

// NewConverter returns a Converter for T built from a pair of functions.
func NewConverter[T any](decode func(n *ast.Node) (T, error), encode func(n *ast.Node, v T) error) Converter {
	return &converter[T]{typ: reflect.TypeFor[T](), decode: decode, encode: encode}
}

func (c *converter[T]) Type() reflect.Type { return c.typ }

func (c *converter[T]) Decode(n *ast.Node) (reflect.Value, error) {
	v, err := c.decode(n)
	if err != nil {
		return reflect.Value{}, err
	}
	return reflect.ValueOf(&v).Elem(), nil
}

func (c *converter[T]) Encode(n *ast.Node, v reflect.Value) error {
	t, ok := v.Interface().(T)
	if !ok {
		return fmt.Errorf("tinyyaml: converter for %s given %s", c.typ, v.Type())
	}
	return c.encode(n, t)
}

// Registry maps exact types to converters. It is immutable once built.
type Registry struct {
	converters map[reflect.Type]Converter
}

// NewRegistry returns a registry holding exactly convs. Use
// DefaultConverters to start from the built-in set.
func NewRegistry(convs ...Converter) (*Registry, error) {
	r := &Registry{converters: make(map[reflect.Type]Converter, len(convs))}
	for _, c := range convs {
		if c == nil {
			return nil, fmt.Errorf("tinyyaml: nil converter")
		}
		t := c.Type()
		if _, dup := r.converters[t]; dup {
			return nil, fmt.Errorf("tinyyaml: duplicate converter for type %s", t)
		}
		r.converters[t] = c
	}
	return r, nil
}

// DefaultRegistry returns a registry of the built-in converters.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(DefaultConverters()...)
	if err != nil {
		panic(err)
	}
	return r
}

// Lookup returns the converter registered for exactly t.
func (r *Registry) Lookup(t reflect.Type) (Converter, bool) {
	c, ok := r.converters[t]
	return c, ok
}

// Len returns the number of registered converters.
func (r *Registry) Len() int { return len(r.converters) }

// DefaultConverters returns the built-in converters: string, int16, int32,
// int64, float32, float64 and []string.
func DefaultConverters() []Converter {
	return []Converter{
		StringConverter(),
		NewConverter(decodeInt[int16], encodeInt[int16]),
		NewConverter(decodeInt[int32], encodeInt[int32]),
		NewConverter(decodeInt[int64], encodeInt[int64]),
		NewConverter(decodeFloat[float32], encodeFloat[float32]),
		NewConverter(decodeFloat[float64], encodeFloat[float64]),
		StringListConverter(),
	}
}

// StringConverter maps a node value to a string unchanged.
func StringConverter() Converter {
	return NewConverter(
		func(n *ast.Node) (string, error) { return n.Value, nil },
		func(n *ast.Node, v string) error {
			n.Value = v
			return nil
		},
	)
}

// StringListConverter maps "a, b, c" to []string{"a", "b", "c"}. Items are
// trimmed and empty items are kept.
func StringListConverter() Converter {
	return NewConverter(
		func(n *ast.Node) ([]string, error) {
			items := strings.Split(n.Value, listSeparator)
			for i, item := range items {
				items[i] = strings.TrimSpace(item)
			}
			return items, nil
		},
		func(n *ast.Node, v []string) error {
			n.Value = strings.Join(v, listSeparator+" ")
			return nil
		},
	)
}

// IntConverter handles int. It is not part of the default set.
func IntConverter() Converter {
	return NewConverter(decodeInt[int], encodeInt[int])
}

// BoolConverter handles bool using strconv.ParseBool. It is not part of the
// default set.
func BoolConverter() Converter {
	return NewConverter(
		func(n *ast.Node) (bool, error) {
			b, err := strconv.ParseBool(n.Value)
			if err != nil {
				return false, conversionError[bool](n, err)
			}
			return b, nil
		},
		func(n *ast.Node, v bool) error {
			n.Value = strconv.FormatBool(v)
			return nil
		},
	)
}

type signed interface {
	~int | ~int16 | ~int32 | ~int64
}

type float interface {
	~float32 | ~float64
}

func decodeInt[T signed](n *ast.Node) (T, error) {
	i, err := strconv.ParseInt(n.Value, 10, reflect.TypeFor[T]().Bits())
	if err != nil {
		return 0, conversionError[T](n, err)
	}
	return T(i), nil
}

func encodeInt[T signed](n *ast.Node, v T) error {
	n.Value = strconv.FormatInt(int64(v), 10)
	return nil
}

func decodeFloat[T float](n *ast.Node) (T, error) {
	f, err := strconv.ParseFloat(n.Value, reflect.TypeFor[T]().Bits())
	if err != nil {
		return 0, conversionError[T](n, err)
	}
	return T(f), nil
}

func encodeFloat[T float](n *ast.Node, v T) error {
	n.Value = strconv.FormatFloat(float64(v), 'g', -1, reflect.TypeFor[T]().Bits())
	return nil
}

func conversionError[T any](n *ast.Node, err error) *ConversionError {
	return &ConversionError{Value: n.Value, Type: reflect.TypeFor[T](), Line: n.Line, Err: err}
}
