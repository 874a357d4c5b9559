package tinyyaml

import (
	"fmt"
	"log/slog"
	"reflect"
)

const defaultMaxDepth = 1000

// Option configures a Mapper.
type Option func(*options) error

type options struct {
	registry   *Registry
	knownTypes map[reflect.Type]bool
	logger     *slog.Logger
	maxDepth   int
}

func newOptions(opts []Option) (*options, error) {
	o := &options{
		knownTypes: make(map[reflect.Type]bool),
		logger:     slog.New(slog.DiscardHandler),
		maxDepth:   defaultMaxDepth,
	}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	if o.registry == nil {
		o.registry = DefaultRegistry()
	}
	return o, nil
}

// WithConverters replaces the default converters with convs. The defaults
// are not kept; include DefaultConverters() to extend them instead.
func WithConverters(convs ...Converter) Option {
	return func(o *options) error {
		r, err := NewRegistry(convs...)
		if err != nil {
			return err
		}
		o.registry = r
		return nil
	}
}

// KnownTypes adds the types of samples to the catalogue of composite types
// that Decode may instantiate for members without a converter. Each sample
// must be a struct value or a pointer to one, e.g. Config{} or (*Config)(nil).
func KnownTypes(samples ...any) Option {
	return func(o *options) error {
		for _, s := range samples {
			t := reflect.TypeOf(s)
			if t != nil && t.Kind() == reflect.Pointer {
				t = t.Elem()
			}
			if t == nil || t.Kind() != reflect.Struct {
				return fmt.Errorf("tinyyaml: known type must be a struct, got %T", s)
			}
			o.knownTypes[t] = true
		}
		return nil
	}
}

// WithLogger sets the logger that receives debug records about nodes and
// members the mapper skips. By default nothing is logged.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) error {
		if l == nil {
			return fmt.Errorf("tinyyaml: logger must not be nil")
		}
		o.logger = l
		return nil
	}
}

// MaxDepth sets the maximum nesting depth for encoding and decoding. This
// stops runaway recursion on self-referencing values.
//
// The depth n must be a positive integer.
func MaxDepth(n int) Option {
	return func(o *options) error {
		if n <= 0 {
			return fmt.Errorf("tinyyaml: max depth must be a positive integer")
		}
		o.maxDepth = n
		return nil
	}
}
