package tinyyaml

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"reflect"

	"golang.org/x/sync/errgroup"

	"github.com/KimNorgaard/go-tinyyaml/ast"
	"github.com/KimNorgaard/go-tinyyaml/internal/formatter"
	"github.com/KimNorgaard/go-tinyyaml/internal/mapper"
)

var errMaxDepth = errors.New("tinyyaml: reached max recursion depth")

// Encoder writes TinyYAML documents to an output stream.
type Encoder struct {
	w    io.Writer
	opts []Option
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer, opts ...Option) *Encoder {
	return &Encoder{w: w, opts: opts}
}

// Encode writes the TinyYAML encoding of v, a struct or a pointer to one, to
// the stream. Lines are separated by "\r\n" and no separator follows the
// last line.
func (e *Encoder) Encode(v any) error {
	if e.w == nil {
		return errors.New("tinyyaml: Encode(nil writer)")
	}
	m, err := NewMapper(e.opts...)
	if err != nil {
		return err
	}
	root, err := m.Encode(v)
	if err != nil {
		return err
	}
	return formatter.New(e.w, false).Format([]*ast.Node{root})
}

// Encode returns a root node whose children are the members of v, which
// must be a struct or a non-nil pointer to one.
//
// A member with a converter becomes a node named after the member holding the
// converted value; a nil member becomes a node with only a name. A struct
// member without a converter becomes a node named after the member whose
// children are its own members. Members of any other type are skipped, and
// so are properties promoted through a nil embedded pointer.
//
// Children keep the order of the members even though members are encoded
// concurrently.
func (m *Mapper) Encode(v any) (*ast.Node, error) {
	rv := reflect.ValueOf(v)
	ptr, ok := structPointer(rv)
	if !ok {
		return nil, &InvalidTargetError{Op: "Encode", Type: reflect.TypeOf(v)}
	}

	children, err := m.encodeStruct(ptr, m.maxDepth)
	if err != nil {
		return nil, err
	}
	root := ast.NewRoot()
	root.Append(children...)
	return root, nil
}

func (m *Mapper) encodeStruct(ptr reflect.Value, depth int) ([]*ast.Node, error) {
	if depth <= 0 {
		return nil, errMaxDepth
	}
	members := mapper.CachedMembers(ptr.Type().Elem())

	nodes := make([]*ast.Node, len(members.List))
	var g errgroup.Group
	for i := range members.List {
		member := &members.List[i]
		g.Go(func() error {
			n, err := m.encodeMember(ptr, member, depth)
			nodes[i] = n
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := nodes[:0]
	for _, n := range nodes {
		if n != nil {
			out = append(out, n)
		}
	}
	return out, nil
}

func (m *Mapper) encodeMember(ptr reflect.Value, member *mapper.Member, depth int) (*ast.Node, error) {
	v, ok := member.Get(ptr)
	if !ok {
		m.logger.LogAttrs(context.Background(), slog.LevelDebug, "skipping property behind nil embedded pointer",
			slog.String("member", member.Name),
			slog.String("type", ptr.Type().Elem().String()))
		return nil, nil
	}
	n := ast.NewNamed(member.Name, "")

	if conv, ok := m.registry.Lookup(member.Type); ok {
		if isNil(v) {
			return n, nil
		}
		if err := conv.Encode(n, v); err != nil {
			return nil, &EncodeError{Member: member.Name, Type: member.Type, Err: err}
		}
		return n, nil
	}

	if member.Type.Kind() == reflect.Pointer && member.Type.Elem().Kind() == reflect.Struct && v.IsNil() {
		return n, nil
	}
	sp, ok := structPointer(v)
	if !ok {
		m.logger.LogAttrs(context.Background(), slog.LevelDebug, "skipping member without converter",
			slog.String("member", member.Name),
			slog.String("type", member.Type.String()))
		return nil, nil
	}
	children, err := m.encodeStruct(sp, depth-1)
	if err != nil {
		return nil, err
	}
	n.Append(children...)
	return n, nil
}
