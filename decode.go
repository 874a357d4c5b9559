package tinyyaml

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"reflect"

	"golang.org/x/sync/errgroup"

	"github.com/KimNorgaard/go-tinyyaml/ast"
	"github.com/KimNorgaard/go-tinyyaml/internal/mapper"
)

// Decoder reads and decodes TinyYAML documents from an input stream.
type Decoder struct {
	r    io.Reader
	opts []Option
}

// NewDecoder returns a new decoder that reads from r.
//
// It is the caller's responsibility to call Close on r if required.
func NewDecoder(r io.Reader, opts ...Option) *Decoder {
	return &Decoder{r: r, opts: opts}
}

// Decode reads the document from its input and stores it in the struct
// pointed to by v, as Mapper.Decode does. Invalid indentation is reported as
// a *StructuralError.
//
// Note: This is a non-streaming implementation. It reads the entire
// reader into memory first before parsing.
func (d *Decoder) Decode(v any) error {
	if d.r == nil {
		return errors.New("tinyyaml: Decode(nil reader)")
	}
	m, err := NewMapper(d.opts...)
	if err != nil {
		return err
	}
	nodes, err := ParseReader(d.r)
	if err != nil {
		return err
	}
	return m.Decode(nodes, v)
}

// Decode stores the values of nodes in the struct pointed to by v.
//
// Each node is matched to the first member whose name equals the node's name
// exactly; nodes without a matching member are ignored. A member with a
// converter receives the converted node value. A member of a struct type in
// the known-type catalogue, or a pointer to one, receives a new value decoded
// from the node's children. Other members are left as they are. Nil embedded
// pointers on the way to a promoted property are allocated before it is set.
//
// Conversions run concurrently. If any of them fails, Decode returns the
// error and v is not modified. When several nodes match the same member the
// last one wins. A single root node, as returned by Encode, is decoded
// through its children.
func (m *Mapper) Decode(nodes []*ast.Node, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return &InvalidTargetError{Op: "Decode", Type: reflect.TypeOf(v)}
	}
	if len(nodes) == 1 && nodes[0].IsRoot() {
		nodes = nodes[0].Children
	}
	return m.decodeStruct(nodes, rv, m.maxDepth)
}

type assignment struct {
	member *mapper.Member
	value  reflect.Value
}

func (m *Mapper) decodeStruct(nodes []*ast.Node, ptr reflect.Value, depth int) error {
	if depth <= 0 {
		return errMaxDepth
	}
	members := mapper.CachedMembers(ptr.Type().Elem())

	assignments := make([]assignment, len(nodes))
	var g errgroup.Group
	for i, n := range nodes {
		member := members.Lookup(n.Name)
		if member == nil {
			m.logger.LogAttrs(context.Background(), slog.LevelDebug, "ignoring node without matching member",
				slog.String("name", n.Name),
				slog.Int("line", n.Line),
				slog.String("type", ptr.Type().Elem().String()))
			continue
		}
		g.Go(func() error {
			value, ok, err := m.decodeMember(n, member, depth)
			if err != nil || !ok {
				return err
			}
			assignments[i] = assignment{member: member, value: value}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, a := range assignments {
		if a.member == nil {
			continue
		}
		if !a.member.Set(ptr, a.value) {
			m.logger.LogAttrs(context.Background(), slog.LevelDebug, "leaving property behind unexported embedded pointer unassigned",
				slog.String("member", a.member.Name),
				slog.String("type", ptr.Type().Elem().String()))
		}
	}
	return nil
}

// decodeMember returns the value for member decoded from n. ok is false when
// the member's type can be neither converted nor instantiated.
func (m *Mapper) decodeMember(n *ast.Node, member *mapper.Member, depth int) (value reflect.Value, ok bool, err error) {
	if conv, found := m.registry.Lookup(member.Type); found {
		value, err = conv.Decode(n)
		if err != nil {
			var ce *ConversionError
			if !errors.As(err, &ce) {
				err = &ConversionError{Value: n.Value, Type: member.Type, Line: n.Line, Err: err}
			}
			return reflect.Value{}, false, err
		}
		return value, true, nil
	}

	t := member.Type
	isPtr := t.Kind() == reflect.Pointer
	if isPtr {
		t = t.Elem()
	}
	if !m.knownTypes[t] {
		m.logger.LogAttrs(context.Background(), slog.LevelDebug, "leaving member of unknown type unassigned",
			slog.String("member", member.Name),
			slog.String("type", member.Type.String()),
			slog.Int("line", n.Line))
		return reflect.Value{}, false, nil
	}

	p := reflect.New(t)
	if err := m.decodeStruct(n.Children, p, depth-1); err != nil {
		return reflect.Value{}, false, err
	}
	if isPtr {
		return p, true, nil
	}
	return p.Elem(), true, nil
}
