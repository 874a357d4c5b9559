// Package mapper describes the members of Go struct types that take part in
// TinyYAML mapping.
package mapper

import (
	"reflect"
	"strings"
	"sync"
)

// TagName is the struct tag key read by the mapper.
const TagName = "tinyyaml"

const setterPrefix = "Set"

// Ignorer is implemented by types that exclude members by name. It is the
// only way to exclude a property, since methods carry no tags.
type Ignorer interface {
	IgnoreMembers() []string
}

// Kind tells fields and properties apart.
type Kind int

const (
	// Field is an exported struct field declared directly on the type.
	Field Kind = iota
	// Property is a getter/setter method pair, X() T and SetX(T).
	Property
)

func (k Kind) String() string {
	if k == Property {
		return "property"
	}
	return "field"
}

// Member is one mapped field or property of a struct type.
type Member struct {
	Name string
	Type reflect.Type
	Kind Kind

	idx    int
	getter int
	setter int
	// via holds the indexes of the embedded fields a promoted property is
	// reached through, outermost first.
	via []int
}

// Get returns the member's value. ptr must be a pointer to the struct. ok is
// false for a promoted property whose embedded pointer is nil.
func (m *Member) Get(ptr reflect.Value) (v reflect.Value, ok bool) {
	if m.Kind == Property {
		if !m.reach(ptr, false) {
			return reflect.Value{}, false
		}
		return ptr.Method(m.getter).Call(nil)[0], true
	}
	return ptr.Elem().Field(m.idx), true
}

// Set assigns v to the member. ptr must be a pointer to the struct. Nil
// embedded pointers on the way to a promoted property are allocated first;
// ok is false when one of them cannot be, because it is unexported or an
// interface.
func (m *Member) Set(ptr reflect.Value, v reflect.Value) (ok bool) {
	if m.Kind == Property {
		if !m.reach(ptr, true) {
			return false
		}
		ptr.Method(m.setter).Call([]reflect.Value{v})
		return true
	}
	ptr.Elem().Field(m.idx).Set(v)
	return true
}

// reach reports whether every embedded pointer on the way to a promoted
// property is set, allocating nil ones when alloc is true.
func (m *Member) reach(ptr reflect.Value, alloc bool) bool {
	v := ptr.Elem()
	for _, i := range m.via {
		f := v.Field(i)
		switch f.Kind() {
		case reflect.Pointer:
			if f.IsNil() {
				if !alloc || !f.CanSet() {
					return false
				}
				f.Set(reflect.New(f.Type().Elem()))
			}
			v = f.Elem()
		case reflect.Interface:
			return !f.IsNil()
		default:
			v = f
		}
	}
	return true
}

// Members is the ordered member list of a struct type.
type Members struct {
	List   []Member
	byName map[string]int
}

// Lookup returns the first member named name, or nil.
func (ms *Members) Lookup(name string) *Member {
	if i, ok := ms.byName[name]; ok {
		return &ms.List[i]
	}
	return nil
}

// fieldCache caches the members of each struct type.
var fieldCache sync.Map // map[reflect.Type]*Members

// CachedMembers returns the members of struct type t: exported fields
// declared directly on t in declaration order, followed by settable
// properties of *t in method order. Fields promoted from embedded structs are
// not members; properties promoted from embedded types are. Fields tagged
// "tinyyaml:\"-\"" and names returned by Ignorer are skipped.
func CachedMembers(t reflect.Type) *Members {
	if f, ok := fieldCache.Load(t); ok {
		return f.(*Members)
	}

	ignored := make(map[string]bool)
	if ig, ok := reflect.New(t).Interface().(Ignorer); ok {
		for _, name := range ig.IgnoreMembers() {
			ignored[name] = true
		}
	}

	ms := &Members{byName: make(map[string]int)}
	add := func(m Member) {
		if ignored[m.Name] {
			return
		}
		if _, dup := ms.byName[m.Name]; !dup {
			ms.byName[m.Name] = len(ms.List)
		}
		ms.List = append(ms.List, m)
	}

	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.Anonymous || !sf.IsExported() {
			continue
		}
		tag := sf.Tag.Get(TagName)
		if tag == "-" {
			continue
		}
		name, _, _ := strings.Cut(tag, ",")
		if name == "" {
			name = sf.Name
		}
		add(Member{Name: name, Type: sf.Type, Kind: Field, idx: i})
	}

	pt := reflect.PointerTo(t)
	for i := 0; i < pt.NumMethod(); i++ {
		setter := pt.Method(i)
		name, ok := strings.CutPrefix(setter.Name, setterPrefix)
		if !ok || name == "" {
			continue
		}
		getter, ok := pt.MethodByName(name)
		if !ok || !isAccessorPair(getter.Type, setter.Type) {
			continue
		}
		add(Member{
			Name:   name,
			Type:   getter.Type.Out(0),
			Kind:   Property,
			getter: getter.Index,
			setter: setter.Index,
			via:    promotion(t, name),
		})
	}

	f, _ := fieldCache.LoadOrStore(t, ms)
	return f.(*Members)
}

// promotion returns the indexes of the embedded fields through which the
// method named name is promoted to t, outermost first. It is empty for a
// method declared on t itself.
func promotion(t reflect.Type, name string) []int {
	var path []int
	for t.Kind() == reflect.Struct {
		idx := -1
		for i := 0; i < t.NumField(); i++ {
			sf := t.Field(i)
			if !sf.Anonymous || !hasMethod(sf.Type, name) {
				continue
			}
			if idx >= 0 {
				// Ambiguous at this depth, so the method is declared on t.
				return path
			}
			idx = i
		}
		if idx < 0 {
			return path
		}
		path = append(path, idx)
		t = t.Field(idx).Type
		if t.Kind() == reflect.Pointer {
			t = t.Elem()
		}
	}
	return path
}

// hasMethod reports whether an embedded field of type t promotes a method
// named name to the pointer of the embedding struct.
func hasMethod(t reflect.Type, name string) bool {
	if t.Kind() != reflect.Interface && t.Kind() != reflect.Pointer {
		t = reflect.PointerTo(t)
	}
	_, ok := t.MethodByName(name)
	return ok
}

// isAccessorPair reports whether getter is func(recv) T and setter is
// func(recv, T). Both types include the receiver.
func isAccessorPair(getter, setter reflect.Type) bool {
	if getter.NumIn() != 1 || getter.NumOut() != 1 {
		return false
	}
	if setter.NumIn() != 2 || setter.NumOut() != 0 {
		return false
	}
	return setter.In(1) == getter.Out(0)
}
