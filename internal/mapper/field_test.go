package mapper_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KimNorgaard/go-tinyyaml/internal/mapper"
)

type base struct {
	BaseField string
	label     string
}

func (b *base) Label() string     { return b.label }
func (b *base) SetLabel(s string) { b.label = s }

type sample struct {
	base
	Name     string
	Count    int32  `tinyyaml:"count"`
	Skipped  string `tinyyaml:"-"`
	Hidden   string
	internal string
	title    string
	readOnly string
}

func (s *sample) Title() string           { return s.title }
func (s *sample) SetTitle(v string)       { s.title = v }
func (s *sample) ReadOnly() string        { return s.readOnly }
func (s *sample) SetMismatch(v int)       {}
func (s *sample) Mismatch() string        { return "" }
func (s *sample) IgnoreMembers() []string { return []string{"Hidden"} }

func names(ms *mapper.Members) []string {
	var out []string
	for _, m := range ms.List {
		out = append(out, m.Name)
	}
	return out
}

func TestCachedMembers(t *testing.T) {
	ms := mapper.CachedMembers(reflect.TypeOf(sample{}))

	require.Equal(t, []string{"Name", "count", "Label", "Title"}, names(ms))
	require.Equal(t, mapper.Field, ms.Lookup("Name").Kind)
	require.Equal(t, mapper.Property, ms.Lookup("Label").Kind)
	require.Equal(t, reflect.TypeOf(int32(0)), ms.Lookup("count").Type)
	require.Nil(t, ms.Lookup("Count"))
	require.Nil(t, ms.Lookup("BaseField"), "promoted fields are not members")
	require.Nil(t, ms.Lookup("ReadOnly"), "properties without a setter are not members")
	require.Nil(t, ms.Lookup("Hidden"))

	require.Same(t, ms, mapper.CachedMembers(reflect.TypeOf(sample{})))
}

func TestMemberGetSet(t *testing.T) {
	s := &sample{}
	ptr := reflect.ValueOf(s)
	ms := mapper.CachedMembers(reflect.TypeOf(sample{}))

	require.True(t, ms.Lookup("Name").Set(ptr, reflect.ValueOf("n")))
	require.True(t, ms.Lookup("count").Set(ptr, reflect.ValueOf(int32(7))))
	require.True(t, ms.Lookup("Label").Set(ptr, reflect.ValueOf("inherited")))
	require.True(t, ms.Lookup("Title").Set(ptr, reflect.ValueOf("t")))

	require.Equal(t, "n", s.Name)
	require.Equal(t, int32(7), s.Count)
	require.Equal(t, "inherited", s.label)
	require.Equal(t, "t", s.title)

	v, ok := ms.Lookup("Label").Get(ptr)
	require.True(t, ok)
	require.Equal(t, "inherited", v.Interface())
	v, ok = ms.Lookup("count").Get(ptr)
	require.True(t, ok)
	require.Equal(t, int32(7), v.Interface())
}

type Badge struct {
	text string
}

func (b *Badge) Rank() string     { return b.text }
func (b *Badge) SetRank(s string) { b.text = s }

type hidden struct {
	note string
}

func (h *hidden) Note() string     { return h.note }
func (h *hidden) SetNote(s string) { h.note = s }

type Level struct {
	*Badge
}

type decorated struct {
	Level
	*hidden
	Own string
}

func TestPromotedThroughNilPointer(t *testing.T) {
	ms := mapper.CachedMembers(reflect.TypeOf(decorated{}))
	require.Equal(t, []string{"Own", "Note", "Rank"}, names(ms))

	d := &decorated{Own: "x"}
	ptr := reflect.ValueOf(d)

	_, ok := ms.Lookup("Rank").Get(ptr)
	require.False(t, ok)
	_, ok = ms.Lookup("Note").Get(ptr)
	require.False(t, ok)

	require.True(t, ms.Lookup("Rank").Set(ptr, reflect.ValueOf("gold")))
	require.NotNil(t, d.Badge)
	require.Equal(t, "gold", d.Level.Badge.text)
	v, ok := ms.Lookup("Rank").Get(ptr)
	require.True(t, ok)
	require.Equal(t, "gold", v.Interface())

	// Unexported embedded pointers cannot be allocated.
	require.False(t, ms.Lookup("Note").Set(ptr, reflect.ValueOf("n")))
	require.Nil(t, d.hidden)

	d.hidden = &hidden{}
	require.True(t, ms.Lookup("Note").Set(ptr, reflect.ValueOf("n")))
	v, ok = ms.Lookup("Note").Get(ptr)
	require.True(t, ok)
	require.Equal(t, "n", v.Interface())
}

func TestKindString(t *testing.T) {
	require.Equal(t, "field", mapper.Field.String())
	require.Equal(t, "property", mapper.Property.String())
}
