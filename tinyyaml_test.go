package tinyyaml_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/KimNorgaard/go-tinyyaml"
	"github.com/KimNorgaard/go-tinyyaml/ast"
)

const graph = "Level1: Level1Value # Comment\r\n" +
	"\tLevel2\r\n" +
	"\t\tLevel3\r\n" +
	"Level1a\r\n" +
	"\tLevel2\r\n" +
	"\tLevel2a\r\n" +
	"Level1b\r\n" +
	"# NoNameOrValue\r\n" +
	": NoNameOrComment\r\n" +
	":\r\n" +
	"#"

func TestParse(t *testing.T) {
	t.Run("Tree Shape", func(t *testing.T) {
		nodes, err := tinyyaml.ParseString(graph)
		require.NoError(t, err)

		require.Len(t, nodes, 7)
		require.Len(t, nodes[0].Children, 1)
		require.Len(t, nodes[1].Children, 2)
		require.Empty(t, nodes[2].Children)
		require.Len(t, nodes[0].Children[0].Children, 1)
	})

	t.Run("Content", func(t *testing.T) {
		nodes, err := tinyyaml.Parse([]byte(graph))
		require.NoError(t, err)

		require.Equal(t, "Level1", nodes[0].Name)
		require.Equal(t, "Level1Value", nodes[0].Value)
		require.Equal(t, "Comment", nodes[0].Comment)

		require.Equal(t, "", nodes[3].Name)
		require.Equal(t, "", nodes[3].Value)
		require.Equal(t, "NoNameOrValue", nodes[3].Comment)

		require.Equal(t, "", nodes[4].Name)
		require.Equal(t, "NoNameOrComment", nodes[4].Value)
		require.Equal(t, "", nodes[4].Comment)

		for _, n := range nodes[5:] {
			require.Equal(t, "", n.Name)
			require.Equal(t, "", n.Value)
			require.Equal(t, "", n.Comment)
		}
	})

	t.Run("LF Line Endings", func(t *testing.T) {
		nodes, err := tinyyaml.ParseString(strings.ReplaceAll(graph, "\r\n", "\n"))
		require.NoError(t, err)
		require.Len(t, nodes, 7)
		require.Equal(t, graph, tinyyaml.Serialize(nodes))
	})

	t.Run("Reader", func(t *testing.T) {
		nodes, err := tinyyaml.ParseReader(strings.NewReader(graph + "\r\n"))
		require.NoError(t, err)
		require.Len(t, nodes, 7)
	})

	t.Run("Lines", func(t *testing.T) {
		nodes, err := tinyyaml.ParseLines([]string{"a", "", "\tb: 1"})
		require.NoError(t, err)
		require.Len(t, nodes, 1)
		require.Equal(t, "1", nodes[0].Children[0].Value)
		require.Equal(t, 3, nodes[0].Children[0].Line)
	})
}

func TestParseStructuralError(t *testing.T) {
	_, err := tinyyaml.ParseString("Level1\r\n\t\tLevel3")
	require.Error(t, err)

	var se *tinyyaml.StructuralError
	require.True(t, errors.As(err, &se))
	require.Equal(t, 2, se.Line)
	require.Equal(t, "\t\tLevel3", se.Text)
	require.EqualError(t, err, `tinyyaml: invalid indentation on line 2: "\t\tLevel3"`)
}

func TestSerializeRoundTrip(t *testing.T) {
	nodes, err := tinyyaml.ParseString(graph)
	require.NoError(t, err)
	require.Equal(t, graph, tinyyaml.Serialize(nodes))
}

func TestFormatReflectsEdits(t *testing.T) {
	nodes, err := tinyyaml.ParseString("Port:   80   #  http\r\n\tHost: a")
	require.NoError(t, err)

	nodes[0].Value = "8080"
	nodes[0].Children[0].Comment = "primary"

	require.Equal(t, "Port:   80   #  http\r\n\tHost: a", tinyyaml.Serialize(nodes))
	require.Equal(t, "Port: 8080 # http\r\n\tHost: a # primary", tinyyaml.Format(nodes))
}

func TestFormatOutputParses(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bare comment with children", "A\r\n\t#\r\n\t\tB: 1", "A\r\n\t#\r\n\t\tB: 1"},
		{"bare separator with children", "A\r\n\t:\r\n\t\tB: 1", "A\r\n\t#\r\n\t\tB: 1"},
		{"comment only", "#   note  \r\n\tA", "# note\r\n\tA"},
		{"value without name", ":  v  # c", ": v # c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nodes, err := tinyyaml.ParseString(tt.input)
			require.NoError(t, err)

			out := tinyyaml.Format(nodes)
			require.Equal(t, tt.want, out)

			again, err := tinyyaml.ParseString(out)
			require.NoError(t, err)
			if diff := cmp.Diff(nodes, again, cmpopts.IgnoreFields(ast.Node{}, "Text"), cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("tree changed after formatting (-before +after):\n%s", diff)
			}
		})
	}
}

func TestReadWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "graph.tyml")

	nodes, err := tinyyaml.ParseString(graph)
	require.NoError(t, err)
	require.NoError(t, tinyyaml.WriteFile(path, nodes))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, graph, string(data))

	read, err := tinyyaml.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, graph, tinyyaml.Serialize(read))

	_, err = tinyyaml.ReadFile(filepath.Join(dir, "missing.tyml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.tyml")
	require.NoError(t, os.WriteFile(bad, []byte("a\n\t\tb"), 0o644))
	_, err = tinyyaml.ReadFile(bad)
	var se *tinyyaml.StructuralError
	require.ErrorAs(t, err, &se)
	require.Contains(t, err.Error(), bad)
}
