package ast

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewNodeIndent(t *testing.T) {
	tests := []struct {
		text     string
		expected int
	}{
		{"Level1", 0},
		{"\tLevel2", 1},
		{"\t\tLevel3: value", 2},
		{"\t key\twith\ttabs", 1},
		{"", 0},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			n := NewNode(1, tt.text)
			require.Equal(t, tt.expected, n.Indent)
			require.Equal(t, tt.text, n.Text)
			require.Empty(t, n.Name)
			require.Empty(t, n.Value)
			require.Empty(t, n.Comment)
		})
	}
}

func TestRoot(t *testing.T) {
	root := NewRoot()
	require.True(t, root.IsRoot())
	require.Equal(t, -1, root.Indent)
	require.Equal(t, NoLine, root.Line)

	require.False(t, NewNode(1, "a").IsRoot())
	require.False(t, NewNamed("a", "b").IsRoot())
}

func TestString(t *testing.T) {
	n := &Node{Name: "Level1", Value: "Level1Value", Comment: "Comment"}
	require.Equal(t, "Level1: Level1Value # Comment", n.String())

	n = &Node{Name: "Level1", Value: "  "}
	require.Equal(t, "Level1", n.String())

	n = &Node{Comment: "only"}
	require.Equal(t, "# only", n.String())

	n = &Node{}
	require.Equal(t, "#", n.String())

	n = &Node{Value: "v", Comment: "c"}
	require.Equal(t, ": v # c", n.String())
}

func TestWalk(t *testing.T) {
	a := NewNamed("a", "")
	b := NewNamed("b", "")
	c := NewNamed("c", "")
	d := NewNamed("d", "")
	a.Append(b)
	b.Append(c)

	var names []string
	var depths []int
	Walk([]*Node{a, d}, func(n *Node, depth int) bool {
		names = append(names, n.Name)
		depths = append(depths, depth)
		return true
	})
	require.Equal(t, []string{"a", "b", "c", "d"}, names)
	require.Equal(t, []int{0, 1, 2, 0}, depths)

	names = nil
	Walk([]*Node{a, d}, func(n *Node, _ int) bool {
		names = append(names, n.Name)
		return n.Name != "b"
	})
	require.Equal(t, []string{"a", "b", "d"}, names)
	require.Same(t, b, a.Child("b"))
	require.Nil(t, a.Child("zzz"))
}
