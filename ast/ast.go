// Package ast defines the node tree produced by parsing a TinyYAML document
// and consumed by the serializer and the object mapper.
package ast

import (
	"strings"
)

// NoLine is the line number of nodes that did not come from parsed text:
// roots, and nodes built by the encoder.
const NoLine = -1

const commentMarker = "#"

// Node is a single element of a TinyYAML tree.
type Node struct {
	// Line is the 1-based line the node was parsed from, or NoLine. The
	// first line of a document is line 1, which is also the number
	// reported by a StructuralError.
	Line int
	// Text is the original line with trailing whitespace removed.
	// It is empty for nodes that were not parsed.
	Text string
	// Indent is the number of leading tabs of Text. Roots have -1.
	Indent int

	Name    string
	Value   string
	Comment string

	Children []*Node
}

// NewNode returns a node for a parsed line. The indent is computed once from
// the leading tabs of text and never recomputed.
func NewNode(line int, text string) *Node {
	return &Node{
		Line:   line,
		Text:   text,
		Indent: len(text) - len(strings.TrimLeft(text, "\t")),
	}
}

// NewRoot returns a non-rendering container node.
func NewRoot() *Node {
	return &Node{Line: NoLine, Indent: -1}
}

// NewNamed returns a synthetic node carrying only a name and value.
func NewNamed(name, value string) *Node {
	return &Node{Line: NoLine, Name: name, Value: value}
}

// IsRoot reports whether n is a root container.
func (n *Node) IsRoot() bool {
	return n.Indent < 0 && n.Line == NoLine && n.Text == ""
}

// IsSynthetic reports whether n carries no original text.
func (n *Node) IsSynthetic() bool {
	return n.Text == ""
}

// Child returns the first direct child with the given name, or nil.
func (n *Node) Child(name string) *Node {
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Append adds children to n in order.
func (n *Node) Append(children ...*Node) {
	n.Children = append(n.Children, children...)
}

// Walk calls fn for every node in nodes, depth-first in pre-order. depth is 0
// for the nodes passed in. Returning false from fn skips the node's children.
func Walk(nodes []*Node, fn func(n *Node, depth int) bool) {
	walk(nodes, 0, fn)
}

func walk(nodes []*Node, depth int, fn func(n *Node, depth int) bool) {
	for _, n := range nodes {
		if fn(n, depth) {
			walk(n.Children, depth+1, fn)
		}
	}
}

// String returns the content of n as it would be synthesized, without
// indentation. A node without name and value renders as a comment line, "#"
// at the least, so the line is never mistaken for a blank one.
func (n *Node) String() string {
	hasValue := strings.TrimSpace(n.Value) != ""
	hasComment := strings.TrimSpace(n.Comment) != ""
	if n.Name == "" && !hasValue {
		if !hasComment {
			return commentMarker
		}
		return commentMarker + " " + n.Comment
	}

	var sb strings.Builder
	sb.WriteString(n.Name)
	if hasValue {
		sb.WriteString(": ")
		sb.WriteString(n.Value)
	}
	if hasComment {
		sb.WriteString(" " + commentMarker + " ")
		sb.WriteString(n.Comment)
	}
	return sb.String()
}
