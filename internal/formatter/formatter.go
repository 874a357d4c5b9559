// Package formatter writes a TinyYAML node forest back to text.
package formatter

import (
	"io"
	"strings"

	"github.com/KimNorgaard/go-tinyyaml/ast"
)

const (
	// LineSeparator joins output lines regardless of platform.
	LineSeparator = "\r\n"
	indentUnit    = "\t"
)

// Formatter writes nodes to an output stream.
type Formatter struct {
	w          io.Writer
	synthesize bool
	wrote      bool
}

// New returns a formatter that writes to w. By default a parsed node is
// written as its original text, so parsing and formatting without edits is
// lossless. With synthesize set, every line is rebuilt from the node's name,
// value and comment, which reflects edits made after parsing.
func New(w io.Writer, synthesize bool) *Formatter {
	return &Formatter{w: w, synthesize: synthesize}
}

// Format writes nodes depth-first in pre-order. Root containers are not
// written; their children are written in their place.
func (f *Formatter) Format(nodes []*ast.Node) error {
	return f.writeNodes(nodes, 0)
}

func (f *Formatter) writeNodes(nodes []*ast.Node, depth int) error {
	for _, n := range nodes {
		if n.IsRoot() {
			if err := f.writeNodes(n.Children, depth); err != nil {
				return err
			}
			continue
		}
		if err := f.writeLine(f.line(n, depth)); err != nil {
			return err
		}
		if err := f.writeNodes(n.Children, depth+1); err != nil {
			return err
		}
	}
	return nil
}

func (f *Formatter) line(n *ast.Node, depth int) string {
	if !f.synthesize && !n.IsSynthetic() {
		return n.Text
	}
	return strings.Repeat(indentUnit, depth) + n.String()
}

func (f *Formatter) writeLine(s string) error {
	if f.wrote {
		if _, err := io.WriteString(f.w, LineSeparator); err != nil {
			return err
		}
	}
	f.wrote = true
	_, err := io.WriteString(f.w, s)
	return err
}
