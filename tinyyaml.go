package tinyyaml

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/KimNorgaard/go-tinyyaml/ast"
	"github.com/KimNorgaard/go-tinyyaml/internal/formatter"
	"github.com/KimNorgaard/go-tinyyaml/internal/lexer"
	"github.com/KimNorgaard/go-tinyyaml/internal/parser"
)

// Parse parses TinyYAML text and returns its top-level nodes in order.
// Lines may end in "\n" or "\r\n".
//
// If the indentation of a line is more than one level deeper than the line
// it nests under, Parse returns a *StructuralError.
func Parse(data []byte) ([]*ast.Node, error) {
	return ParseString(string(data))
}

// ParseString is like Parse but takes a string.
func ParseString(s string) ([]*ast.Node, error) {
	return ParseLines(lexer.SplitString(s))
}

// ParseLines parses text that has already been split into lines.
func ParseLines(lines []string) ([]*ast.Node, error) {
	return parser.New(lines).Parse()
}

// ParseReader reads r to the end and parses it.
//
// Note: This is a non-streaming implementation. It reads the entire
// reader into memory first before parsing.
func ParseReader(r io.Reader) ([]*ast.Node, error) {
	lines, err := lexer.Lines(r)
	if err != nil {
		return nil, err
	}
	return ParseLines(lines)
}

// Serialize returns the text of nodes, depth-first, with lines joined by
// "\r\n". Parsed nodes are written as their original text, so
// Serialize(Parse(text)) reproduces tab-indented CRLF text exactly. Nodes
// without original text, such as those built by Encode, are rendered from
// their name, value and comment. Root nodes are not written themselves.
func Serialize(nodes []*ast.Node) string {
	var sb strings.Builder
	// strings.Builder never fails to write.
	_ = formatter.New(&sb, false).Format(nodes)
	return sb.String()
}

// Format is like Serialize but renders every node from its name, value and
// comment, so edits made after parsing show up in the output. Indentation,
// separator spacing and comment spacing are normalized.
func Format(nodes []*ast.Node) string {
	var sb strings.Builder
	_ = formatter.New(&sb, true).Format(nodes)
	return sb.String()
}

// Marshal returns the TinyYAML encoding of v, a struct or a pointer to one.
func Marshal(v any, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := NewEncoder(&buf, opts...).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal parses data and decodes it into the struct pointed to by v.
// Pass KnownTypes to allow nested structs to be decoded.
func Unmarshal(data []byte, v any, opts ...Option) error {
	return NewDecoder(bytes.NewReader(data), opts...).Decode(v)
}

// ReadFile parses the named file.
func ReadFile(name string) ([]*ast.Node, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("tinyyaml: %w", err)
	}
	defer f.Close()

	nodes, err := ParseReader(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return nodes, nil
}

// WriteFile serializes nodes and writes them to the named file, creating it
// if necessary.
func WriteFile(name string, nodes []*ast.Node) error {
	if err := os.WriteFile(name, []byte(Serialize(nodes)), 0o644); err != nil {
		return fmt.Errorf("tinyyaml: %w", err)
	}
	return nil
}
