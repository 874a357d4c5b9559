// Package parser builds a TinyYAML node forest from lines of text.
package parser

import (
	"strings"
	"unicode"

	"golang.org/x/sync/errgroup"

	"github.com/KimNorgaard/go-tinyyaml/ast"
	"github.com/KimNorgaard/go-tinyyaml/errors"
	"github.com/KimNorgaard/go-tinyyaml/internal/lexer"
)

// Parser holds the nodes created from the input lines.
type Parser struct {
	nodes []*ast.Node
}

// New creates a parser over lines. Blank lines produce no node and take no
// part in nesting decisions.
func New(lines []string) *Parser {
	p := &Parser{nodes: make([]*ast.Node, 0, len(lines))}
	for i, line := range lines {
		if lexer.IsBlank(line) {
			continue
		}
		p.nodes = append(p.nodes, ast.NewNode(i+1, strings.TrimRightFunc(line, unicode.IsSpace)))
	}
	return p
}

// Parse runs the structural and content passes and returns the top-level
// nodes in input order. The two passes write disjoint fields and run
// concurrently; nothing is returned before both have finished.
func (p *Parser) Parse() ([]*ast.Node, error) {
	root := ast.NewRoot()

	var g errgroup.Group
	g.Go(func() error { return p.assemble(root) })
	g.Go(p.decompose)
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return root.Children, nil
}

// assemble attaches every node to its parent using a stack of open nodes.
func (p *Parser) assemble(root *ast.Node) error {
	stack := []*ast.Node{root}
	for _, n := range p.nodes {
		top := stack[len(stack)-1]
		diff := n.Indent - top.Indent
		switch {
		case diff > 1:
			return &errors.StructuralError{Line: n.Line, Text: n.Text}
		case diff == 1:
		default:
			// Siblings pop once; each level of outdent pops one more.
			stack = stack[:len(stack)-(1-diff)]
		}
		parent := stack[len(stack)-1]
		parent.Children = append(parent.Children, n)
		stack = append(stack, n)
	}
	return nil
}

func (p *Parser) decompose() error {
	for _, n := range p.nodes {
		n.Name, n.Value, n.Comment = lexer.Split(n.Text)
	}
	return nil
}
