package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/scott-cotton/cli"

	"github.com/KimNorgaard/go-tinyyaml/ast"
)

var spewConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	colors := cfg.colors(cc.Out)
	first := true
	return eachDocument(cfg.MainConfig, cc, args, func(doc *document, err error) error {
		if err != nil {
			return err
		}
		if !first {
			if _, err := io.WriteString(cc.Out, "---\n"); err != nil {
				return err
			}
		}
		first = false
		if cfg.Spew {
			spewConfig.Fdump(cc.Out, doc.nodes)
			return nil
		}
		return dumpTree(cc.Out, colors, doc.nodes)
	})
}

// dumpTree writes one line per node, indented two spaces per level.
func dumpTree(w io.Writer, colors *palette, nodes []*ast.Node) error {
	var err error
	ast.Walk(nodes, func(n *ast.Node, depth int) bool {
		var sb strings.Builder
		sb.WriteString(strings.Repeat("  ", depth))
		if n.Line != ast.NoLine {
			fmt.Fprintf(&sb, "%d ", n.Line)
		}
		sb.WriteString(colors.name.Sprintf("%q", n.Name))
		if n.Value != "" {
			sb.WriteString(" = ")
			sb.WriteString(colors.value.Sprintf("%q", n.Value))
		}
		if n.Comment != "" {
			sb.WriteString(" ")
			sb.WriteString(colors.comment.Sprintf("# %s", n.Comment))
		}
		sb.WriteString("\n")
		_, err = io.WriteString(w, sb.String())
		return err == nil
	})
	return err
}
