package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/KimNorgaard/go-tinyyaml"
	"github.com/KimNorgaard/go-tinyyaml/ast"
)

func tinyyamlMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Color && cfg.NoColor {
		return fmt.Errorf("%w: -color and -no-color are mutually exclusive", cli.ErrUsage)
	}
	cfg.setup()
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

const stdinName = "<stdin>"

// document is a parsed input.
type document struct {
	name  string
	nodes []*ast.Node
}

// eachDocument parses every file in args, or stdin when args is empty, and
// calls fn with the result. A file named "-" is stdin.
func eachDocument(cfg *MainConfig, cc *cli.Context, args []string, fn func(doc *document, err error) error) error {
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, file := range args {
		doc, err := readDocument(cc.In, file)
		if err == nil {
			cfg.logger().Debug("parsed document", "file", doc.name, "nodes", countNodes(doc.nodes))
		}
		if err := fn(doc, err); err != nil {
			return err
		}
	}
	return nil
}

func readDocument(stdin io.Reader, file string) (*document, error) {
	if file == "-" {
		nodes, err := tinyyaml.ParseReader(stdin)
		if err != nil {
			return &document{name: stdinName}, fmt.Errorf("%s: %w", stdinName, err)
		}
		return &document{name: stdinName, nodes: nodes}, nil
	}
	nodes, err := tinyyaml.ReadFile(file)
	return &document{name: file, nodes: nodes}, err
}

func countNodes(nodes []*ast.Node) int {
	n := 0
	ast.Walk(nodes, func(*ast.Node, int) bool {
		n++
		return true
	})
	return n
}
