package main

import (
	"errors"
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/KimNorgaard/go-tinyyaml"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	colors := cfg.colors(cc.Out)
	failed := 0
	err = eachDocument(cfg.MainConfig, cc, args, func(doc *document, err error) error {
		if err != nil {
			failed++
			var se *tinyyaml.StructuralError
			if errors.As(err, &se) {
				cfg.logger().Debug("structural error", "file", doc.name, "line", se.Line, "text", se.Text)
			}
			fmt.Fprintf(cc.Out, "%s %v\n", colors.failed.Sprint("FAIL"), err)
			return nil
		}
		if !cfg.Quiet {
			fmt.Fprintf(cc.Out, "%s %s (%d nodes)\n", colors.ok.Sprint("ok"), doc.name, countNodes(doc.nodes))
		}
		return nil
	})
	if err != nil {
		return err
	}
	if failed > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
