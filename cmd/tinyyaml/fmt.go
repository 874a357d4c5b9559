package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/KimNorgaard/go-tinyyaml"
)

func format(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Write && cfg.Diff {
		return fmt.Errorf("%w: -w and -d are mutually exclusive", cli.ErrUsage)
	}
	if cfg.Write && len(args) == 0 {
		return fmt.Errorf("%w: -w requires file arguments", cli.ErrUsage)
	}
	colors := cfg.colors(cc.Out)
	return eachDocument(cfg.MainConfig, cc, args, func(doc *document, err error) error {
		if err != nil {
			return err
		}
		formatted := tinyyaml.Format(doc.nodes)
		switch {
		case cfg.Diff:
			return writeDiff(cc.Out, colors, doc.name, tinyyaml.Serialize(doc.nodes), formatted)
		case cfg.Write:
			if doc.name == stdinName {
				return fmt.Errorf("%w: -w cannot rewrite stdin", cli.ErrUsage)
			}
			cfg.logger().Debug("rewriting document", "file", doc.name)
			return os.WriteFile(doc.name, []byte(formatted), 0o644)
		default:
			if formatted == "" {
				return nil
			}
			_, err := io.WriteString(cc.Out, formatted+"\r\n")
			return err
		}
	})
}

type diffLine struct {
	op   diffpatch.Operation
	text string
}

// lineDiff compares from and to line by line. Both are CRLF separated.
func lineDiff(from, to string) []diffLine {
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(from+"\r\n", to+"\r\n")
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var res []diffLine
	for _, d := range diffs {
		for _, l := range strings.SplitAfter(d.Text, "\n") {
			if l == "" {
				continue
			}
			res = append(res, diffLine{op: d.Type, text: strings.TrimRight(l, "\r\n")})
		}
	}
	return res
}

func writeDiff(w io.Writer, colors *palette, name, from, to string) error {
	diffs := lineDiff(from, to)
	changed := false
	for _, d := range diffs {
		if d.op != diffpatch.DiffEqual {
			changed = true
			break
		}
	}
	if !changed {
		return nil
	}
	if _, err := fmt.Fprintf(w, "--- %s\n+++ %s (formatted)\n", name, name); err != nil {
		return err
	}
	for _, d := range diffs {
		var err error
		switch d.op {
		case diffpatch.DiffInsert:
			_, err = colors.added.Fprintf(w, "+%s\n", d.text)
		case diffpatch.DiffDelete:
			_, err = colors.removed.Fprintf(w, "-%s\n", d.text)
		default:
			_, err = fmt.Fprintf(w, " %s\n", d.text)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
