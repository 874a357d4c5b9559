package main

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	"github.com/KimNorgaard/go-tinyyaml/ast"
)

const defaultValueKey = "_value"

func export(cfg *YAMLConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Values == "" {
		return fmt.Errorf("%w: -values must not be empty", cli.ErrUsage)
	}
	first := true
	return eachDocument(cfg.MainConfig, cc, args, func(doc *document, err error) error {
		if err != nil {
			return err
		}
		out, err := yaml.Marshal(toMapSlice(doc.nodes, cfg.Values))
		if err != nil {
			return fmt.Errorf("%s: %w", doc.name, err)
		}
		if !first {
			if _, err := cc.Out.Write([]byte("---\n")); err != nil {
				return err
			}
		}
		first = false
		_, err = cc.Out.Write(out)
		return err
	})
}

// toMapSlice converts nodes to an ordered YAML mapping. Leaves map their name
// to their value. A node with children maps to a nested mapping; its own
// value, if any, is stored first under valueKey. Nameless leaves, such as
// comment lines, are dropped.
func toMapSlice(nodes []*ast.Node, valueKey string) yaml.MapSlice {
	ms := yaml.MapSlice{}
	for _, n := range nodes {
		if n.Name == "" && len(n.Children) == 0 {
			continue
		}
		if n.IsRoot() {
			ms = append(ms, toMapSlice(n.Children, valueKey)...)
			continue
		}
		if len(n.Children) == 0 {
			ms = append(ms, yaml.MapItem{Key: n.Name, Value: n.Value})
			continue
		}
		sub := yaml.MapSlice{}
		if n.Value != "" {
			sub = append(sub, yaml.MapItem{Key: valueKey, Value: n.Value})
		}
		sub = append(sub, toMapSlice(n.Children, valueKey)...)
		ms = append(ms, yaml.MapItem{Key: n.Name, Value: sub})
	}
	return ms
}
