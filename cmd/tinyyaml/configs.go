package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Verbose bool `cli:"name=v desc='log debug records to stderr'"`
	Color   bool `cli:"name=color desc='colorize output'"`
	NoColor bool `cli:"name=no-color desc='never colorize output'"`

	Logger *slog.Logger

	Main *cli.Command
}

func (cfg *MainConfig) setup() {
	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	cfg.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func (cfg *MainConfig) logger() *slog.Logger {
	if cfg.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return cfg.Logger
}

// colors returns the palette for w: enabled when asked for, or when w is a
// terminal and -no-color was not given.
func (cfg *MainConfig) colors(w io.Writer) *palette {
	switch {
	case cfg.NoColor:
		return newPalette(false)
	case cfg.Color:
		return newPalette(true)
	}
	f, ok := w.(*os.File)
	if !ok {
		return newPalette(false)
	}
	return newPalette(isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

type palette struct {
	name    *color.Color
	value   *color.Color
	comment *color.Color
	added   *color.Color
	removed *color.Color
	ok      *color.Color
	failed  *color.Color
}

func newPalette(enabled bool) *palette {
	p := &palette{
		name:    color.RGB(128, 168, 196),
		value:   color.RGB(8, 196, 16),
		comment: color.New(color.FgBlue),
		added:   color.New(color.FgGreen),
		removed: color.New(color.FgRed),
		ok:      color.New(color.FgGreen, color.Bold),
		failed:  color.New(color.FgRed, color.Bold),
	}
	for _, c := range []*color.Color{p.name, p.value, p.comment, p.added, p.removed, p.ok, p.failed} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

type CheckConfig struct {
	*cli.Command
	*MainConfig

	Quiet bool `cli:"name=q desc='only report files with errors'"`
}

type FmtConfig struct {
	*cli.Command
	*MainConfig

	Write bool `cli:"name=w desc='write result to the source file instead of stdout'"`
	Diff  bool `cli:"name=d desc='display a diff instead of the formatted document'"`
}

type DumpConfig struct {
	*cli.Command
	*MainConfig

	Spew bool `cli:"name=spew desc='dump the raw node structure'"`
}

type YAMLConfig struct {
	*cli.Command
	*MainConfig

	Values string `cli:"name=values desc='key holding the value of a node that also has children'"`
}
