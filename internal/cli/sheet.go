package cli

import (
	"fmt"
	"io"

	"github.com/npillmayer/cssobj/compose"
	"github.com/npillmayer/cssobj/jss"
	"github.com/npillmayer/cssobj/loader"
	"github.com/spf13/cobra"
)

// buildSheet loads a style document and builds its sheet with the compose
// plugin. Composition warnings are written to warnOut; with cfg.Strict
// they are returned as an error as well.
func buildSheet(cfg *Config, path string, warnOut io.Writer) (*jss.Sheet, error) {
	decls, err := loader.Load(path)
	if err != nil {
		return nil, err
	}
	opts := []jss.Option{jss.WithClassPrefix(cfg.Prefix)}
	if cfg.Counted {
		opts = append(opts, jss.WithClassNamer(jss.CountedClassNames()))
	}
	collector := &compose.Collector{}
	engine := jss.New(opts...).Use(compose.New(compose.WithReporter(collector)).Plugin())
	sheet := engine.CreateStyleSheet(decls)
	for _, w := range collector.Warnings() {
		fmt.Fprintf(warnOut, "warning: rule %q: %s: %s\n", w.Rule, w.Kind, w.Ref)
		tracer().Debugf("%s", w.Error())
	}
	if cfg.Strict && collector.Err() != nil {
		return sheet, fmt.Errorf("%s: %d composition warning(s): %w",
			path, len(collector.Warnings()), collector.Err())
	}
	return sheet, nil
}

// runOnSheet is the common frame of commands working on a single style
// document.
func runOnSheet(cmd *cobra.Command, args []string, fn func(*Config, *jss.Sheet) error) error {
	cfg, err := LoadConfig(cmd)
	if err != nil {
		return err
	}
	sheet, err := buildSheet(cfg, args[0], cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	return fn(cfg, sheet)
}
