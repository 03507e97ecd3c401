// Package cli implements the commands of the cssobj tool.
package cli

import (
	"fmt"
	"io"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
)

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// tracer traces with key 'cssobj.cli'.
func tracer() tracing.Trace {
	return tracing.Select("cssobj.cli")
}

// tracingKeys are the tracers switched to debug level by --verbose.
var tracingKeys = []string{
	"cssobj.cli", "cssobj.compose", "cssobj.jss", "cssobj.loader", "cssobj.cssom", "cssobj.style",
}

// NewRootCommand creates the root command of the cssobj CLI.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cssobj",
		Short: "cssobj - CSS-object style sheets",
		Long: "Build CSS from CSS-object style documents (YAML, JSON, JSONC), " +
			"resolving class composition with `composes`.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(cmd)
			if err != nil {
				return err
			}
			if !isValidFormat(cfg.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", cfg.Format, ValidFormats)
			}
			if cfg.Verbose {
				traceTo(cmd.ErrOrStderr())
			}
			tracer().Debugf("cli: configuration %+v", cfg)
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.BoolP("verbose", "v", false, "verbose output")
	flags.String("format", "text", "output format (json|text)")
	flags.Bool("strict", false, "fail if a composition cannot be resolved")
	flags.Bool("counted", false, "generate counted class names instead of hashed ones")
	flags.String("prefix", "", "prefix for generated class names")
	flags.String("config", "", "config file (default ./cssobj.yaml, if present)")

	cmd.AddCommand(NewRenderCommand())
	cmd.AddCommand(NewClassesCommand())
	cmd.AddCommand(NewExplainCommand())

	return cmd
}

// traceTo routes the tracers of tracingKeys to w, at debug level.
// Without it every tracer is a no-op.
func traceTo(w io.Writer) {
	t := gologadapter.New()
	t.SetOutput(w)
	t.SetTraceLevel(tracing.LevelDebug)
	tracing.SetTraceSelector(tracing.SelectorForAdapter(func() tracing.Trace { return t }))
	for _, key := range tracingKeys {
		tracing.Select(key).SetTraceLevel(tracing.LevelDebug)
	}
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
