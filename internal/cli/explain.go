package cli

import (
	"fmt"
	"os"

	"github.com/npillmayer/cssobj/cssom"
	"github.com/npillmayer/cssobj/cssom/douceuradapter"
	"github.com/npillmayer/cssobj/jss"
	"github.com/npillmayer/cssobj/jss/jssdbg"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
)

// NewExplainCommand creates the explain command.
func NewExplainCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "explain FILE",
		Short: "Show where the classes of every rule come from",
		Long: "Show the class list of every rule as a tree. With --globals, " +
			"global classes not defined in any of the given CSS files are flagged.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOnSheet(cmd, args, func(cfg *Config, sheet *jss.Sheet) error {
				var known map[string]bool
				if len(cfg.Globals) > 0 {
					names, err := globalClasses(cfg.Globals)
					if err != nil {
						return err
					}
					known = jssdbg.KnownClasses(names)
				}
				return jssdbg.Print(cmd.OutOrStdout(), sheet, known)
			})
		},
	}
	cmd.Flags().StringSlice("globals", nil, "plain CSS files defining global classes")
	return cmd
}

// globalClasses reads plain CSS files and collects the class names they
// define. Every unreadable file is reported.
func globalClasses(paths []string) ([]string, error) {
	var names []string
	var errs error
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		sheet, err := douceuradapter.Parse(string(data))
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", path, err))
			continue
		}
		names = append(names, cssom.ClassNames(sheet)...)
	}
	return names, errs
}
