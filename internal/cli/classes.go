package cli

import (
	"encoding/json"
	"fmt"

	"github.com/npillmayer/cssobj/jss"
	"github.com/spf13/cobra"
)

// NewClassesCommand creates the classes command.
func NewClassesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "classes FILE",
		Short: "Print the class list of every named rule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOnSheet(cmd, args, func(cfg *Config, sheet *jss.Sheet) error {
				out := cmd.OutOrStdout()
				if cfg.Format == "json" {
					enc := json.NewEncoder(out)
					enc.SetIndent("", "  ")
					return enc.Encode(sheet.Classes())
				}
				for _, r := range sheet.RuleList() {
					if !r.Named() {
						continue
					}
					if _, err := fmt.Fprintf(out, "%s: %s\n", r.Name(), r.ClassName()); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}
