package cli

import (
	"fmt"

	"github.com/npillmayer/cssobj/jss"
	"github.com/spf13/cobra"
)

// NewRenderCommand creates the render command.
func NewRenderCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "render FILE",
		Short: "Print the CSS of a style document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOnSheet(cmd, args, func(_ *Config, sheet *jss.Sheet) error {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), sheet.String())
				return err
			})
		},
	}
}
