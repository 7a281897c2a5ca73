package cli

import (
	"github.com/spf13/cobra"

	"treemark/pkg/pipeline"
)

// constCommand creates the const command for converting object literals
// bound to a named constant in TS/JS source.
func (c *CLI) constCommand() *cobra.Command {
	opts := &convertOpts{}

	cmd := &cobra.Command{
		Use:   "const",
		Short: "Render an object literal from TS/JS source as an indented tree",
		Long: `Render an object literal from TS/JS source as an indented tree.

The first top-level "const <name> = { ... }" declaration (optionally
"export const") is extracted and parsed. The constant name becomes the
first line of the rendering.

Example:
  treemark const --file messages.ts --const japanese`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runConvert(cmd.Context(), cmd, pipeline.SourceConst, opts)
		},
	}

	registerConvertFlags(cmd, opts)
	cmd.Flags().StringVar(&opts.constName, "const", "", "name of the constant to extract")
	_ = cmd.MarkFlagRequired("const")
	return cmd
}
