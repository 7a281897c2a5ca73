package cli

import (
	"github.com/spf13/cobra"

	"treemark/pkg/pipeline"
)

// jsonCommand creates the json command for converting JSON documents.
func (c *CLI) jsonCommand() *cobra.Command {
	opts := &convertOpts{}

	cmd := &cobra.Command{
		Use:   "json",
		Short: "Render a JSON document as an indented tree",
		Long: `Render a JSON document as an indented tree.

The document is read in full and rendered one line per node, with the
fixed label "root" as the first line. Key order follows the document.

Example:
  treemark json --file messages.json
  treemark json --file messages.json --output messages.md --values`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runConvert(cmd.Context(), cmd, pipeline.SourceJSON, opts)
		},
	}

	registerConvertFlags(cmd, opts)
	return cmd
}
