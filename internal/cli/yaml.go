package cli

import (
	"github.com/spf13/cobra"

	"treemark/pkg/pipeline"
)

// yamlCommand creates the yaml command for converting YAML documents.
func (c *CLI) yamlCommand() *cobra.Command {
	opts := &convertOpts{}

	cmd := &cobra.Command{
		Use:   "yaml",
		Short: "Render a YAML document as an indented tree",
		Long: `Render a YAML document as an indented tree.

Same contract as the json command; key order follows the document.

Example:
  treemark yaml --file messages.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runConvert(cmd.Context(), cmd, pipeline.SourceYAML, opts)
		},
	}

	registerConvertFlags(cmd, opts)
	return cmd
}
