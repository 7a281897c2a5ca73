package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"treemark/pkg/errors"
	"treemark/pkg/pipeline"
	"treemark/pkg/render/markdown"
)

// convertOpts holds the command-line flags shared by the json, yaml, and
// const commands.
type convertOpts struct {
	file      string // input file path
	output    string // output file path, empty means stdout
	format    string // output format: text, dot, svg
	values    bool   // append scalar source text to leaf labels
	indices   bool   // label sequence items [0], [1], ...
	constName string // constant to extract, const command only
}

// registerConvertFlags adds the flags common to all converter commands.
func registerConvertFlags(cmd *cobra.Command, opts *convertOpts) {
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "input file")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&opts.format, "format", "", "output format: text (default), dot, svg")
	cmd.Flags().BoolVar(&opts.values, "values", false, "append scalar values to leaf labels")
	cmd.Flags().BoolVar(&opts.indices, "indices", true, "label sequence items [0], [1], ...")
	_ = cmd.MarkFlagRequired("file")
}

// runConvert executes the pipeline for one converter command and writes the
// result. Config file values fill in flags the user did not set.
func (c *CLI) runConvert(ctx context.Context, cmd *cobra.Command, source string, opts *convertOpts) error {
	cfg, err := loadConfig()
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "cannot read config file")
	}

	format := opts.format
	if format == "" {
		format = cfg.Format
	}
	values := opts.values
	if !cmd.Flags().Changed("values") {
		values = cfg.Values
	}
	indices := opts.indices
	if !cmd.Flags().Changed("indices") {
		indices = cfg.Indices
	}

	result, err := c.newRunner().Execute(ctx, pipeline.Options{
		Source:      source,
		File:        opts.file,
		ConstName:   opts.constName,
		Format:      format,
		ShowValues:  values,
		IndexLabels: indices,
		Logger:      c.Logger,
	})
	if err != nil {
		return err
	}

	output := opts.output
	if output == "" && format == pipeline.FormatSVG {
		// SVG bytes are not for terminals; derive a path from the input.
		output = strings.TrimSuffix(opts.file, filepath.Ext(opts.file)) + ".svg"
	}

	if err := writeResult(output, format, result); err != nil {
		return err
	}

	if output != "" {
		printSuccess("Rendered %s", opts.file)
		printFile(output)
		printStats(result.Stats.NodeCount, result.Stats.Depth)
	}
	return nil
}

// writeResult writes the artifact to output, or stdout when output is empty.
func writeResult(output, format string, result *pipeline.Result) error {
	if format == pipeline.FormatText {
		if output == "" {
			return markdown.Write(os.Stdout, result.Lines)
		}
		return markdown.WriteFile(output, result.Lines)
	}

	out, err := openOutput(output)
	if err != nil {
		return errors.Wrap(errors.ErrCodeWrite, err, "cannot write %s", output)
	}
	if _, err := out.Write(result.Artifact); err != nil {
		out.Close()
		return errors.Wrap(errors.ErrCodeWrite, err, "cannot write %s", output)
	}
	if err := out.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeWrite, err, "cannot write %s", output)
	}
	return nil
}
