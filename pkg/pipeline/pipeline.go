// Package pipeline provides the core document formatting pipeline.
//
// The pipeline consists of three stages:
//
//  1. Load: read the input file and build an ordered tree from it
//  2. Render: turn the tree into indented branch lines or a DOT graph
//  3. Emit: wrap the rendering in its output envelope (markdown fence, SVG)
//
// Each run executes all three stages; the stages are kept separate so the
// CLI can log and time them independently.
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{
//	    Source: pipeline.SourceJSON,
//	    File:   "messages.json",
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(string(result.Artifact))
package pipeline

import (
	"io"

	"github.com/charmbracelet/log"

	"treemark/pkg/errors"
)

// Source constants name the supported input kinds.
const (
	SourceJSON  = "json"
	SourceYAML  = "yaml"
	SourceConst = "const"
)

// Format constants for output formats.
const (
	FormatText = "text"
	FormatDOT  = "dot"
	FormatSVG  = "svg"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatText: true,
	FormatDOT:  true,
	FormatSVG:  true,
}

// ValidSources is the set of supported input kinds.
var ValidSources = map[string]bool{
	SourceJSON:  true,
	SourceYAML:  true,
	SourceConst: true,
}

// Options contains all configuration for a pipeline run.
type Options struct {
	// Load options
	Source    string // one of SourceJSON, SourceYAML, SourceConst
	File      string // input file path
	ConstName string // constant to extract, SourceConst only
	RootLabel string // first line of the rendering; defaults per source

	// Render options
	Format      string // one of FormatText, FormatDOT, FormatSVG
	ShowValues  bool   // append scalar source text to leaf labels
	IndexLabels bool   // label sequence items [0], [1], ...

	// Runtime options
	Logger *log.Logger

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Lines is the branch-line rendering. Empty for DOT and SVG output.
	Lines []string

	// Artifact is the final output: a fenced markdown block for text, DOT
	// source for dot, SVG bytes for svg.
	Artifact []byte

	// Stats contains size information about the parsed tree.
	Stats Stats
}

// Stats describes the parsed tree.
type Stats struct {
	NodeCount int
	Depth     int
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: text, dot, svg)", format)
	}
	return nil
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if !ValidSources[o.Source] {
		return errors.New(errors.ErrCodeInvalidInput,
			"invalid source: %q (must be one of: json, yaml, const)", o.Source)
	}
	if err := errors.ValidateInputPath(o.File); err != nil {
		return err
	}
	if o.Source == SourceConst {
		if err := errors.ValidateConstName(o.ConstName); err != nil {
			return err
		}
	}

	if o.Format == "" {
		o.Format = FormatText
	}
	if err := ValidateFormat(o.Format); err != nil {
		return err
	}

	if o.RootLabel == "" {
		o.RootLabel = defaultRootLabel(o)
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	o.validated = true
	return nil
}

// defaultRootLabel picks the first rendered line when the caller gave none:
// the constant name for literals, the word "root" for documents.
func defaultRootLabel(o *Options) string {
	if o.Source == SourceConst {
		return o.ConstName
	}
	return "root"
}
