package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"treemark/pkg/render/markdown"
	"treemark/pkg/render/nodelink"
	"treemark/pkg/source"
	"treemark/pkg/tree"
)

// Runner executes the load → render → emit pipeline.
//
// The Runner is stateless except for the logger. Multiple goroutines can
// safely use the same Runner with different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, the package default is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete pipeline for one input file.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{}

	loadStart := time.Now()
	root, err := r.Load(opts)
	if err != nil {
		return nil, err
	}
	result.Stats.NodeCount = root.Count()
	result.Stats.Depth = root.Depth()

	opts.Logger.Info("loaded input",
		"file", opts.File,
		"nodes", result.Stats.NodeCount,
		"depth", result.Stats.Depth,
		"duration", time.Since(loadStart))

	renderStart := time.Now()
	switch opts.Format {
	case FormatText:
		result.Lines = tree.Render(opts.RootLabel, root, tree.Options{
			ShowValues:  opts.ShowValues,
			IndexLabels: opts.IndexLabels,
		})
		result.Artifact = []byte(markdown.Fence(result.Lines))
	case FormatDOT:
		dot := nodelink.ToDOT(opts.RootLabel, root, nodelink.Options{ShowValues: opts.ShowValues})
		result.Artifact = []byte(dot)
	case FormatSVG:
		dot := nodelink.ToDOT(opts.RootLabel, root, nodelink.Options{ShowValues: opts.ShowValues})
		svg, err := nodelink.RenderSVG(ctx, dot)
		if err != nil {
			return nil, err
		}
		result.Artifact = svg
	}

	opts.Logger.Info("rendered output",
		"format", opts.Format,
		"bytes", len(result.Artifact),
		"duration", time.Since(renderStart))

	return result, nil
}

// Load runs the load stage only, returning the parsed tree.
func (r *Runner) Load(opts Options) (*tree.Node, error) {
	switch opts.Source {
	case SourceYAML:
		return source.LoadYAML(opts.File)
	case SourceConst:
		return source.LoadConst(opts.File, opts.ConstName)
	default:
		return source.LoadJSON(opts.File)
	}
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
