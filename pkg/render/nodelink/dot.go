// Package nodelink renders a parsed tree as a Graphviz node-link diagram.
// It is the alternative to the markdown sink for readers who want a picture
// of the data's shape rather than an indented listing.
package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"treemark/pkg/errors"
	"treemark/pkg/tree"
)

// Options configures node-link rendering.
type Options struct {
	// ShowValues includes scalar source text in leaf labels.
	ShowValues bool
}

// ToDOT converts a tree to Graphviz DOT format. Node IDs are the key paths
// from the root, so repeated key names at different depths stay distinct.
// The resulting DOT string can be rendered with [RenderSVG].
func ToDOT(label string, root *tree.Node, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.4;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	fmt.Fprintf(&buf, "  %q [label=%q];\n", label, label)
	writeChildren(&buf, label, label, root, opts)

	buf.WriteString("}\n")
	return buf.String()
}

// writeChildren emits one DOT node and one edge per child of n, then
// recurses. parentID is the path-based identifier of n.
func writeChildren(buf *bytes.Buffer, parentID, path string, n *tree.Node, opts Options) {
	emit := func(seg, label string, child *tree.Node) {
		id := path + "/" + seg
		fmt.Fprintf(buf, "  %q [%s];\n", id, strings.Join(nodeAttrs(label, child, opts), ", "))
		fmt.Fprintf(buf, "  %q -> %q;\n", parentID, id)
		writeChildren(buf, id, id, child, opts)
	}

	switch n.Kind {
	case tree.KindMapping:
		for _, m := range n.Members {
			emit(m.Key, m.Key, m.Value)
		}
	case tree.KindSequence:
		for i, it := range n.Items {
			seg := fmt.Sprintf("[%d]", i)
			emit(seg, seg, it)
		}
	}
}

// nodeAttrs builds the attribute list for one DOT node. Scalar leaves get a
// dashed outline so container and value nodes read differently at a glance.
func nodeAttrs(label string, n *tree.Node, opts Options) []string {
	if n.Kind == tree.KindScalar {
		if opts.ShowValues && n.Value != "" {
			label = label + "\n" + n.Value
		}
		return []string{fmt.Sprintf("label=%q", label), `style="rounded,filled,dashed"`, "fillcolor=lightgrey"}
	}
	return []string{fmt.Sprintf("label=%q", label)}
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render SVG")
	}
	return buf.Bytes(), nil
}
