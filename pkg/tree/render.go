package tree

import (
	"fmt"
	"strings"
)

// Branch drawing pieces. A node's connector depends on whether it is the
// last sibling; the prefix handed to its children depends on the same bit,
// so "all-last" ancestor chains carry no vertical bars.
const (
	connectorMid  = "├── "
	connectorLast = "└── "
	barPrefix     = "│   "
	gapPrefix     = "    "
)

// Options configures tree rendering.
type Options struct {
	// ShowValues inlines a scalar's source text after its key
	// ("title: \"ok\""). Off by default: the output mimics a folder
	// listing, where only names matter.
	ShowValues bool

	// IndexLabels labels sequence items "[0]", "[1]", ... in source order.
	// When false, items render as bare branches without a label.
	IndexLabels bool
}

// Render walks root depth-first in pre-order and returns the display lines:
// the label on its own first line, then exactly one branch line per
// descendant node. Render performs no I/O and does not modify the tree.
func Render(label string, root *Node, opts Options) []string {
	lines := []string{label}
	return append(lines, renderChildren(root, "", opts)...)
}

// renderChildren emits the branch lines for n's children, in stored order.
// prefix is the accumulated indentation for this depth.
func renderChildren(n *Node, prefix string, opts Options) []string {
	if n == nil {
		return nil
	}
	var lines []string
	switch n.Kind {
	case KindMapping:
		for i, m := range n.Members {
			last := i == len(n.Members)-1
			lines = append(lines, renderEntry(entryLabel(m.Key, m.Value, opts), m.Value, prefix, last, opts)...)
		}
	case KindSequence:
		for i, it := range n.Items {
			last := i == len(n.Items)-1
			lines = append(lines, renderEntry(itemLabel(i, it, opts), it, prefix, last, opts)...)
		}
	case KindScalar:
		// leaves have no fan-out
	}
	return lines
}

// renderEntry emits the line for one child entry and recurses into it.
// last selects the connector and decides whether the continuation bar is
// carried down to deeper lines.
func renderEntry(label string, child *Node, prefix string, last bool, opts Options) []string {
	connector := connectorMid
	childPrefix := prefix + barPrefix
	if last {
		connector = connectorLast
		childPrefix = prefix + gapPrefix
	}

	line := prefix + connector + label
	if label == "" {
		line = strings.TrimRight(line, " ")
	}

	return append([]string{line}, renderChildren(child, childPrefix, opts)...)
}

// entryLabel builds the display label for a mapping member.
func entryLabel(key string, value *Node, opts Options) string {
	if opts.ShowValues && value != nil && value.Kind == KindScalar && value.Value != "" {
		return key + ": " + value.Value
	}
	return key
}

// itemLabel builds the display label for a sequence item.
func itemLabel(i int, item *Node, opts Options) string {
	if !opts.IndexLabels {
		if opts.ShowValues && item != nil && item.Kind == KindScalar {
			return item.Value
		}
		return ""
	}
	label := fmt.Sprintf("[%d]", i)
	if opts.ShowValues && item != nil && item.Kind == KindScalar && item.Value != "" {
		return label + ": " + item.Value
	}
	return label
}
