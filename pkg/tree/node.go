// Package tree defines the parsed data model shared by all treemark loaders
// and the renderer that turns it into indented display lines.
//
// A tree is built once per invocation by a loader, consumed once by the
// renderer, and discarded. Nodes are never mutated after construction and
// never shared across invocations.
package tree

// Kind identifies the variant of a Node.
type Kind int

const (
	// KindMapping is an ordered collection of key/value members.
	KindMapping Kind = iota
	// KindSequence is an ordered list of items without keys.
	KindSequence
	// KindScalar is a terminal value with no children.
	KindScalar
)

// String returns a short name for the kind, used in logs and errors.
func (k Kind) String() string {
	switch k {
	case KindMapping:
		return "mapping"
	case KindSequence:
		return "sequence"
	case KindScalar:
		return "scalar"
	}
	return "unknown"
}

// Member is a single key/value entry of a mapping.
type Member struct {
	Key   string
	Value *Node
}

// Node is a parsed value from the source data: a mapping, a sequence, or a
// scalar. Mapping members keep their source insertion order, which determines
// render order. Trees are finite and acyclic because they originate from
// parsed text.
type Node struct {
	Kind    Kind
	Value   string   // scalar source text, unset for containers
	Members []Member // mapping members, in insertion order
	Items   []*Node  // sequence items, in order
}

// Mapping creates a mapping node with the given members.
func Mapping(members ...Member) *Node {
	return &Node{Kind: KindMapping, Members: members}
}

// Sequence creates a sequence node with the given items.
func Sequence(items ...*Node) *Node {
	return &Node{Kind: KindSequence, Items: items}
}

// Scalar creates a scalar leaf holding the value's source text.
func Scalar(text string) *Node {
	return &Node{Kind: KindScalar, Value: text}
}

// AddMember appends a key/value member to a mapping node.
func (n *Node) AddMember(key string, value *Node) {
	n.Members = append(n.Members, Member{Key: key, Value: value})
}

// AddItem appends an item to a sequence node.
func (n *Node) AddItem(item *Node) {
	n.Items = append(n.Items, item)
}

// Count returns the total number of nodes in the tree, including n itself.
// Rendering emits exactly one line per node: the root becomes the label line
// and every descendant becomes one branch line.
func (n *Node) Count() int {
	if n == nil {
		return 0
	}
	total := 1
	for _, m := range n.Members {
		total += m.Value.Count()
	}
	for _, it := range n.Items {
		total += it.Count()
	}
	return total
}

// Depth returns the number of levels below n. A scalar or empty container
// has depth 0.
func (n *Node) Depth() int {
	if n == nil {
		return 0
	}
	max := 0
	for _, m := range n.Members {
		if d := m.Value.Depth() + 1; d > max {
			max = d
		}
	}
	for _, it := range n.Items {
		if d := it.Depth() + 1; d > max {
			max = d
		}
	}
	return max
}
