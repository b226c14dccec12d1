// Package proptree implements the hierarchical property model shared
// by tasks, resources and scenarios: ordered trees of nodes whose
// attribute tables are declared by a schema, duplicated per scenario
// where requested, and filled in by inheritance passes.
package proptree

import (
	"strconv"
	"strings"
)

// Reserved attribute ids that resolve to built-in node fields instead
// of declared holders.
const (
	ReservedID    = "id"
	ReservedName  = "name"
	ReservedSeqNo = "seqno"
)

// Node is one property of a Set: a tree node with a stable position
// among its siblings, a plain attribute table and one attribute table
// per scenario.
//
// Nodes are created through Set.NewNode, which wires the tree links,
// assigns the sequence numbers and declares holders for every known
// attribute. Reparenting after construction is not supported.
type Node struct {
	set    *Set
	id     string
	name   string
	parent *Node

	sequenceNo int
	levelSeqNo int
	level      int // parent hops to the root, -1 until first computed

	children []*Node

	attributes         map[string]AttributeValue
	scenarioAttributes []map[string]AttributeValue
}

func newNode(set *Set, id, name string, parent *Node) *Node {
	n := &Node{
		set:        set,
		id:         id,
		name:       name,
		parent:     parent,
		level:      -1,
		attributes: make(map[string]AttributeValue),
	}
	n.sequenceNo = len(set.nodes) + 1
	if parent != nil {
		parent.addChild(n)
		n.levelSeqNo = len(parent.children)
	} else {
		n.levelSeqNo = len(set.topLevel) + 1
	}
	scenarios := 0
	if set.project != nil {
		scenarios = set.project.ScenarioCount()
	}
	n.scenarioAttributes = make([]map[string]AttributeValue, scenarios)
	for i := range n.scenarioAttributes {
		n.scenarioAttributes[i] = make(map[string]AttributeValue)
	}
	return n
}

// addChild appends child to the ordered child list. Children are
// append-only and never reordered, so levelSeqNo stays stable.
func (n *Node) addChild(child *Node) {
	n.children = append(n.children, child)
}

// ID returns the node's own identifier, unique within the parent's
// namespace.
func (n *Node) ID() string { return n.id }

// Name returns the display name.
func (n *Node) Name() string { return n.name }

// Parent returns the parent node, nil for top-level nodes.
func (n *Node) Parent() *Node { return n.parent }

// Owner returns the property set the node belongs to.
func (n *Node) Owner() *Set { return n.set }

// SequenceNo returns the node's 1-based creation rank within the
// owning set.
func (n *Node) SequenceNo() int { return n.sequenceNo }

// LevelSeqNo returns the node's 1-based position among its siblings.
func (n *Node) LevelSeqNo() int { return n.levelSeqNo }

// Children returns the direct children in insertion order.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// Leaf reports whether the node has no children.
func (n *Node) Leaf() bool { return len(n.children) == 0 }

// Container reports whether the node has at least one child.
func (n *Node) Container() bool { return len(n.children) > 0 }

// Level returns the number of parent hops to the top of the tree;
// top-level nodes are level 0. The result is computed once and cached.
func (n *Node) Level() int {
	if n.level >= 0 {
		return n.level
	}
	level := 0
	for t := n.parent; t != nil; t = t.parent {
		level++
	}
	n.level = level
	return level
}

// Root returns the top-level ancestor, or the node itself when it has
// no parent.
func (n *Node) Root() *Node {
	t := n
	for t.parent != nil {
		t = t.parent
	}
	return t
}

// IsDescendantOf reports whether ancestor sits strictly above the node
// on its path to the root. A node is never its own ancestor.
func (n *Node) IsDescendantOf(ancestor *Node) bool {
	for t := n.parent; t != nil; t = t.parent {
		if t == ancestor {
			return true
		}
	}
	return false
}

// All returns the node followed by all descendants, depth first with
// children in insertion order.
func (n *Node) All() []*Node {
	res := []*Node{n}
	for _, c := range n.children {
		res = append(res, c.All()...)
	}
	return res
}

// Leaves returns the node's leaf descendants in depth-first order. A
// leaf node yields itself.
func (n *Node) Leaves() []*Node {
	if n.Leaf() {
		return []*Node{n}
	}
	var leaves []*Node
	for _, c := range n.children {
		leaves = append(leaves, c.Leaves()...)
	}
	return leaves
}

// FullID returns the node id prefixed with every ancestor id, root
// first, joined with dots. Sets with a flat namespace use the bare id.
func (n *Node) FullID() string {
	if n.set.flatNamespace {
		return n.id
	}
	res := n.id
	for t := n.parent; t != nil; t = t.parent {
		res = t.id + "." + res
	}
	return res
}

// WBSIndices returns the levelSeqNo of every node on the path from the
// root down to this node. The first child of a first child of a
// top-level node yields [1 1 1].
func (n *Node) WBSIndices() []int {
	var idcs []int
	for t := n; t != nil; t = t.parent {
		idcs = append([]int{t.levelSeqNo}, idcs...)
	}
	return idcs
}

// WBS renders the WBS indices as a dotted path such as "1.2.1".
func (n *Node) WBS() string {
	idcs := n.WBSIndices()
	parts := make([]string, len(idcs))
	for i, idx := range idcs {
		parts[i] = strconv.Itoa(idx)
	}
	return strings.Join(parts, ".")
}
