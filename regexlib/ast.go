package regexlib

// NodeID indexes a node within an AST's arena.
type NodeID int

// CharClass selects one of the built-in character classes.
type CharClass int

const (
	AllLetter CharClass = iota // \w, matches a-z
	AllDigit                   // \d, matches 0-9
)

type nodeKind int

const (
	nodeLeaf nodeKind = iota
	nodeLeafClass
	nodeAnd
	nodeOr
	nodeStar
	nodePlus
)

// node is one element of the tree. Children are arena ids, never
// pointers; only nodeAnd and nodeOr use the right child.
type node struct {
	kind  nodeKind
	ch    rune
	class CharClass
	left  NodeID
	right NodeID
}

// AST is a flat append-only arena of regex syntax nodes. Children are
// always added before their parents, so the root is the last node.
type AST struct {
	nodes []node
}

// NewAST returns an empty tree.
func NewAST() *AST {
	return &AST{}
}

// Root returns the id of the most recently added node.
func (t *AST) Root() NodeID {
	return NodeID(len(t.nodes) - 1)
}

// Len returns the number of nodes in the tree.
func (t *AST) Len() int {
	return len(t.nodes)
}

// add appends a node and returns its id.
func (t *AST) add(n node) NodeID {
	t.nodes = append(t.nodes, n)
	return NodeID(len(t.nodes) - 1)
}

// get returns the node stored under an id.
func (t *AST) get(id NodeID) node {
	return t.nodes[id]
}
