package main

// Node is a labeled tree node. A leaf carries Value and has no Children;
// an internal node carries Children and an empty Value. The same type
// serves both the AST (parser output) and the ST (standardizer output) —
// the label vocabulary just narrows on the way through Standardize.
type Node struct {
	Label    string
	Value    string
	Children []*Node
}

// Leaf builds a childless node carrying value.
func Leaf(label, value string) *Node {
	return &Node{Label: label, Value: value}
}

// Internal builds a node over children, newest-last (source order).
func Internal(label string, children ...*Node) *Node {
	return &Node{Label: label, Children: children}
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool { return len(n.Children) == 0 }
