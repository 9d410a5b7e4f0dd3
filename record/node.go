package record

import "github.com/lineage-format/go-gedcom/line"

// Node is one line in the strict-tree view of a record. A line's
// parent is the nearest preceding line with a smaller level.
type Node struct {
	Line     line.Line
	Parent   *Node
	Children []*Node
}

// Tree materializes the record as an explicit tree rooted at the
// level-0 line. The tree is rebuilt on each call and is independent of
// the record; it is a read-only view, mutation still goes through the
// flat line list.
func (r *Record) Tree() *Node {
	if len(r.Lines) == 0 {
		return nil
	}
	root := &Node{Line: r.Lines[0]}
	stack := []*Node{root}
	for _, ln := range r.Lines[1:] {
		for len(stack) > 1 && stack[len(stack)-1].Line.Level >= ln.Level {
			stack = stack[:len(stack)-1]
		}
		parent := stack[len(stack)-1]
		n := &Node{Line: ln, Parent: parent}
		parent.Children = append(parent.Children, n)
		stack = append(stack, n)
	}
	return root
}

// Child returns the first child with the given tag, or nil.
func (n *Node) Child(tag string) *Node {
	for _, c := range n.Children {
		if c.Line.Tag == tag {
			return c
		}
	}
	return nil
}

// ChildValue returns the value of the first child with the given tag.
func (n *Node) ChildValue(tag string) (string, bool) {
	c := n.Child(tag)
	if c == nil {
		return "", false
	}
	return c.Line.Value, true
}

// Walk visits the node and its descendants depth-first.
func (n *Node) Walk(visit func(*Node)) {
	visit(n)
	for _, c := range n.Children {
		c.Walk(visit)
	}
}
