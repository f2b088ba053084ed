package tree

// Mutations never modify a tree in place. Each returns a structurally fresh
// tree sharing no Node values with the input, so snapshots handed out
// earlier stay valid.

// ToggleExpanded flips the expanded flag of the node with the given id.
func ToggleExpanded(nodes []*Node, nodeID string) []*Node {
	return rebuild(nodes, func(n *Node) {
		if n.ID == nodeID {
			n.Expanded = !n.Expanded
		}
	})
}

// SetSelected marks the node with the given id as selected and clears the
// flag everywhere else.
func SetSelected(nodes []*Node, selectedID string) []*Node {
	return rebuild(nodes, func(n *Node) {
		n.Selected = n.ID == selectedID
	})
}

// SetData attaches a payload to the node with the given id, used when a
// lazily expanded submodel body arrives.
func SetData(nodes []*Node, nodeID string, data any) []*Node {
	return rebuild(nodes, func(n *Node) {
		if n.ID == nodeID {
			n.Data = data
		}
	})
}

// ReplaceChildren swaps the children of the node with the given id, used
// when a lazy placeholder resolves to fetched content.
func ReplaceChildren(nodes []*Node, nodeID string, children []*Node) []*Node {
	return rebuild(nodes, func(n *Node) {
		if n.ID == nodeID {
			n.Children = children
		}
	})
}

// FindNode returns the first node with the given id in depth-first order,
// or nil.
func FindNode(nodes []*Node, nodeID string) *Node {
	for _, n := range nodes {
		if n.ID == nodeID {
			return n
		}
		if found := FindNode(n.Children, nodeID); found != nil {
			return found
		}
	}
	return nil
}

// rebuild copies the whole tree, applying fn to each copy. fn runs before
// the children are recursed so it may swap them out.
func rebuild(nodes []*Node, fn func(*Node)) []*Node {
	if nodes == nil {
		return nil
	}
	out := make([]*Node, len(nodes))
	for i, n := range nodes {
		copied := *n
		fn(&copied)
		copied.Children = rebuild(copied.Children, fn)
		out[i] = &copied
	}
	return out
}
