package ast

// Children returns the direct children of n in source order.
func Children(n Node) []Node {
	switch v := n.(type) {
	case *File:
		return definitionNodes(v.Definitions)
	case *Init:
		return []Node{v.Target, v.Source}
	case *Assign:
		return []Node{v.Target, v.Source}
	case *If:
		if v.Else == nil {
			return []Node{v.Condition, v.Then}
		}
		return []Node{v.Condition, v.Then, v.Else}
	case *Func:
		return []Node{v.Arg, v.Body}
	case *Block:
		return definitionNodes(v.Body)
	case *Tuple:
		return definitionNodes(v.Elements)
	case *Chain:
		return []Node{v.Base, v.Link}
	}
	return nil
}

// Inspect traverses the tree rooted at n depth-first. fn is called for each
// node; when it returns false the node's children are skipped.
func Inspect(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, c := range Children(n) {
		Inspect(c, fn)
	}
}

// NodeAt returns the innermost node whose span covers offset, or nil.
func NodeAt(root Node, offset int) Node {
	var found Node
	Inspect(root, func(n Node) bool {
		if offset < n.NodePos().Offset || offset >= n.NodeEndPos().Offset {
			return false
		}
		found = n
		return true
	})
	return found
}

func definitionNodes(defs []Definition) []Node {
	nodes := make([]Node, len(defs))
	for i, d := range defs {
		nodes[i] = d
	}
	return nodes
}
