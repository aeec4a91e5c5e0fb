package ssgen

import "errors"

var ErrNoTitle = errors.New("document has no h1 heading")

// Text extracts the text content of a node, ignoring tags and nil children.
func Text(node Node) (out string) {
	switch n := node.(type) {
	case *LeafNode:
		if n.Value != nil {
			out = *n.Value
		}
	case *ParentNode:
		for _, child := range n.Children {
			out += Text(child)
		}
	}

	return
}

// Title returns the text of the first h1 heading of the tree.
func Title(root Node) (string, error) {
	if h := find(root, "h1"); h != nil {
		return Text(h), nil
	}

	return "", ErrNoTitle
}

func find(node Node, tag string) Node {
	switch n := node.(type) {
	case *LeafNode:
		if n.Tag == tag {
			return n
		}
	case *ParentNode:
		if n.Tag == tag {
			return n
		}

		for _, child := range n.Children {
			if found := find(child, tag); found != nil {
				return found
			}
		}
	}

	return nil
}
