package ssgen

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var ErrNilChild = errors.New("invalid html: nil child")

// ParentNode is an element owning an ordered list of children.
type ParentNode struct {
	HTMLNode
}

// NewParentNode creates a parent node owning a copy of children and props.
func NewParentNode(tag string, children []Node, props ...Attribute) *ParentNode {
	return &ParentNode{HTMLNode: HTMLNode{Tag: tag, Children: slices.Clone(children), Props: slices.Clone(props)}}
}

// Append attaches a child at the end of the node's child list.
func (n *ParentNode) Append(child Node) {
	n.Children = append(n.Children, child)
}

// ToHTML renders the node and its children in order. The first failing or
// nil child aborts rendering.
func (n *ParentNode) ToHTML() (string, error) {
	if n.Tag == "" {
		return "", ErrMissingTag
	}

	if len(n.Children) == 0 {
		return "", fmt.Errorf("%w: <%s>", ErrMissingChildren, n.Tag)
	}

	var b strings.Builder
	b.WriteString("<" + n.Tag + n.PropsToHTML() + ">")

	for index, child := range n.Children {
		if child == nil {
			return "", fmt.Errorf("<%s> child %d: %w", n.Tag, index, ErrNilChild)
		}

		out, err := child.ToHTML()
		if err != nil {
			return "", fmt.Errorf("<%s> child %d: %w", n.Tag, index, err)
		}

		b.WriteString(out)
	}

	b.WriteString("</" + n.Tag + ">")

	return b.String(), nil
}
