package ssgen

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotImplemented  = errors.New("to html is not implemented")
	ErrMissingValue    = errors.New("invalid html: leaf node has no value")
	ErrMissingTag      = errors.New("invalid html: parent node has no tag")
	ErrMissingChildren = errors.New("invalid html: parent node has no children")
)

// Node is an element of the HTML document tree. The set of implementations is
// closed: HTMLNode, *LeafNode and *ParentNode.
type Node interface {
	ToHTML() (string, error)
	PropsToHTML() string
	String() string

	node()
}

// HTMLNode holds the fields shared by every node. An empty Tag means the node
// has no wrapping element, a nil Value means the node has no value.
type HTMLNode struct {
	Tag      string
	Value    *string
	Children []Node
	Props    Props
}

func (n HTMLNode) node() {}

// ToHTML must be provided by concrete nodes.
func (n HTMLNode) ToHTML() (string, error) {
	return "", ErrNotImplemented
}

func (n HTMLNode) PropsToHTML() string {
	return n.Props.HTML()
}

func (n HTMLNode) String() string {
	tag, value := "<nil>", "<nil>"
	if n.Tag != "" {
		tag = n.Tag
	}

	if n.Value != nil {
		value = *n.Value
	}

	children := make([]string, 0, len(n.Children))
	for _, child := range n.Children {
		if child == nil {
			children = append(children, "<nil>")
			continue
		}

		children = append(children, child.String())
	}

	return fmt.Sprintf("HTMLNode(%s, %s, children: [%s], %s)", tag, value, strings.Join(children, ", "), n.Props)
}
