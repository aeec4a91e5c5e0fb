package ssgen

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedTextType = errors.New("unsupported text type")
	ErrMissingURL          = errors.New("text node has no url")
)

// TextToLeaf converts an inline text node to the leaf node rendering it.
func TextToLeaf(n TextNode) (*LeafNode, error) {
	switch n.Type {
	case Plain:
		return NewLeafNode("", n.Text), nil
	case Bold:
		return NewLeafNode("b", n.Text), nil
	case Italic:
		return NewLeafNode("i", n.Text), nil
	case Code:
		return NewLeafNode("code", n.Text), nil
	case Link:
		if n.URL == nil {
			return nil, fmt.Errorf("%w: link %q", ErrMissingURL, n.Text)
		}

		return NewLeafNode("a", n.Text, Attribute{Key: "href", Value: *n.URL}), nil
	case Image:
		if n.URL == nil {
			return nil, fmt.Errorf("%w: image %q", ErrMissingURL, n.Text)
		}

		return NewLeafNode("img", "", Attribute{Key: "src", Value: *n.URL}, Attribute{Key: "alt", Value: n.Text}), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedTextType, int(n.Type))
	}
}

// TextsToLeaves converts a sequence of text nodes, keeping their order.
func TextsToLeaves(nodes []TextNode) ([]Node, error) {
	leaves := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		leaf, err := TextToLeaf(n)
		if err != nil {
			return nil, err
		}

		leaves = append(leaves, leaf)
	}

	return leaves, nil
}
