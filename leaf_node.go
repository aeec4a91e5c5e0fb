package ssgen

import "slices"

// LeafNode is an element without children: a tag wrapping a raw value, or the
// raw value alone when the tag is empty.
type LeafNode struct {
	HTMLNode
}

// NewLeafNode creates a leaf node. The value is always set, so a missing value
// can only come from building a LeafNode literal by hand. Props are copied.
func NewLeafNode(tag, value string, props ...Attribute) *LeafNode {
	return &LeafNode{HTMLNode: HTMLNode{Tag: tag, Value: &value, Props: slices.Clone(props)}}
}

// ToHTML renders the leaf. Neither the value nor the attributes are escaped.
func (n *LeafNode) ToHTML() (string, error) {
	if n.Value == nil {
		return "", ErrMissingValue
	}

	if n.Tag == "" {
		return *n.Value, nil
	}

	return "<" + n.Tag + n.PropsToHTML() + ">" + *n.Value + "</" + n.Tag + ">", nil
}
