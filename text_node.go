package ssgen

import "fmt"

// TextNode is an inline span of classified text. URL is only meaningful for
// links and images; a nil URL and an empty URL are different values.
//
// TextNode holds a pointer, so compare nodes with Equal rather than ==.
type TextNode struct {
	Text string
	Type TextType
	URL  *string
}

func NewTextNode(text string, typ TextType) TextNode {
	return TextNode{Text: text, Type: typ}
}

func NewURLTextNode(text string, typ TextType, url string) TextNode {
	return TextNode{Text: text, Type: typ, URL: &url}
}

// Equal reports whether other is a TextNode (or a non-nil *TextNode) with the
// same text, type and url. Values of any other type are never equal.
func (n TextNode) Equal(other any) bool {
	var o TextNode
	switch v := other.(type) {
	case TextNode:
		o = v
	case *TextNode:
		if v == nil {
			return false
		}
		o = *v
	default:
		return false
	}

	if n.Text != o.Text || n.Type != o.Type {
		return false
	}

	if n.URL == nil || o.URL == nil {
		return n.URL == nil && o.URL == nil
	}

	return *n.URL == *o.URL
}

func (n TextNode) String() string {
	url := "<nil>"
	if n.URL != nil {
		url = *n.URL
	}

	return fmt.Sprintf("TextNode(%s, %s, %s)", n.Text, n.Type, url)
}
