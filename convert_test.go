package ssgen_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/moonflower9/ssgen"
)

func TestTextToLeaf(t *testing.T) {
	tt := []struct {
		name   string
		input  ssgen.TextNode
		output *ssgen.LeafNode
		render string
	}{
		{
			name:   "plain",
			input:  ssgen.NewTextNode("This is a text node", ssgen.Plain),
			output: ssgen.NewLeafNode("", "This is a text node"),
			render: "This is a text node",
		},
		{
			name:   "bold",
			input:  ssgen.NewTextNode("bold", ssgen.Bold),
			output: ssgen.NewLeafNode("b", "bold"),
			render: "<b>bold</b>",
		},
		{
			name:   "italic",
			input:  ssgen.NewTextNode("italic", ssgen.Italic),
			output: ssgen.NewLeafNode("i", "italic"),
			render: "<i>italic</i>",
		},
		{
			name:   "code",
			input:  ssgen.NewTextNode("x := 1", ssgen.Code),
			output: ssgen.NewLeafNode("code", "x := 1"),
			render: "<code>x := 1</code>",
		},
		{
			name:   "link",
			input:  ssgen.NewURLTextNode("click", ssgen.Link, "https://x.com"),
			output: ssgen.NewLeafNode("a", "click", ssgen.Attribute{Key: "href", Value: "https://x.com"}),
			render: `<a href="https://x.com">click</a>`,
		},
		{
			name:   "image",
			input:  ssgen.NewURLTextNode("img", ssgen.Image, "u.png"),
			output: ssgen.NewLeafNode("img", "", ssgen.Attribute{Key: "src", Value: "u.png"}, ssgen.Attribute{Key: "alt", Value: "img"}),
			render: `<img src="u.png" alt="img"></img>`,
		},
		{
			name:   "url on plain text is ignored",
			input:  ssgen.NewURLTextNode("text", ssgen.Plain, "https://x.com"),
			output: ssgen.NewLeafNode("", "text"),
			render: "text",
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			leaf, err := ssgen.TextToLeaf(tc.input)
			if err != nil {
				t.Fatal(err)
			}

			if !cmp.Equal(leaf, tc.output) {
				t.Errorf("Leaf does not match:\n%s\n", cmp.Diff(tc.output, leaf))
			}

			got, err := leaf.ToHTML()
			if err != nil {
				t.Fatal(err)
			}

			if got != tc.render {
				t.Errorf("Render does not match: want %q, got %q", tc.render, got)
			}
		})
	}
}

func TestTextToLeafErrors(t *testing.T) {
	tt := []struct {
		name  string
		input ssgen.TextNode
		err   error
	}{
		{name: "unknown type", input: ssgen.NewTextNode("x", ssgen.TextType(42)), err: ssgen.ErrUnsupportedTextType},
		{name: "negative type", input: ssgen.NewTextNode("x", ssgen.TextType(-1)), err: ssgen.ErrUnsupportedTextType},
		{name: "link without url", input: ssgen.NewTextNode("x", ssgen.Link), err: ssgen.ErrMissingURL},
		{name: "image without url", input: ssgen.NewTextNode("x", ssgen.Image), err: ssgen.ErrMissingURL},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			leaf, err := ssgen.TextToLeaf(tc.input)
			if !errors.Is(err, tc.err) {
				t.Errorf("Error does not match: want %v, got %v", tc.err, err)
			}

			if leaf != nil {
				t.Errorf("Expected no leaf, got %v", leaf)
			}
		})
	}
}

func TestTextsToLeaves(t *testing.T) {
	leaves, err := ssgen.TextsToLeaves([]ssgen.TextNode{
		ssgen.NewTextNode("This is ", ssgen.Plain),
		ssgen.NewTextNode("text", ssgen.Bold),
		ssgen.NewTextNode(" with a ", ssgen.Plain),
		ssgen.NewURLTextNode("link", ssgen.Link, "https://boot.dev"),
	})
	if err != nil {
		t.Fatal(err)
	}

	var b strings.Builder
	for _, leaf := range leaves {
		if err := ssgen.Render(&b, leaf); err != nil {
			t.Fatal(err)
		}
	}

	got := b.String()

	want := `This is <b>text</b> with a <a href="https://boot.dev">link</a>`
	if got != want {
		t.Errorf("Render does not match: want %q, got %q", want, got)
	}

	if _, err := ssgen.TextsToLeaves([]ssgen.TextNode{ssgen.NewTextNode("x", ssgen.Link)}); !errors.Is(err, ssgen.ErrMissingURL) {
		t.Errorf("Expected ErrMissingURL, got %v", err)
	}
}
