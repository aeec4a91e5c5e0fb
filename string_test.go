package ssgen_test

import (
	"errors"
	"testing"

	"github.com/moonflower9/ssgen"
)

func TestText(t *testing.T) {
	node := ssgen.NewParentNode("p", []ssgen.Node{
		ssgen.NewLeafNode("", "one "),
		ssgen.NewParentNode("span", []ssgen.Node{ssgen.NewLeafNode("b", "two")}),
		ssgen.NewLeafNode("img", "", ssgen.Attribute{Key: "src", Value: "x.png"}),
		&ssgen.LeafNode{},
		ssgen.NewLeafNode("i", " three"),
	})

	if got := ssgen.Text(node); got != "one two three" {
		t.Errorf("Text does not match: want %q, got %q", "one two three", got)
	}
}

func TestTitle(t *testing.T) {
	root, err := ssgen.MarkdownToHTML("Intro\n\n## Not a title\n\n# The **real** title\n\n# Second title")
	if err != nil {
		t.Fatal(err)
	}

	title, err := ssgen.Title(root)
	if err != nil {
		t.Fatal(err)
	}

	if title != "The real title" {
		t.Errorf("Title does not match: want %q, got %q", "The real title", title)
	}

	root, err = ssgen.MarkdownToHTML("## Only h2")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := ssgen.Title(root); !errors.Is(err, ssgen.ErrNoTitle) {
		t.Errorf("Expected ErrNoTitle, got %v", err)
	}
}

func TestTitleLeafHeading(t *testing.T) {
	root := ssgen.NewParentNode("div", []ssgen.Node{
		ssgen.NewLeafNode("p", "intro"),
		ssgen.NewLeafNode("h1", "Leaf title"),
	})

	title, err := ssgen.Title(root)
	if err != nil {
		t.Fatal(err)
	}

	if title != "Leaf title" {
		t.Errorf("Title does not match: want %q, got %q", "Leaf title", title)
	}

	if title, err := ssgen.Title(ssgen.NewLeafNode("h1", "alone")); err != nil || title != "alone" {
		t.Errorf("Title of a leaf root: got %q, %v", title, err)
	}
}

func TestTextSkipsNilChildren(t *testing.T) {
	node := ssgen.NewParentNode("p", []ssgen.Node{ssgen.NewLeafNode("", "a"), nil, ssgen.NewLeafNode("b", "b")})

	if got := ssgen.Text(node); got != "ab" {
		t.Errorf("Text does not match: want %q, got %q", "ab", got)
	}
}
