package ssgen

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	headingPrefix = regexp.MustCompile(`^(#{1,6}) `)
	headingAttrs  = regexp.MustCompile(`\s*\{([^{}]*=[^{}]*)\}$`)
)

type BlockType int

const (
	Paragraph BlockType = iota
	Heading
	CodeBlock
	Quote
	UnorderedList
	OrderedList
)

func (t BlockType) String() string {
	switch t {
	case Paragraph:
		return "paragraph"
	case Heading:
		return "heading"
	case CodeBlock:
		return "code"
	case Quote:
		return "quote"
	case UnorderedList:
		return "unordered list"
	case OrderedList:
		return "ordered list"
	default:
		return "unknown"
	}
}

// Blocks splits markdown into blocks separated by blank lines. Blank lines
// inside a fenced code block do not split it. Blocks are trimmed and empty
// blocks are dropped.
func Blocks(markdown string) (blocks []string) {
	var (
		current []string
		fenced  bool
	)

	flush := func() {
		if block := strings.TrimSpace(strings.Join(current, "\n")); block != "" {
			blocks = append(blocks, block)
		}

		current = current[:0]
	}

	markdown = strings.ReplaceAll(markdown, "\r\n", "\n")
	for _, line := range strings.Split(markdown, "\n") {
		trimmed := strings.TrimSpace(line)

		if !fenced && trimmed == "" {
			flush()
			continue
		}

		if strings.HasPrefix(trimmed, "```") && (fenced || !isInlineFence(trimmed)) {
			fenced = !fenced
		}

		current = append(current, line)
	}

	flush()

	return
}

// isInlineFence reports whether a line opens and closes a fence at once.
func isInlineFence(line string) bool {
	return len(line) > 6 && strings.HasSuffix(line, "```")
}

// BlockTypeOf classifies a single block. Anything which is not recognized is a
// paragraph.
func BlockTypeOf(block string) BlockType {
	lines := strings.Split(block, "\n")

	switch {
	case headingPrefix.MatchString(block):
		return Heading
	case len(lines) > 1 && strings.HasPrefix(block, "```") && strings.HasSuffix(block, "```"):
		return CodeBlock
	case everyLine(lines, func(_ int, l string) bool { return strings.HasPrefix(l, ">") }):
		return Quote
	case everyLine(lines, func(_ int, l string) bool { return strings.HasPrefix(l, "- ") || strings.HasPrefix(l, "* ") }):
		return UnorderedList
	case everyLine(lines, func(i int, l string) bool { return strings.HasPrefix(l, strconv.Itoa(i+1)+". ") }):
		return OrderedList
	default:
		return Paragraph
	}
}

func everyLine(lines []string, pred func(int, string) bool) bool {
	for i, l := range lines {
		if !pred(i, l) {
			return false
		}
	}

	return true
}

// MarkdownToHTML parses markdown into a div holding one node per block.
func MarkdownToHTML(markdown string) (*ParentNode, error) {
	root := NewParentNode("div", nil)
	for index, block := range Blocks(markdown) {
		node, err := blockToNode(block)
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", index, err)
		}

		root.Append(node)
	}

	return root, nil
}

func blockToNode(block string) (*ParentNode, error) {
	switch BlockTypeOf(block) {
	case Heading:
		return headingNode(block)
	case CodeBlock:
		code := strings.TrimPrefix(strings.TrimSuffix(block, "```"), "```")
		// drop the info string line
		if i := strings.IndexByte(code, '\n'); i >= 0 {
			code = code[i+1:]
		}

		return NewParentNode("pre", []Node{NewLeafNode("code", code)}), nil
	case Quote:
		var lines []string
		for _, l := range strings.Split(block, "\n") {
			lines = append(lines, strings.TrimSpace(strings.TrimPrefix(l, ">")))
		}

		return inlineParent("blockquote", strings.Join(lines, " "))
	case UnorderedList:
		return listNode("ul", block, func(_ int, l string) string { return l[2:] })
	case OrderedList:
		return listNode("ol", block, func(i int, l string) string { return l[len(strconv.Itoa(i+1))+2:] })
	default:
		return inlineParent("p", strings.Join(strings.Split(block, "\n"), " "))
	}
}

// headingNode renders a heading. A trailing {key=value, ...} list becomes the
// heading's attributes, braces without a key=value pair stay text.
func headingNode(block string) (*ParentNode, error) {
	level := len(headingPrefix.FindStringSubmatch(block)[1])
	text := block[level+1:]

	var props Props
	if loc := headingAttrs.FindStringSubmatchIndex(text); loc != nil {
		var err error
		if props, err = ParseProps(text[loc[2]:loc[3]]); err != nil {
			return nil, fmt.Errorf("heading %q: %w", text, err)
		}

		text = text[:loc[0]]
	}

	node, err := inlineParent("h"+strconv.Itoa(level), text)
	if err != nil {
		return nil, err
	}

	node.Props = props
	return node, nil
}

func listNode(tag, block string, item func(int, string) string) (*ParentNode, error) {
	list := NewParentNode(tag, nil)
	for i, l := range strings.Split(block, "\n") {
		li, err := inlineParent("li", item(i, l))
		if err != nil {
			return nil, err
		}

		list.Append(li)
	}

	return list, nil
}

// inlineParent wraps the inline nodes of text in a tag. Text without any
// inline content still gets a single empty leaf, so the parent renders.
func inlineParent(tag, text string) (*ParentNode, error) {
	texts, err := TextToNodes(text)
	if err != nil {
		return nil, err
	}

	children, err := TextsToLeaves(texts)
	if err != nil {
		return nil, err
	}

	if len(children) == 0 {
		children = append(children, NewLeafNode("", ""))
	}

	return NewParentNode(tag, children), nil
}
