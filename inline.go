package ssgen

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	imagePattern = regexp.MustCompile(`!\[([^\[\]]*)\]\(([^()]*)\)`)
	linkPattern  = regexp.MustCompile(`\[([^\[\]]*)\]\(([^()]*)\)`)
)

var ErrUnclosedDelimiter = errors.New("unclosed inline delimiter")

// Reference is an image or a link found in inline text.
type Reference struct {
	Text string
	URL  string
}

// SplitDelimiter splits plain nodes on delim, turning every second part into a
// node of type typ. Nodes of any other type are kept as they are.
func SplitDelimiter(nodes []TextNode, delim string, typ TextType) ([]TextNode, error) {
	var out []TextNode
	for _, n := range nodes {
		if n.Type != Plain {
			out = append(out, n)
			continue
		}

		parts := strings.Split(n.Text, delim)
		if len(parts)%2 == 0 {
			return nil, fmt.Errorf("%w: %q in %q", ErrUnclosedDelimiter, delim, n.Text)
		}

		for i, part := range parts {
			if part == "" {
				continue
			}

			if i%2 == 0 {
				out = append(out, NewTextNode(part, Plain))
			} else {
				out = append(out, NewTextNode(part, typ))
			}
		}
	}

	return out, nil
}

// ExtractImages returns ![alt](url) references in order of appearance.
func ExtractImages(text string) (refs []Reference) {
	for _, match := range imagePattern.FindAllStringSubmatch(text, -1) {
		refs = append(refs, Reference{Text: match[1], URL: match[2]})
	}

	return
}

// ExtractLinks returns [text](url) references which are not images.
func ExtractLinks(text string) (refs []Reference) {
	for _, loc := range linkPattern.FindAllStringSubmatchIndex(text, -1) {
		if isImage(text, loc[0]) {
			continue
		}

		refs = append(refs, Reference{Text: text[loc[2]:loc[3]], URL: text[loc[4]:loc[5]]})
	}

	return
}

func SplitImages(nodes []TextNode) []TextNode {
	return splitPattern(nodes, imagePattern, Image)
}

func SplitLinks(nodes []TextNode) []TextNode {
	return splitPattern(nodes, linkPattern, Link)
}

func isImage(text string, start int) bool {
	return start > 0 && text[start-1] == '!'
}

// splitPattern cuts every match of re out of plain nodes. The first submatch
// is the text, the second one is the url.
func splitPattern(nodes []TextNode, re *regexp.Regexp, typ TextType) []TextNode {
	var out []TextNode
	for _, n := range nodes {
		if n.Type != Plain {
			out = append(out, n)
			continue
		}

		text, last := n.Text, 0
		for _, loc := range re.FindAllStringSubmatchIndex(text, -1) {
			if typ == Link && isImage(text, loc[0]) {
				continue
			}

			if loc[0] > last {
				out = append(out, NewTextNode(text[last:loc[0]], Plain))
			}

			out = append(out, NewURLTextNode(text[loc[2]:loc[3]], typ, text[loc[4]:loc[5]]))
			last = loc[1]
		}

		if last < len(text) {
			out = append(out, NewTextNode(text[last:], Plain))
		}
	}

	return out
}

// SplitUnderscore splits plain nodes on underscores which are not inside a
// word, so snake_case stays text. An underscore without a partner is kept as
// text as well.
func SplitUnderscore(nodes []TextNode, typ TextType) []TextNode {
	var out []TextNode
	for _, n := range nodes {
		if n.Type != Plain {
			out = append(out, n)
			continue
		}

		text := n.Text
		var marks []int
		for i := 0; i < len(text); i++ {
			if text[i] == '_' && !intraword(text, i) {
				marks = append(marks, i)
			}
		}

		if len(marks)%2 == 1 {
			marks = marks[:len(marks)-1]
		}

		last := 0
		for k := 0; k < len(marks); k += 2 {
			open, end := marks[k], marks[k+1]
			if open > last {
				out = append(out, NewTextNode(text[last:open], Plain))
			}

			if end > open+1 {
				out = append(out, NewTextNode(text[open+1:end], typ))
			}

			last = end + 1
		}

		if last < len(text) {
			out = append(out, NewTextNode(text[last:], Plain))
		}
	}

	return out
}

func intraword(text string, i int) bool {
	before, _ := utf8.DecodeLastRuneInString(text[:i])
	after, _ := utf8.DecodeRuneInString(text[i+1:])

	return isWordRune(before) && isWordRune(after)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// TextToNodes splits a line of inline markdown into classified text nodes.
// Code spans are split first, so their content is never parsed further. Images
// and links come next: their urls and labels are kept verbatim.
func TextToNodes(text string) ([]TextNode, error) {
	nodes, err := SplitDelimiter([]TextNode{NewTextNode(text, Plain)}, "`", Code)
	if err != nil {
		return nil, err
	}

	nodes = SplitImages(nodes)
	nodes = SplitLinks(nodes)

	if nodes, err = SplitDelimiter(nodes, "**", Bold); err != nil {
		return nil, err
	}

	return SplitUnderscore(nodes, Italic), nil
}
