package ssgen

// TextType classifies an inline span of text.
type TextType int

const (
	Plain TextType = iota
	Bold
	Italic
	Code
	Link
	Image
)

var textTypeNames = [...]string{
	Plain:  "plain",
	Bold:   "bold",
	Italic: "italic",
	Code:   "code",
	Link:   "link",
	Image:  "image",
}

// TextTypes lists every valid text type.
func TextTypes() []TextType {
	return []TextType{Plain, Bold, Italic, Code, Link, Image}
}

func (t TextType) Valid() bool {
	return t >= Plain && t <= Image
}

func (t TextType) String() string {
	if !t.Valid() {
		return "unknown"
	}

	return textTypeNames[t]
}
