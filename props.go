package ssgen

import (
	"errors"
	"regexp"
	"strings"
)

var attributeKey = regexp.MustCompile("^[a-zA-Z_:][-a-zA-Z0-9_:.]*$")

var ErrUnterminatedQuote = errors.New("unterminated quoted attribute value")

// Attribute is a single HTML attribute.
type Attribute struct {
	Key   string
	Value string
}

// Props is an ordered set of HTML attributes. Order of the slice is the order
// attributes are rendered in.
type Props []Attribute

// HTML renders props as ` key="value"` pairs. Values are written verbatim,
// callers that need escaping must escape before building the props.
func (p Props) HTML() string {
	var b strings.Builder
	for _, attr := range p {
		b.WriteString(" " + attr.Key + `="` + attr.Value + `"`)
	}

	return b.String()
}

func (p Props) Get(key string) (string, bool) {
	for _, attr := range p {
		if attr.Key == key {
			return attr.Value, true
		}
	}

	return "", false
}

// Set replaces the value of an existing key in place or appends a new one.
func (p Props) Set(key, value string) Props {
	for i := range p {
		if p[i].Key == key {
			p[i].Value = value
			return p
		}
	}

	return append(p, Attribute{Key: key, Value: value})
}

func (p Props) String() string {
	if p == nil {
		return "<nil>"
	}

	parts := make([]string, 0, len(p))
	for _, attr := range p {
		parts = append(parts, attr.Key+": "+attr.Value)
	}

	return "{" + strings.Join(parts, ", ") + "}"
}

// ParseProps parses attributes in this format: key=value, key="quoted, value".
// Keys are lower-cased, quoted values may use single or double quotes and
// backslash escapes. Parts which are not a valid attribute are ignored.
func ParseProps(raw string) (props Props, err error) {
	var (
		key, value strings.Builder
		quote      rune
		escaped    bool
		inValue    bool
		quoted     bool
	)

	flush := func() {
		k := strings.ToLower(strings.TrimSpace(key.String()))
		v := value.String()
		if !quoted {
			v = strings.TrimSpace(v)
		}

		if attributeKey.MatchString(k) {
			props = props.Set(k, v)
		}

		key.Reset()
		value.Reset()
		inValue, quoted = false, false
	}

	for _, char := range raw {
		switch {
		case quote != 0 && escaped:
			value.WriteRune(char)
			escaped = false
		case quote != 0 && char == '\\':
			escaped = true
		case quote != 0 && char == quote:
			quote = 0
		case quote != 0:
			value.WriteRune(char)
		case char == ',':
			flush()
		case !inValue && char == '=':
			inValue = true
		case !inValue:
			key.WriteRune(char)
		case (char == '"' || char == '\'') && strings.TrimSpace(value.String()) == "":
			value.Reset()
			quote, quoted = char, true
		case quoted && (char == ' ' || char == '\t'):
			// spaces between a closing quote and the next comma
		default:
			value.WriteRune(char)
		}
	}

	if quote != 0 {
		return nil, ErrUnterminatedQuote
	}

	if strings.TrimSpace(key.String()) != "" {
		flush()
	}

	return props, nil
}
