package ssgen

import (
	"fmt"
	"io"
)

// Render writes the html of node to w.
func Render(w io.Writer, node Node) error {
	out, err := node.ToHTML()
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(w, out)
	return err
}
