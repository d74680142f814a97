package output

import (
	"fmt"
	"io"
)

// WriteMembers emits the single-directory listing: one raw
// <members>NAME</members> fragment per name, CRLF-terminated, with no
// enclosing root element or namespace. An empty list writes nothing.
func WriteMembers(w io.Writer, names []string) error {
	for _, name := range names {
		if _, err := fmt.Fprintf(w, "<members>%s</members>\r\n", name); err != nil {
			return err
		}
	}
	return nil
}
