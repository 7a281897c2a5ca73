// Package markdown wraps rendered tree lines in a fenced code block and
// writes the result to standard output or a file.
package markdown

import (
	"fmt"
	"io"
	"os"
	"strings"

	"treemark/pkg/errors"
)

// fenceLang is the info string of the fenced block. The tree is plain text,
// not a language markdown can highlight.
const fenceLang = "text"

// Fence wraps the rendered lines in a markdown fenced code block.
func Fence(lines []string) string {
	return "```" + fenceLang + "\n" + strings.Join(lines, "\n") + "\n```"
}

// Write writes the fenced block for lines to w, followed by a newline.
// Writes to standard output are assumed never to fail; any error from w is
// still reported as a WRITE_ERROR for file-backed writers.
func Write(w io.Writer, lines []string) error {
	if _, err := fmt.Fprintln(w, Fence(lines)); err != nil {
		return errors.Wrap(errors.ErrCodeWrite, err, "cannot write output")
	}
	return nil
}

// WriteFile writes the fenced block for lines to path, overwriting any
// existing file. Unwritable destinations (permissions, missing parent
// directory) fail with WRITE_ERROR.
func WriteFile(path string, lines []string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeWrite, err, "cannot write %s", path)
	}
	if err := Write(f, lines); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeWrite, err, "cannot write %s", path)
	}
	return nil
}
