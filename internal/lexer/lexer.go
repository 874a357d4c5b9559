// Package lexer splits TinyYAML input into lines and decomposes a line into
// its name, value and comment parts.
package lexer

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

const (
	commentMarker   = "#"
	separatorMarker = ":"
)

// Lines reads r to the end and returns its lines without line terminators.
// Both "\n" and "\r\n" terminate a line. A final line without a terminator
// is kept; a terminator at the very end does not add an empty line.
func Lines(r io.Reader) ([]string, error) {
	br := bufio.NewReader(r)
	var lines []string
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			lines = append(lines, line)
		}
		if errors.Is(err, io.EOF) {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// SplitString is Lines for in-memory text. Unlike Lines it keeps an empty
// last line after a trailing terminator, which callers drop as blank.
func SplitString(s string) []string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// IsBlank reports whether the line has no content at all.
func IsBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// Split decomposes a line into name, value and comment.
//
// The trimmed line is cut once at the first '#': the right part, trimmed, is
// the comment. The remaining content is cut once at the first ':' into a
// trimmed name and value. Without a ':' the whole content is the name.
func Split(line string) (name, value, comment string) {
	content := strings.TrimSpace(line)
	if before, after, found := strings.Cut(content, commentMarker); found {
		content = before
		comment = strings.TrimSpace(after)
	}
	if before, after, found := strings.Cut(content, separatorMarker); found {
		return strings.TrimSpace(before), strings.TrimSpace(after), comment
	}
	return strings.TrimSpace(content), "", comment
}
