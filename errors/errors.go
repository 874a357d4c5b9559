// Package errors defines the error types reported while parsing TinyYAML.
package errors

import "fmt"

// StructuralError reports a line whose indentation is more than one level
// deeper than the line it would nest under. Parsing stops at the first one.
type StructuralError struct {
	// Line is the 1-based line number of the offending line, counting
	// blank lines, the same as ast.Node.Line.
	Line int
	Text string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("tinyyaml: invalid indentation on line %d: %q", e.Line, e.Text)
}
