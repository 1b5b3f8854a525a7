package sources

import "fmt"

// Location is a position in a source text. Line and Column are 1-based.
// Filename may be empty for anonymous inputs such as stdin.
type Location struct {
	Filename string
	Line     int
	Column   int
}

func (l Location) String() string {
	return fmt.Sprintf("%s:%d,%d", l.Filename, l.Line, l.Column)
}
