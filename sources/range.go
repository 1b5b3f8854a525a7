package sources

import "fmt"

// Range is the span of text covered by a token or a larger syntactic
// construct. Structural tokens carry zero-width ranges where Start == End.
type Range struct {
	Start Location
	End   Location
}

func (r Range) String() string {
	return fmt.Sprintf("%s to %s", r.Start, r.End)
}
