package scanners

import "github.com/reusee/dsl/sources"

// RangeBuilder remembers where the next token starts and later closes
// the span at the end of the most recently consumed token, so a parser
// can cover a whole construct without threading positions by hand.
type RangeBuilder struct {
	scanner *Scanner
	start   sources.Location
}

func (s *Scanner) BeginRange() *RangeBuilder {
	return &RangeBuilder{
		scanner: s,
		start:   s.Location(),
	}
}

func (b *RangeBuilder) End() *sources.Range {
	return &sources.Range{
		Start: b.start,
		End:   b.scanner.LastTokenRange().End,
	}
}
