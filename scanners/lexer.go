// Package scanners is the lexical front end: a raw lexer driving the
// indentation and bracket state machine, and a one-token-lookahead
// scanner on top of it for recursive-descent parsers.
package scanners

import (
	"io"
	"strings"

	"github.com/reusee/dsl/diags"
	"github.com/reusee/dsl/sources"
	"github.com/reusee/dsl/tokens"
)

// RawUnit is what the lexer emits: a category, the matched text, the
// width change for indents, and the start position. Ranges are computed
// by the Scanner layer.
type RawUnit struct {
	Kind  tokens.Kind
	Text  string
	Delta int
	Pos   sources.Location
}

type Lexer struct {
	name   string
	src    []rune
	cursor int
	line   int
	column int

	// indentation stack: strictly ascending, level 0 never popped
	indents []int
	// bracket depth never goes below minBracketDepth, so unbalanced
	// closing brackets stay a parse-time problem
	bracketDepth    int
	minBracketDepth int

	atLineStart bool
	pending     []RawUnit
	done        bool
}

// NewLexer reads a whole source and tokenizes it in file mode, with full
// indentation tracking.
func NewLexer(name string, r io.Reader) (*Lexer, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return newLexer(name, string(content), false), nil
}

// NewExpressionLexer tokenizes a single embedded expression: no
// indentation tracking, and one bracket is assumed open so newlines are
// insignificant throughout.
func NewExpressionLexer(name string, r io.Reader) (*Lexer, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return newLexer(name, string(content), true), nil
}

func newLexer(name string, content string, expressionOnly bool) *Lexer {
	l := &Lexer{
		name:    name,
		src:     []rune(content),
		line:    1,
		column:  1,
		indents: []int{0},
	}
	if expressionOnly {
		l.bracketDepth = 1
	} else {
		l.atLineStart = true
	}
	l.minBracketDepth = l.bracketDepth
	return l
}

// Next returns the next raw unit, or a diagnostic error
// (*diags.InvalidCharacter or *diags.InvalidIndentation). A failure is
// terminal: the lexer produces no further real tokens after one.
func (l *Lexer) Next() (RawUnit, error) {
	for {
		if len(l.pending) > 0 {
			unit := l.pending[0]
			l.pending = l.pending[1:]
			return unit, nil
		}

		if l.done {
			return RawUnit{Kind: tokens.EOF, Pos: l.pos()}, nil
		}

		if l.atLineStart {
			unit, ok, err := l.scanIndentation()
			if err != nil {
				l.done = true
				return RawUnit{}, err
			}
			if ok {
				return unit, nil
			}
			continue
		}

		unit, ok, err := l.scanToken()
		if err != nil {
			l.done = true
			return RawUnit{}, err
		}
		if ok {
			return unit, nil
		}
	}
}

func (l *Lexer) pos() sources.Location {
	return sources.Location{
		Filename: l.name,
		Line:     l.line,
		Column:   l.column,
	}
}

func (l *Lexer) atEnd() bool {
	return l.cursor >= len(l.src)
}

func (l *Lexer) peek() rune {
	return l.peekAt(0)
}

func (l *Lexer) peekAt(offset int) rune {
	if l.cursor+offset >= len(l.src) {
		return 0
	}
	return l.src[l.cursor+offset]
}

func (l *Lexer) advance() rune {
	r := l.src[l.cursor]
	l.cursor++
	if r == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return r
}

// scanIndentation measures the leading spaces of a line and compares
// them to the indentation stack. Blank and comment-only lines are a
// plain NEWLINE and leave the stack alone.
func (l *Lexer) scanIndentation() (RawUnit, bool, error) {
	width := 0
	for l.peek() == ' ' {
		l.advance()
		width++
	}

	if l.atEnd() {
		// trailing spaces open nothing; close the file instead
		l.atLineStart = false
		l.finishEOF(false)
		return RawUnit{}, false, nil
	}

	if l.peek() == '\n' {
		pos := l.pos()
		l.advance()
		return RawUnit{Kind: tokens.Newline, Text: "\n", Pos: pos}, true, nil
	}
	if l.peek() == '#' {
		pos := l.pos()
		l.skipComment()
		return RawUnit{Kind: tokens.Newline, Text: "\n", Pos: pos}, true, nil
	}

	l.atLineStart = false
	current := l.indents[len(l.indents)-1]
	switch {

	case width > current:
		l.indents = append(l.indents, width)
		return RawUnit{
			Kind:  tokens.Indent,
			Delta: width - current,
			Pos:   l.pos(),
		}, true, nil

	case width < current:
		if !l.outdentTo(width) {
			return RawUnit{}, false, &diags.InvalidIndentation{
				Location: l.pos(),
			}
		}
		// outdents are queued in pending
		return RawUnit{}, false, nil
	}

	// same level, nothing to emit
	return RawUnit{}, false, nil
}

// outdentTo pops levels down to width, queueing one OUTDENT per pop.
// Reports false when width matches no open level.
func (l *Lexer) outdentTo(width int) bool {
	found := false
	for _, level := range l.indents {
		if level == width {
			found = true
			break
		}
	}
	if !found {
		return false
	}
	pos := l.pos()
	for l.indents[len(l.indents)-1] > width {
		l.indents = l.indents[:len(l.indents)-1]
		l.pending = append(l.pending, RawUnit{
			Kind: tokens.Outdent,
			Pos:  pos,
		})
	}
	return true
}

// finishEOF closes the stream: a forced NEWLINE when end of input was
// reached mid logical line, then the remaining outdents, then EOF. With
// an unbalanced open bracket all of that is skipped and the imbalance is
// left for the parser.
func (l *Lexer) finishEOF(midLine bool) {
	l.done = true
	pos := l.pos()
	if l.bracketDepth == 0 {
		if midLine {
			l.pending = append(l.pending, RawUnit{
				Kind: tokens.Newline,
				Text: "\n",
				Pos:  pos,
			})
		}
		for len(l.indents) > 1 {
			l.indents = l.indents[:len(l.indents)-1]
			l.pending = append(l.pending, RawUnit{
				Kind: tokens.Outdent,
				Pos:  pos,
			})
		}
	}
	l.pending = append(l.pending, RawUnit{Kind: tokens.EOF, Pos: pos})
}

func (l *Lexer) scanToken() (RawUnit, bool, error) {
	for {
		for l.peek() == ' ' {
			l.advance()
		}

		if l.atEnd() {
			l.finishEOF(true)
			return RawUnit{}, false, nil
		}

		pos := l.pos()
		r := l.peek()

		switch {

		case r == '\n':
			l.advance()
			if l.bracketDepth == 0 {
				l.atLineStart = true
				return RawUnit{Kind: tokens.Newline, Text: "\n", Pos: pos}, true, nil
			}
			// inside brackets a newline is just whitespace
			continue

		case r == '#':
			l.skipComment()
			if l.bracketDepth == 0 {
				l.atLineStart = true
				return RawUnit{Kind: tokens.Newline, Text: "\n", Pos: pos}, true, nil
			}
			continue

		case r == '"':
			return l.scanString(pos)

		case isDigit(r):
			return l.scanNumber(pos)

		case isLetter(r) || r == '_':
			return l.scanIdent(pos)

		case r == '(' || r == '{' || r == '[':
			l.advance()
			l.bracketDepth++
			return RawUnit{Kind: tokens.Punct, Text: string(r), Pos: pos}, true, nil

		case r == ')' || r == '}' || r == ']':
			l.advance()
			if l.bracketDepth > l.minBracketDepth {
				l.bracketDepth--
			}
			return RawUnit{Kind: tokens.Punct, Text: string(r), Pos: pos}, true, nil
		}

		return l.scanPunct(pos)
	}
}

func (l *Lexer) skipComment() {
	for !l.atEnd() {
		if l.advance() == '\n' {
			return
		}
	}
}

func (l *Lexer) scanString(pos sources.Location) (RawUnit, bool, error) {
	start := l.cursor
	l.advance()
	for {
		if l.atEnd() || l.peek() == '\n' {
			// unterminated literal matches no category
			return RawUnit{}, false, &diags.InvalidCharacter{Location: l.pos()}
		}
		r := l.advance()
		if r == '"' {
			break
		}
		if r == '\\' {
			if l.atEnd() || l.peek() == '\n' {
				return RawUnit{}, false, &diags.InvalidCharacter{Location: l.pos()}
			}
			// any single escaped character passes; whether the escape
			// means anything is checked at parse time
			l.advance()
		}
	}
	return RawUnit{
		Kind: tokens.StringLit,
		Text: string(l.src[start:l.cursor]),
		Pos:  pos,
	}, true, nil
}

func (l *Lexer) scanNumber(pos sources.Location) (RawUnit, bool, error) {
	start := l.cursor

	// hex swallows all trailing letters so "0xfg" stays one token and
	// fails with one sensible message later, instead of splitting into
	// "0xf", "g"
	if l.peek() == '0' && l.peekAt(1) == 'x' && isAlnum(l.peekAt(2)) {
		l.advance()
		l.advance()
		for isAlnum(l.peek()) {
			l.advance()
		}
		return RawUnit{
			Kind: tokens.Number,
			Text: string(l.src[start:l.cursor]),
			Pos:  pos,
		}, true, nil
	}

	// same idea for binary: "0b02" is one token
	if l.peek() == '0' && l.peekAt(1) == 'b' && isDigit(l.peekAt(2)) {
		l.advance()
		l.advance()
		for isDigit(l.peek()) {
			l.advance()
		}
		return RawUnit{
			Kind: tokens.Number,
			Text: string(l.src[start:l.cursor]),
			Pos:  pos,
		}, true, nil
	}

	for isDigit(l.peek()) {
		l.advance()
	}
	if l.peek() == '.' && isDigit(l.peekAt(1)) {
		l.advance()
		for isDigit(l.peek()) {
			l.advance()
		}
	}
	// the exponent sign is mandatory: "1E2" is NUMBER then IDENT
	if l.peek() == 'E' &&
		(l.peekAt(1) == '+' || l.peekAt(1) == '-') &&
		isDigit(l.peekAt(2)) {
		l.advance()
		l.advance()
		for isDigit(l.peek()) {
			l.advance()
		}
	}
	return RawUnit{
		Kind: tokens.Number,
		Text: string(l.src[start:l.cursor]),
		Pos:  pos,
	}, true, nil
}

func (l *Lexer) scanIdent(pos sources.Location) (RawUnit, bool, error) {
	start := l.cursor
	l.advance()
	for isLetter(l.peek()) || isDigit(l.peek()) || l.peek() == '_' {
		l.advance()
	}
	return RawUnit{
		Kind: tokens.Ident,
		Text: string(l.src[start:l.cursor]),
		Pos:  pos,
	}, true, nil
}

const singlePuncts = "|&^=<>*/%~+-:,."

func (l *Lexer) scanPunct(pos sources.Location) (RawUnit, bool, error) {
	if l.peek() == '+' && l.peekAt(1) == '/' && l.peekAt(2) == '-' {
		l.advance()
		l.advance()
		l.advance()
		return RawUnit{Kind: tokens.Punct, Text: "+/-", Pos: pos}, true, nil
	}

	switch two := string([]rune{l.peek(), l.peekAt(1)}); two {
	case "==", "!=", "<=", ">=", "<<", ">>":
		l.advance()
		l.advance()
		return RawUnit{Kind: tokens.Punct, Text: two, Pos: pos}, true, nil
	}

	if strings.ContainsRune(singlePuncts, l.peek()) {
		r := l.advance()
		return RawUnit{Kind: tokens.Punct, Text: string(r), Pos: pos}, true, nil
	}

	return RawUnit{}, false, &diags.InvalidCharacter{Location: pos}
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isLetter(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'
}

func isAlnum(r rune) bool {
	return isDigit(r) || isLetter(r)
}
