package scanners

import (
	"io"
	"unicode/utf8"

	"github.com/reusee/dsl/diags"
	"github.com/reusee/dsl/sources"
	"github.com/reusee/dsl/tokens"
)

// Scanner presents the lexer as a one-token-lookahead stream of Token
// values. A lexical failure becomes a single ERROR token; after that the
// stream is pinned at EOF, so a parser always sees a well-formed end of
// input no matter where the failure hit.
//
// Not safe for concurrent use: one scanner, one reader.
type Scanner struct {
	lexer    *Lexer
	peeked   *tokens.Token
	last     *tokens.Token
	forceEOF bool
}

func NewScanner(name string, r io.Reader) (*Scanner, error) {
	lexer, err := NewLexer(name, r)
	if err != nil {
		return nil, err
	}
	return newScanner(lexer), nil
}

func NewExpressionScanner(name string, r io.Reader) (*Scanner, error) {
	lexer, err := NewExpressionLexer(name, r)
	if err != nil {
		return nil, err
	}
	return newScanner(lexer), nil
}

func newScanner(lexer *Lexer) *Scanner {
	begin := sources.Location{
		Filename: lexer.name,
		Line:     1,
		Column:   1,
	}
	return &Scanner{
		lexer: lexer,
		last: &tokens.Token{
			Kind:  tokens.Begin,
			Range: &sources.Range{Start: begin, End: begin},
		},
	}
}

// Peek returns the next token without consuming it. Repeated calls
// return the same token until Read.
func (s *Scanner) Peek() *tokens.Token {
	if s.peeked != nil {
		return s.peeked
	}

	if s.forceEOF {
		s.peeked = &tokens.Token{
			Kind:  tokens.EOF,
			Range: s.last.Range,
		}
		return s.peeked
	}

	unit, err := s.lexer.Next()
	if err != nil {
		s.forceEOF = true
		loc := diagLocation(err)
		s.peeked = &tokens.Token{
			Kind:  tokens.Error,
			Diag:  err,
			Range: &sources.Range{Start: loc, End: loc},
		}
		return s.peeked
	}

	// tokens never span lines, so the end is start plus text width;
	// structural tokens have no text span at all
	length := 0
	switch unit.Kind {
	case tokens.Number, tokens.StringLit, tokens.Ident, tokens.Punct:
		length = utf8.RuneCountInString(unit.Text)
	}
	end := unit.Pos
	end.Column += length

	s.peeked = &tokens.Token{
		Kind:  unit.Kind,
		Text:  unit.Text,
		Delta: unit.Delta,
		Range: &sources.Range{Start: unit.Pos, End: end},
	}
	return s.peeked
}

// Read consumes and returns what Peek would return.
func (s *Scanner) Read() *tokens.Token {
	token := s.Peek()
	s.peeked = nil
	s.last = token
	return token
}

func diagLocation(err error) sources.Location {
	switch d := err.(type) {
	case *diags.InvalidCharacter:
		return d.Location
	case *diags.InvalidIndentation:
		return d.Location
	}
	return sources.Location{}
}

func (s *Scanner) NextIsPunct(symbol string) bool {
	token := s.Peek()
	return token.Kind == tokens.Punct && token.Text == symbol
}

// NextIsKeyword reports whether the next token is an identifier spelling
// name. Keywords are not a lexical category; the parser recognizes them
// contextually.
func (s *Scanner) NextIsKeyword(name string) bool {
	token := s.Peek()
	return token.Kind == tokens.Ident && token.Text == name
}

func (s *Scanner) NextIsNewline() bool {
	return s.Peek().Kind == tokens.Newline
}

func (s *Scanner) NextIsIndent() bool {
	return s.Peek().Kind == tokens.Indent
}

func (s *Scanner) NextIsOutdent() bool {
	return s.Peek().Kind == tokens.Outdent
}

func (s *Scanner) NextIsEOF() bool {
	return s.Peek().Kind == tokens.EOF
}

func (s *Scanner) NextIsError() bool {
	return s.Peek().Kind == tokens.Error
}

// NextDiag returns the diagnostic carried by a pending ERROR token, nil
// otherwise.
func (s *Scanner) NextDiag() error {
	if token := s.Peek(); token.Kind == tokens.Error {
		return token.Diag
	}
	return nil
}

func (s *Scanner) require(ok bool, wanted *tokens.Token) (*tokens.Token, error) {
	if ok {
		return s.Read(), nil
	}
	// a pending lexical failure outranks a generic mismatch
	if err := s.NextDiag(); err != nil {
		return nil, err
	}
	return nil, &diags.UnexpectedToken{
		Wanted: wanted,
		Got:    s.Peek(),
	}
}

func (s *Scanner) RequirePunct(symbol string) (*tokens.Token, error) {
	return s.require(
		s.NextIsPunct(symbol),
		&tokens.Token{Kind: tokens.Punct, Text: symbol},
	)
}

func (s *Scanner) RequireKeyword(name string) (*tokens.Token, error) {
	return s.require(
		s.NextIsKeyword(name),
		&tokens.Token{Kind: tokens.Ident, Text: name},
	)
}

func (s *Scanner) RequireIndent() (*tokens.Token, error) {
	return s.require(
		s.NextIsIndent(),
		&tokens.Token{Kind: tokens.Indent},
	)
}

func (s *Scanner) RequireOutdent() (*tokens.Token, error) {
	return s.require(
		s.NextIsOutdent(),
		&tokens.Token{Kind: tokens.Outdent},
	)
}

func (s *Scanner) RequireNewline() (*tokens.Token, error) {
	return s.require(
		s.NextIsNewline(),
		&tokens.Token{Kind: tokens.Newline, Text: "\n"},
	)
}

func (s *Scanner) RequireEOF() (*tokens.Token, error) {
	return s.require(
		s.NextIsEOF(),
		&tokens.Token{Kind: tokens.EOF},
	)
}

// Location is where the next token starts.
func (s *Scanner) Location() sources.Location {
	return s.Peek().Range.Start
}

// RawPosition is the lexer's reading position, which can be ahead of
// the peeked token.
func (s *Scanner) RawPosition() sources.Location {
	return s.lexer.pos()
}

func (s *Scanner) NextTokenRange() *sources.Range {
	return s.Peek().Range
}

func (s *Scanner) LastTokenRange() *sources.Range {
	return s.last.Range
}
