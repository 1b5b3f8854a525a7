package scanners

import (
	"strings"
	"testing"

	"github.com/reusee/dsl/diags"
	"github.com/reusee/dsl/sources"
	"github.com/reusee/dsl/tokens"
)

func newTestScanner(t *testing.T, input string) *Scanner {
	t.Helper()
	scanner, err := NewScanner("test", strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	return scanner
}

func TestScannerPeekRead(t *testing.T) {
	scanner := newTestScanner(t, "a b\n")

	first := scanner.Peek()
	if first.Kind != tokens.Ident || first.Text != "a" {
		t.Fatalf("got %v", first)
	}
	// peek is stable until read
	if scanner.Peek() != first {
		t.Fatal("peek should return the same token")
	}
	if scanner.Read() != first {
		t.Fatal("read should return the peeked token")
	}

	second := scanner.Peek()
	if second == first {
		t.Fatal("read should advance")
	}
	if second.Text != "b" {
		t.Fatalf("got %v", second)
	}
}

func TestScannerBegin(t *testing.T) {
	scanner := newTestScanner(t, "foo\n")
	// before any read, the last token is the synthetic stream start
	r := scanner.LastTokenRange()
	if r.Start.Line != 1 || r.Start.Column != 1 {
		t.Fatalf("got %v", r)
	}
	if r.End != r.Start {
		t.Fatalf("got %v", r)
	}
	if r.Start.Filename != "test" {
		t.Fatalf("got %v", r)
	}
}

func TestScannerRanges(t *testing.T) {
	scanner := newTestScanner(t, "ab cd\n")

	token := scanner.Read()
	if token.Range.Start != (sources.Location{Filename: "test", Line: 1, Column: 1}) {
		t.Fatalf("got %v", token.Range)
	}
	if token.Range.End != (sources.Location{Filename: "test", Line: 1, Column: 3}) {
		t.Fatalf("got %v", token.Range)
	}
	if scanner.LastTokenRange() != token.Range {
		t.Fatal("last token range should track reads")
	}

	if scanner.Location() != (sources.Location{Filename: "test", Line: 1, Column: 4}) {
		t.Fatalf("got %v", scanner.Location())
	}

	token = scanner.Read()
	if token.Range.Start.Column != 4 || token.Range.End.Column != 6 {
		t.Fatalf("got %v", token.Range)
	}

	// structural tokens are zero width
	token = scanner.Read()
	if token.Kind != tokens.Newline {
		t.Fatalf("got %v", token)
	}
	if token.Range.Start != token.Range.End {
		t.Fatalf("got %v", token.Range)
	}
}

func TestScannerPredicates(t *testing.T) {
	scanner := newTestScanner(t, "if x:\n  y\n")

	if !scanner.NextIsKeyword("if") {
		t.Fatal()
	}
	if scanner.NextIsKeyword("for") {
		t.Fatal()
	}
	scanner.Read()

	if !scanner.NextIsKeyword("x") {
		t.Fatal()
	}
	scanner.Read()

	if !scanner.NextIsPunct(":") {
		t.Fatal()
	}
	if scanner.NextIsPunct(",") {
		t.Fatal()
	}
	scanner.Read()

	if !scanner.NextIsNewline() {
		t.Fatal()
	}
	scanner.Read()
	if !scanner.NextIsIndent() {
		t.Fatal()
	}
	scanner.Read()
	scanner.Read() // y
	scanner.Read() // newline
	if !scanner.NextIsOutdent() {
		t.Fatal()
	}
	scanner.Read()
	if !scanner.NextIsEOF() {
		t.Fatal()
	}
}

func TestScannerRequire(t *testing.T) {
	scanner := newTestScanner(t, "if x:\n  y\n")

	if _, err := scanner.RequireKeyword("if"); err != nil {
		t.Fatal(err)
	}
	if _, err := scanner.RequireKeyword("x"); err != nil {
		t.Fatal(err)
	}
	if _, err := scanner.RequirePunct(":"); err != nil {
		t.Fatal(err)
	}
	if _, err := scanner.RequireNewline(); err != nil {
		t.Fatal(err)
	}
	token, err := scanner.RequireIndent()
	if err != nil {
		t.Fatal(err)
	}
	if token.Delta != 2 {
		t.Fatalf("got %v", token)
	}
	scanner.Read() // y
	if _, err := scanner.RequireNewline(); err != nil {
		t.Fatal(err)
	}
	if _, err := scanner.RequireOutdent(); err != nil {
		t.Fatal(err)
	}
	if _, err := scanner.RequireEOF(); err != nil {
		t.Fatal(err)
	}
}

func TestScannerRequireMismatch(t *testing.T) {
	scanner := newTestScanner(t, "a\n")

	_, err := scanner.RequirePunct(":")
	if err == nil {
		t.Fatal("should fail")
	}
	d, ok := err.(*diags.UnexpectedToken)
	if !ok {
		t.Fatalf("got %T", err)
	}
	if d.Got.Kind != tokens.Ident || d.Got.Text != "a" {
		t.Fatalf("got %v", d.Got)
	}
	if d.Wanted.Text != ":" {
		t.Fatalf("got %v", d.Wanted)
	}

	// a failed require does not consume
	if !scanner.NextIsKeyword("a") {
		t.Fatal()
	}
}

func TestScannerErrorToken(t *testing.T) {
	scanner := newTestScanner(t, "a @\n")

	token := scanner.Read()
	if token.Kind != tokens.Ident {
		t.Fatalf("got %v", token)
	}

	if !scanner.NextIsError() {
		t.Fatal()
	}
	token = scanner.Peek()
	if token.Kind != tokens.Error {
		t.Fatalf("got %v", token)
	}
	diag, ok := token.Diag.(*diags.InvalidCharacter)
	if !ok {
		t.Fatalf("got %T", token.Diag)
	}
	if diag.Location.Line != 1 || diag.Location.Column != 3 {
		t.Fatalf("got %v", diag.Location)
	}
	// the error token is zero width at the failure point
	if token.Range.Start != diag.Location || token.Range.End != diag.Location {
		t.Fatalf("got %v", token.Range)
	}

	if scanner.NextDiag() == nil {
		t.Fatal()
	}

	// after consuming the error, the stream is pinned at EOF
	errToken := scanner.Read()
	for range 3 {
		token := scanner.Read()
		if token.Kind != tokens.EOF {
			t.Fatalf("got %v", token)
		}
		if token.Range != errToken.Range {
			t.Fatalf("got %v", token.Range)
		}
	}
}

func TestScannerErrorBeforeConsume(t *testing.T) {
	scanner := newTestScanner(t, "@")

	// peeking at the error does not disturb it
	first := scanner.Peek()
	if first.Kind != tokens.Error {
		t.Fatalf("got %v", first)
	}
	if scanner.Peek() != first {
		t.Fatal()
	}

	// a pending lexical failure outranks the mismatch
	_, err := scanner.RequireNewline()
	if err != first.Diag {
		t.Fatalf("got %v", err)
	}
	if _, ok := err.(*diags.InvalidCharacter); !ok {
		t.Fatalf("got %T", err)
	}
}

func TestScannerIndentationError(t *testing.T) {
	scanner := newTestScanner(t, "x:\n    y\n   z\n")

	var errToken *tokens.Token
	for {
		token := scanner.Read()
		if token.Kind == tokens.Error {
			errToken = token
			break
		}
		if token.Kind == tokens.EOF {
			t.Fatal("expected an error token")
		}
	}
	diag, ok := errToken.Diag.(*diags.InvalidIndentation)
	if !ok {
		t.Fatalf("got %T", errToken.Diag)
	}
	if diag.Location.Line != 3 || diag.Location.Column != 4 {
		t.Fatalf("got %v", diag.Location)
	}
	if token := scanner.Read(); token.Kind != tokens.EOF {
		t.Fatalf("got %v", token)
	}
}

func TestScannerExpression(t *testing.T) {
	scanner, err := NewExpressionScanner("test", strings.NewReader("1 +\n2"))
	if err != nil {
		t.Fatal(err)
	}
	kinds := []tokens.Kind{tokens.Number, tokens.Punct, tokens.Number, tokens.EOF}
	for _, kind := range kinds {
		token := scanner.Read()
		if token.Kind != kind {
			t.Fatalf("expected %v, got %v", kind, token)
		}
	}
}

func TestRangeBuilder(t *testing.T) {
	scanner := newTestScanner(t, "foo bar\n")

	builder := scanner.BeginRange()
	scanner.Read() // foo
	scanner.Read() // bar
	r := builder.End()
	if r.Start != (sources.Location{Filename: "test", Line: 1, Column: 1}) {
		t.Fatalf("got %v", r)
	}
	if r.End != (sources.Location{Filename: "test", Line: 1, Column: 8}) {
		t.Fatalf("got %v", r)
	}
}
