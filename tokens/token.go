package tokens

import (
	"fmt"

	"github.com/reusee/dsl/sources"
)

type Kind uint8

const (
	Number Kind = iota
	StringLit
	Ident
	Punct
	Newline
	Indent
	Outdent
	EOF
	Error
	// Begin is never produced by a lexer. It is the scanner's initial
	// "last token", anchored at line 1 column 1, so the position of the
	// previous token is defined before anything has been read.
	Begin
)

func (k Kind) String() string {
	switch k {
	case Number:
		return "NUMBER"
	case StringLit:
		return "STRINGLIT"
	case Ident:
		return "IDENT"
	case Punct:
		return "PUNCT"
	case Newline:
		return "NEWLINE"
	case Indent:
		return "INDENT"
	case Outdent:
		return "OUTDENT"
	case EOF:
		return "EOF"
	case Error:
		return "ERROR"
	case Begin:
		return "BEGIN"
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Token is one lexical unit. Tokens are created once and never mutated.
//
// Text holds the lexeme for Number, StringLit, Ident and Punct tokens.
// Delta holds the width change for Indent tokens. Diag holds the
// diagnostic value for Error tokens.
type Token struct {
	Kind  Kind
	Text  string
	Delta int
	Diag  error
	Range *sources.Range
}

// Equal is structural equality on (kind, text). Ranges and diagnostics do
// not participate.
func (t *Token) Equal(other *Token) bool {
	if other == nil {
		return false
	}
	return t.Kind == other.Kind && t.Text == other.Text
}

// DisplayName is how the token reads in a diagnostic message.
func (t *Token) DisplayName() string {
	switch t.Kind {
	case Newline:
		return "newline"
	case Indent:
		return "indent"
	case Outdent:
		return "outdent"
	case EOF:
		return "end of file"
	}
	return t.Text
}

func (t *Token) String() string {
	return fmt.Sprintf("<Token %s %q>", t.Kind, t.Text)
}
