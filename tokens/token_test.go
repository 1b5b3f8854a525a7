package tokens

import "testing"

func TestDisplayName(t *testing.T) {
	tests := []struct {
		token Token
		name  string
	}{
		{Token{Kind: Newline, Text: "\n"}, "newline"},
		{Token{Kind: Indent, Delta: 2}, "indent"},
		{Token{Kind: Outdent}, "outdent"},
		{Token{Kind: EOF}, "end of file"},
		{Token{Kind: Ident, Text: "foo"}, "foo"},
		{Token{Kind: Punct, Text: "=="}, "=="},
		{Token{Kind: Number, Text: "42"}, "42"},
	}
	for _, test := range tests {
		if name := test.token.DisplayName(); name != test.name {
			t.Errorf("%v: got %q", test.token.Kind, name)
		}
	}
}

func TestEqual(t *testing.T) {
	a := &Token{Kind: Ident, Text: "x"}
	b := &Token{Kind: Ident, Text: "x"}
	if !a.Equal(b) {
		t.Fatal()
	}
	if a.Equal(&Token{Kind: Ident, Text: "y"}) {
		t.Fatal()
	}
	if a.Equal(&Token{Kind: Number, Text: "x"}) {
		t.Fatal()
	}
	if a.Equal(nil) {
		t.Fatal()
	}
}

func TestKindString(t *testing.T) {
	if Number.String() != "NUMBER" {
		t.Fatal()
	}
	if Begin.String() != "BEGIN" {
		t.Fatal()
	}
	if Kind(42).String() != "Kind(42)" {
		t.Fatal()
	}
}
