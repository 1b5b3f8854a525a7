// Package diags holds the diagnostic values attached to ERROR tokens or
// returned from scanner assertions. They carry structured data only; how
// they end up presented is the caller's concern.
package diags

import (
	"fmt"

	"github.com/reusee/dsl/sources"
	"github.com/reusee/dsl/tokens"
)

// InvalidCharacter reports input matching no lexical category.
type InvalidCharacter struct {
	Location sources.Location
}

func (d *InvalidCharacter) Error() string {
	return fmt.Sprintf("invalid character at %s", d.Location)
}

// InvalidIndentation reports a dedent to a width not present on the
// indentation stack.
type InvalidIndentation struct {
	Location sources.Location
}

func (d *InvalidIndentation) Error() string {
	return fmt.Sprintf("inconsistent indentation at %s", d.Location)
}

// UnexpectedToken reports a token that does not match what a grammar rule
// required.
type UnexpectedToken struct {
	Wanted *tokens.Token
	Got    *tokens.Token
}

func (d *UnexpectedToken) Error() string {
	if d.Got.Range != nil {
		return fmt.Sprintf(
			"unexpected %s at %s, expecting %s",
			d.Got.DisplayName(),
			d.Got.Range.Start,
			d.Wanted.DisplayName(),
		)
	}
	return fmt.Sprintf(
		"unexpected %s, expecting %s",
		d.Got.DisplayName(),
		d.Wanted.DisplayName(),
	)
}
