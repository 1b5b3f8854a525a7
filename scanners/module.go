package scanners

import (
	"io"

	"github.com/reusee/dscope"
	"github.com/reusee/dsl/logs"
	"github.com/reusee/dsl/tokens"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}

// Tokenize drains one input into a token slice. The slice always ends
// with the EOF token; a lexical failure shows up as an ERROR token right
// before it.
type Tokenize func(name string, r io.Reader, expressionOnly bool) ([]*tokens.Token, error)

func (Module) Tokenize(
	logger logs.Logger,
) Tokenize {
	return func(name string, r io.Reader, expressionOnly bool) ([]*tokens.Token, error) {
		var scanner *Scanner
		var err error
		if expressionOnly {
			scanner, err = NewExpressionScanner(name, r)
		} else {
			scanner, err = NewScanner(name, r)
		}
		if err != nil {
			return nil, err
		}

		var ret []*tokens.Token
		for {
			token := scanner.Read()
			ret = append(ret, token)
			if token.Kind == tokens.EOF {
				break
			}
		}

		logger.Debug("tokenized",
			"name", name,
			"tokens", len(ret),
		)
		return ret, nil
	}
}
