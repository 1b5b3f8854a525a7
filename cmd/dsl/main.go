package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/reusee/dscope"
	"github.com/reusee/dsl/cmds"
	"github.com/reusee/dsl/debugs"
	"github.com/reusee/dsl/dslconfigs"
	"github.com/reusee/dsl/logs"
	"github.com/reusee/dsl/modes"
	"github.com/reusee/dsl/scanners"
	"github.com/reusee/dsl/sources"
	"github.com/reusee/dsl/syncs"
	"github.com/reusee/dsl/tokens"
)

var files []string

func init() {
	cmds.Define("-file", cmds.Func(func(pattern string) {
		paths, err := filepath.Glob(pattern)
		if err != nil {
			files = append(files, pattern)
		} else {
			for _, path := range paths {
				info, err := os.Stat(path)
				if err != nil {
					continue
				}
				if info.IsDir() {
					continue
				}
				files = append(files, path)
			}
		}
	}).Desc("add matching files as inputs"))
}

var (
	exprFlag = cmds.Switch("-expr")
	jsonFlag = cmds.Switch("-json")
	tapFlag  = cmds.Switch("-tap")
	jobsFlag = cmds.Var[int]("-jobs")
)

func main() {
	cmds.Execute(os.Args[1:])

	scope := dscope.New(
		new(scanners.Module),
		new(dslconfigs.Module),
		new(debugs.Module),
		modes.ForProduction(),
	)

	scope.Call(func(
		tokenize scanners.Tokenize,
		jobs dslconfigs.Jobs,
		output dslconfigs.Output,
		exprDefault dslconfigs.ExpressionOnly,
		tap debugs.Tap,
		newSpan logs.NewSpan,
		logger logs.Logger,
	) {
		ctx := context.Background()

		expressionOnly := *exprFlag || bool(exprDefault)
		asJSON := *jsonFlag || output == dslconfigs.OutputJSON
		if *jobsFlag > 0 {
			jobs = dslconfigs.Jobs(*jobsFlag)
		}

		type input struct {
			name    string
			content []byte
		}
		var inputs []input
		if len(files) == 0 {
			content, err := os.ReadFile("/dev/stdin")
			if err != nil {
				logger.Error("read stdin", "error", err)
				os.Exit(1)
			}
			inputs = append(inputs, input{
				name:    "<stdin>",
				content: content,
			})
		} else {
			for _, path := range files {
				content, err := os.ReadFile(path)
				if err != nil {
					logger.Error("read file", "error", err)
					os.Exit(1)
				}
				inputs = append(inputs, input{
					name:    path,
					content: content,
				})
			}
		}

		type result struct {
			source *sources.Source
			tokens []*tokens.Token
			err    error
		}
		results := make([]result, len(inputs))

		sem := syncs.NewSemaphore(int(jobs))
		var wg sync.WaitGroup
		for i, in := range inputs {
			wg.Add(1)
			sem.Acquire()
			go func() {
				defer wg.Done()
				defer sem.Release()
				ctx, _ := newSpan(ctx, "")
				toks, err := tokenize(in.name, bytes.NewReader(in.content), expressionOnly)
				results[i] = result{
					source: sources.NewSource(in.name, string(in.content)),
					tokens: toks,
					err:    logs.WrapSpan(ctx, err),
				}
			}()
		}
		wg.Wait()

		exitCode := 0
		tapGlobals := make(map[string]any)
		for _, res := range results {
			if res.err != nil {
				logger.Error("tokenize", "error", res.err)
				exitCode = 1
				continue
			}
			tapGlobals[identName(res.source.Name)] = res.tokens

			if asJSON {
				printJSON(res.tokens)
			} else {
				printText(res.tokens)
			}

			for _, token := range res.tokens {
				if token.Kind != tokens.Error {
					continue
				}
				exitCode = 1
				fmt.Fprintln(os.Stderr, token.Diag.Error())
				fmt.Fprint(os.Stderr, res.source.Quote(token.Range.Start))
			}
		}

		if *tapFlag {
			tap(ctx, "tokens", tapGlobals)
		}

		os.Exit(exitCode)
	})
}

func printText(toks []*tokens.Token) {
	for _, token := range toks {
		start := token.Range.Start
		switch token.Kind {
		case tokens.Indent:
			fmt.Printf("%d:%d\t%s\t+%d\n", start.Line, start.Column, token.Kind, token.Delta)
		case tokens.Newline, tokens.Outdent, tokens.EOF, tokens.Error:
			fmt.Printf("%d:%d\t%s\n", start.Line, start.Column, token.Kind)
		default:
			fmt.Printf("%d:%d\t%s\t%s\n", start.Line, start.Column, token.Kind, token.Text)
		}
	}
}

type tokenDump struct {
	Kind   string `json:"kind"`
	Text   string `json:"text,omitempty"`
	Delta  int    `json:"delta,omitempty"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
	Diag   string `json:"diag,omitempty"`
}

func printJSON(toks []*tokens.Token) {
	dumps := make([]tokenDump, 0, len(toks))
	for _, token := range toks {
		dump := tokenDump{
			Kind:   token.Kind.String(),
			Text:   token.Text,
			Delta:  token.Delta,
			Line:   token.Range.Start.Line,
			Column: token.Range.Start.Column,
		}
		if token.Diag != nil {
			dump.Diag = token.Diag.Error()
		}
		dumps = append(dumps, dump)
	}
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(dumps); err != nil {
		panic(err)
	}
}

// identName turns a file path into a starlark-friendly global name.
func identName(name string) string {
	runes := []rune(name)
	for i, r := range runes {
		if r >= 'a' && r <= 'z' ||
			r >= 'A' && r <= 'Z' ||
			r >= '0' && r <= '9' && i > 0 {
			continue
		}
		runes[i] = '_'
	}
	return string(runes)
}
