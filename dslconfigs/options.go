package dslconfigs

import (
	"runtime"

	"github.com/reusee/dsl/configs"
	"github.com/reusee/dsl/vars"
)

// Jobs bounds how many inputs are tokenized concurrently.
type Jobs int

func (Module) Jobs(
	loader configs.Loader,
) Jobs {
	return Jobs(vars.FirstNonZero(
		configs.First[int](loader, "jobs"),
		runtime.GOMAXPROCS(0),
	))
}

// Output selects the token dump form.
type Output string

const (
	OutputText Output = "text"
	OutputJSON Output = "json"
)

func (Module) Output(
	loader configs.Loader,
) Output {
	return Output(vars.FirstNonZero(
		configs.First[string](loader, "output"),
		string(OutputText),
	))
}

// ExpressionOnly makes expression-only scanning the default mode.
type ExpressionOnly bool

func (Module) ExpressionOnly(
	loader configs.Loader,
) ExpressionOnly {
	return ExpressionOnly(configs.First[bool](loader, "expression"))
}
