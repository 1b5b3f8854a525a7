package cmds

// GlobalExecutor serves the package-level Define and Execute that
// binaries and init-time flag registrations share.
var GlobalExecutor = NewExecutor()

func Define(name string, command *Command) {
	GlobalExecutor.Define(name, command)
}

func Execute(args []string) {
	GlobalExecutor.MustExecute(args)
}
