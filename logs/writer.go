package logs

import (
	"io"
	"os"
)

// Writer is where log output goes. Tests fork the scope with a buffer
// to capture it.
type Writer io.Writer

func (Module) Writer() Writer {
	return os.Stderr
}
