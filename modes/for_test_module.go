package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

// ModuleForTest is the scope module used by tests, carrying the
// *testing.T so providers can fail the test directly.
type ModuleForTest struct {
	dscope.Module
	t *testing.T
}

func ForTest(t *testing.T) ModuleForTest {
	return ModuleForTest{
		t: t,
	}
}

func (m ModuleForTest) T() *testing.T {
	return m.t
}

func (m ModuleForTest) Mode() Mode {
	return ModeDevelopment
}
