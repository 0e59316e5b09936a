package actions

import (
	"context"

	"github.com/alphabetum/git-nest/internal/output"
	"github.com/alphabetum/git-nest/internal/runtime"
)

// fakeRunner records delegated git invocations instead of executing them.
// Setting failAt to a 1-based call index makes that call return err.
type fakeRunner struct {
	calls  [][]string
	failAt int
	err    error
}

func (f *fakeRunner) Run(_ context.Context, args ...string) error {
	f.calls = append(f.calls, args)
	if f.failAt > 0 && len(f.calls) == f.failAt {
		return f.err
	}
	return nil
}

func newTestContext(runner *fakeRunner) *runtime.Context {
	return &runtime.Context{
		Context: context.Background(),
		Git:     runner,
		Log:     output.New(false),
	}
}
