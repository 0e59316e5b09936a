package runtime

import (
	"context"

	"github.com/alphabetum/git-nest/internal/config"
	"github.com/alphabetum/git-nest/internal/git"
	"github.com/alphabetum/git-nest/internal/output"
)

// BuildInfo identifies the binary. The fields are injected at link time
// by the release build.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// Context provides access to the git runner and output for commands
type Context struct {
	Context context.Context
	Git     git.Runner
	Log     *output.Logger
	Env     config.Env
	Build   BuildInfo

	// Debug is true when tracing was requested by flag or environment.
	Debug bool
}

// NewContext creates a context wired to the real git binary and the
// process's standard streams.
func NewContext(env config.Env, build BuildInfo, debug bool) (*Context, error) {
	logger, err := output.NewWithOptions(output.Options{
		Debug:         debug,
		LogFile:       env.LogFile,
		LogMaxSizeMB:  env.LogMaxSizeMB,
		LogMaxBackups: env.LogMaxBackups,
		LogMaxAgeDays: env.LogMaxAgeDays,
	})
	if err != nil {
		return nil, err
	}

	return &Context{
		Context: context.Background(),
		Git:     git.NewExecRunner(logger),
		Log:     logger,
		Env:     env,
		Build:   build,
		Debug:   debug,
	}, nil
}

// Close releases resources held by the context, such as the log file.
func (c *Context) Close() error {
	if c.Log != nil {
		return c.Log.Close()
	}
	return nil
}
