// Package actions provides the business logic for git-nest commands.
//
// Each action corresponds to a git-nest subcommand (add, pull, fetch,
// merge, deinit, rm) and delegates the actual work to git subprocesses.
//
// Key patterns:
//   - Actions accept runtime.Context which provides the git runner and logger
//   - Actions validate required arguments before any subprocess runs
//   - Actions perform no retries and no interpretation of git's output;
//     success or failure is whatever git itself returns
package actions
