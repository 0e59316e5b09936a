// Package git runs the real git binary.
//
// Every piece of actual work (registering remotes, merging, reading
// trees) is delegated to a git subprocess with inherited stdio. The
// Runner interface is the only path to the external process, so handlers
// can be exercised against a fake without touching a repository.
package git
