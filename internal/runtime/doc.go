// Package runtime provides the execution context for git-nest commands.
//
// It bundles the shared dependencies a command handler needs, such as the
// git runner, the logger and the environment settings, so handlers take a
// single value instead of globals.
package runtime
