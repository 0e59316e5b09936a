// Package argv turns a raw process argument vector into a command
// invocation.
//
// Parsing happens in two passes: Normalize rewrites combined short
// options and --name=value tokens into a flat stream, then Classify walks
// that stream once to pick out the built-in options, the command name,
// and the command's positional arguments. Handlers receive positionals
// exactly as classified, including tokens that look like flags.
package argv
