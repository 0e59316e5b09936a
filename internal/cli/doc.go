// Package cli implements git-nest's command-line front end.
//
// It owns the static command registry, the description store, dispatch,
// and the top-level Run pipeline that turns raw process arguments into an
// exit status. Argument rewriting lives in internal/argv; the commands'
// business logic lives in internal/actions.
package cli
