// Package config reads git-nest's environment-driven settings.
//
// git-nest keeps no configuration files. Everything tunable comes from
// environment variables, read once at startup and threaded through the
// run context from there.
package config

import (
	"os"
	"strconv"
)

// FallbackCommand is dispatched when no subcommand is named and
// DEFAULT_COMMAND is unset.
const FallbackCommand = "help"

// Env holds the settings read from the environment.
type Env struct {
	// DefaultCommand is dispatched when the command line names no
	// subcommand. Set with DEFAULT_COMMAND.
	DefaultCommand string

	// Debug turns on subprocess tracing, same as the --debug flag.
	// Set with GIT_NEST_DEBUG.
	Debug bool

	// LogFile enables the rolling debug log. Set with GIT_NEST_LOG_FILE.
	LogFile string

	// Rotation settings for the debug log. Override with
	// GIT_NEST_LOG_MAX_SIZE, GIT_NEST_LOG_MAX_BACKUPS and
	// GIT_NEST_LOG_MAX_AGE.
	LogMaxSizeMB  int
	LogMaxBackups int
	LogMaxAgeDays int

	// NoColor disables styled output. Set with GIT_NEST_NO_COLOR; the
	// NO_COLOR convention is honored separately by the output package.
	NoColor bool
}

// FromEnv reads the settings from the process environment.
func FromEnv() Env {
	env := Env{
		DefaultCommand: FallbackCommand,
		Debug:          os.Getenv("GIT_NEST_DEBUG") != "",
		LogFile:        os.Getenv("GIT_NEST_LOG_FILE"),
		NoColor:        os.Getenv("GIT_NEST_NO_COLOR") != "",
		LogMaxSizeMB:   1,
		LogMaxBackups:  2,
		LogMaxAgeDays:  30,
	}

	if command := os.Getenv("DEFAULT_COMMAND"); command != "" {
		env.DefaultCommand = command
	}

	if maxSizeStr := os.Getenv("GIT_NEST_LOG_MAX_SIZE"); maxSizeStr != "" {
		if maxSize, err := strconv.Atoi(maxSizeStr); err == nil && maxSize > 0 {
			env.LogMaxSizeMB = maxSize
		}
	}

	if maxBackupsStr := os.Getenv("GIT_NEST_LOG_MAX_BACKUPS"); maxBackupsStr != "" {
		if maxBackups, err := strconv.Atoi(maxBackupsStr); err == nil && maxBackups >= 0 {
			env.LogMaxBackups = maxBackups
		}
	}

	if maxAgeStr := os.Getenv("GIT_NEST_LOG_MAX_AGE"); maxAgeStr != "" {
		if maxAge, err := strconv.Atoi(maxAgeStr); err == nil && maxAge > 0 {
			env.LogMaxAgeDays = maxAge
		}
	}

	return env
}
