package main

import (
	"os"

	"github.com/alphabetum/git-nest/internal/cli"
	"github.com/alphabetum/git-nest/internal/runtime"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], runtime.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}))
}
