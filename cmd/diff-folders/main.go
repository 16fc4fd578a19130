// Package main is the entry point for the diff-folders application.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/chmouel/diff-folders/internal/buildinfo"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	builtBy = "unknown"
)

func main() {
	buildinfo.Set(buildinfo.Info{Version: version, Commit: commit, Date: date, BuiltBy: builtBy})
	buildinfo.Enrich()

	cmd := newCommand(runTUI)
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
