// Package main provides the entry point for the scoremerge CLI tool.
package main

import (
	"os"

	"github.com/seasonhq/scorecard/cmd/scoremerge/app"
	"github.com/seasonhq/scorecard/cmd/scoremerge/cmd"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	config, err := app.LoadConfig()
	if err != nil {
		app.ExitOnError(err)
	}

	root := cmd.NewRootCommand(config, version, commit)
	if err := root.Execute(); err != nil {
		app.ExitOnError(err)
	}
	os.Exit(0)
}
