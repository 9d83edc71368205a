// Package main provides the entry point for the sigil CLI.
package main

import (
	"context"
	"os"

	"github.com/mrz1836/sigil/internal/cli"
)

// Set via -ldflags "-X main.version=... -X main.commit=... -X main.date=...".
//
//nolint:gochecknoglobals // build metadata
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	err := cli.Execute(context.Background(), cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	})
	os.Exit(cli.ExitCodeForError(err))
}
