// Package main is the entry point for the srcbuf CLI.
package main

import (
	"errors"
	"os"

	"github.com/yaklabco/srcbuf/internal/cli"
	"github.com/yaklabco/srcbuf/internal/logging"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, cli.ErrLookupsFailed) {
		// ErrLookupsFailed only signals the exit code; the report already
		// describes what failed.
		logger := logging.Default()
		logger.Error("command failed", logging.FieldError, err)
	}

	return cli.ExitCodeFromError(err)
}
