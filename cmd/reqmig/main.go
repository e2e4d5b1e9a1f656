// Package main is the entry point for the reqmig CLI application.
package main

import (
	"github.com/reqmig/reqmig/cmd/reqmig/cmd"
)

// Version information - will be set by build flags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cmd.Version = version
	cmd.Commit = commit
	cmd.Date = date
	cmd.Execute()
}
