// Package main provides the entry point for the pareto CLI tool.
package main

import (
	"github.com/modelpareto/pareto/cmd/pareto/cmd"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
	builtBy = "unknown"
)

func main() {
	cmd.Execute(version, commit, date, builtBy)
}
