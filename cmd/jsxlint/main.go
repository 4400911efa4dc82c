// Package main implements the jsxlint CLI.
// It provides commands for linting JSX sources, listing the built-in
// rules, and generating a project configuration interactively.
package main

import (
	"os"

	"github.com/l3aro/go-jsx-lint/cmd/jsxlint/commands"
)

var version = "dev"

func main() {
	commands.RootCmd.Version = version
	commands.RootCmd.SetVersionTemplate(`jsxlint version {{.Version}}
`)

	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
	os.Exit(commands.ExitCode())
}
