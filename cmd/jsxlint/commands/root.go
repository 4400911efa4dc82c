package commands

import (
	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "jsxlint",
	Short: "jsxlint - Static analysis for JSX sources",
	Long: `jsxlint analyzes JavaScript and JSX files for common JSX mistakes:
factory identifiers that are out of scope, literal strings where they are
not wanted, and files that define more than one component.

Commands:
  lint        Lint files or directories
  rules       List the built-in rules
  init        Generate a .jsxlint.yaml interactively

Use "jsxlint [command] --help" for more information about a command.`,
	SilenceUsage: true,
}

// exitCode is set by commands that succeed but still want a non-zero exit,
// such as lint when findings exist.
var exitCode int

// Execute adds all child commands to the root command and sets flags appropriately
func Execute() error {
	return RootCmd.Execute()
}

// ExitCode returns the process exit code requested by the executed command.
func ExitCode() int {
	return exitCode
}

func init() {
	RootCmd.AddCommand(lintCmd)
	RootCmd.AddCommand(rulesCmd)
	RootCmd.AddCommand(initCmd)
}
