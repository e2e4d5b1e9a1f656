// Package cmd provides the CLI commands for reqmig.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information - set via ldflags at build time in main.go.
// These are exported so main.go can set them before Execute().
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "reqmig",
	Short: "Migrate requirements.txt dependencies to a modern package manager",
	Long: `Reqmig migrates the dependencies listed in a requirements.txt file
into a modern Python package manager project (uv, poetry, pdm, or pipenv).

It reads the file line by line, skips blanks and comments, and invokes the
manager's add command once per dependency, in file order. The manager
resolves versions and updates its own manifest and lockfile.`,
	// When reqmig is called with no subcommand, run the migration
	// (same as "reqmig migrate").
	RunE: runRoot,
}

// runRoot is called when reqmig is invoked with no subcommand.
// It delegates to runMigrate, so "reqmig" behaves like "reqmig migrate".
func runRoot(cmd *cobra.Command, args []string) error {
	return runMigrate(cmd, args)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Set version info here after main.go has set the variables.
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)
	rootCmd.SetVersionTemplate("reqmig {{.Version}}\n")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// Root returns the root command for testing purposes.
func Root() *cobra.Command {
	return rootCmd
}
