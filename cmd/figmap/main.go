// Package main provides the entry point for the figmap CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/figmap-dev/figmap/cmd/figmap/commands"
	"github.com/figmap-dev/figmap/pkg/version"
)

func main() {
	// .env is loaded before viper so FIGMAP_FIGMA_TOKEN can live next to
	// the design fixtures. A missing file is not an error.
	_ = godotenv.Load()

	version.InitBinaryVersion()

	rootCmd := &cobra.Command{
		Use:   "figmap",
		Short: "Figmap - Figma component classification and slot mapping",
		Long: `Figmap classifies Figma design nodes into UI component archetypes
and binds their layers to component slots.

Commands:
  classify  Classify and slot-map a design tree (local file, stdin, or Figma API)
  schemas   List the slot schemas for every supported archetype
  mcp       Serve classification as MCP tools over stdio`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Subcommands read this through their merged flag set.
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress progress logs")

	// Add commands.
	rootCmd.AddCommand(commands.NewClassifyCommand())
	rootCmd.AddCommand(commands.NewSchemasCommand())
	rootCmd.AddCommand(commands.NewMCPCommand())
	rootCmd.AddCommand(versionCmd())

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(os.Stdout, "figmap %s (commit: %s, built: %s)\n", version.Version, version.Commit, version.Date)
		},
	}
}
