package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	settingsPath string

	rootCmd = &cobra.Command{
		Use:   "veramc",
		Short: "Convert VERA core decks into constructive solid geometry models",
		Long: `veramc reads a VERA common-input XML deck and compiles its core,
assemblies, pin cells and vessel into a Monte Carlo CSG model.`,
		SilenceUsage: true,
	}

	buildCmd = &cobra.Command{
		Use:   "build <deck.xml>",
		Short: "Build the geometry model from a deck and print a summary",
		Args:  cobra.ExactArgs(1),
		RunE:  runBuild,
	}
)

func init() {
	buildCmd.Flags().StringVarP(&settingsPath, "settings", "s", "",
		"INI file with run settings (see 'veramc settings' for an example)")
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(settingsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
