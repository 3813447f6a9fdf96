// Command plexplore is a terminal explorer for the exactnum library:
// exact rational evaluation, p-adic digit expansions and inverses,
// projective orbit searches, and Bruhat–Tits tree vertices.
//
// Library errors are terminal per operation: they are printed in red
// and the process exits non-zero, never with a stack trace.
package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "plexplore",
	Short:         "Explore exact rational, p-adic, and projective-line arithmetic",
	Long:          "plexplore evaluates exact rationals, expands p-adic digits,\nruns orbit and beam searches on the projective line, and reduces\nmatrices over Q_p to Bruhat-Tits tree vertices.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	rootCmd.AddCommand(ratCmd)
	rootCmd.AddCommand(padicCmd)
	rootCmd.AddCommand(orbitCmd)
	rootCmd.AddCommand(sphereCmd)
	rootCmd.AddCommand(vertexCmd)

	rootCmd.PersistentFlags().String("config", "", "TOML file with default prime, precision and search bounds")

	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "plexplore: %v\n", err)
		os.Exit(1)
	}
}
