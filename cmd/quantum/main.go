// Package main is the entry point for the quantum protocol demos:
// superdense coding, teleportation, and a CHSH Bell-inequality test.
package main

import (
	"math/rand/v2"
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the quantum demo CLI.
var rootCmd = &cobra.Command{
	Use:     "quantum",
	Short:   "Quantum information protocol demonstrations",
	Version: version,
	Long: `quantum runs the course's protocol demonstrations on an exact
statevector simulator. Each protocol is a subcommand: superdense,
teleport, and chsh. Runs are reproducible via --seed.`,
}

func init() {
	rootCmd.PersistentFlags().Uint64("seed", 1, "random seed for measurement sampling")
}

// newRNG builds the measurement sampler from the --seed flag.
func newRNG(cmd *cobra.Command) *rand.Rand {
	seed, _ := cmd.Flags().GetUint64("seed")
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
