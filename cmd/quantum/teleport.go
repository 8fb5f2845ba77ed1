package main

import (
	"fmt"
	"math/cmplx"

	"github.com/spf13/cobra"

	"github.com/canxin121/Introduction-to-Quantum-Information/quantum"
)

var teleportCmd = &cobra.Command{
	Use:   "teleport",
	Short: "Teleport |psi> = T·H|0> through a shared Bell pair",
	RunE: func(cmd *cobra.Command, args []string) error {
		circ := quantum.TeleportCircuit()

		fmt.Println("Quantum teleportation circuit:")
		fmt.Println(circ.ToQASM())

		alpha, beta, record := quantum.Teleport(newRNG(cmd))

		fmt.Printf("Alice's measurement record: %s\n", quantum.Bitstring(record))
		fmt.Printf("Bob's qubit: %.4f |0> + %.4f |1>\n", alpha, beta)
		fmt.Printf("|alpha|^2 = %.4f, |beta|^2 = %.4f\n",
			cmplx.Abs(alpha)*cmplx.Abs(alpha), cmplx.Abs(beta)*cmplx.Abs(beta))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(teleportCmd)
}
