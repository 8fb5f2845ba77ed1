package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/canxin121/Introduction-to-Quantum-Information/quantum"
)

var superdenseCmd = &cobra.Command{
	Use:   "superdense",
	Short: "Send two classical bits over one qubit of a shared Bell pair",
	RunE: func(cmd *cobra.Command, args []string) error {
		message, _ := cmd.Flags().GetString("message")
		shots, _ := cmd.Flags().GetInt("shots")

		circ, err := quantum.SuperdenseCircuit(message)
		if err != nil {
			return err
		}

		fmt.Printf("Alice's sent message = %s\n\n", message)
		fmt.Println("Circuit:")
		fmt.Println(circ.ToQASM())

		counts, received, err := quantum.Superdense(message, shots, newRNG(cmd))
		if err != nil {
			return err
		}

		fmt.Printf("Measurement results: %v\n", counts)
		fmt.Printf("Bob's received message = %s\n", received)
		return nil
	},
}

func init() {
	superdenseCmd.Flags().String("message", "01", "two-bit message to send")
	superdenseCmd.Flags().Int("shots", 1024, "measurement shots")

	rootCmd.AddCommand(superdenseCmd)
}
