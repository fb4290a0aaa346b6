// Command trotterize expands a weighted Pauli sum, described in a YAML
// file, into a product-formula factor list and prints one factor per line.
//
// Input format:
//
//	time: 1.0
//	terms:
//	  - coeff: 1.0
//	    pauli: X
//	  - coeff: 0.5
//	    pauli: Z
//
// Usage:
//
//	trotterize hamiltonian.yaml --order 2 --reps 4
//	trotterize hamiltonian.yaml --qdrift --seed 7
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/trotter/expand"
	"github.com/katalvlaran/trotter/op"
)

// hamiltonianFile mirrors the YAML input shape.
type hamiltonianFile struct {
	Time  float64 `yaml:"time"`
	Terms []struct {
		Coeff float64 `yaml:"coeff"`
		Pauli string  `yaml:"pauli"`
	} `yaml:"terms"`
}

// loadOperand reads and validates the YAML description into a PauliSumOp.
func loadOperand(path string) (*op.PauliSumOp, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file hamiltonianFile
	if err = yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	paulis := make([]op.Pauli, len(file.Terms))
	coeffs := make([]complex128, len(file.Terms))
	for i, t := range file.Terms {
		paulis[i], err = op.NewPauli(t.Pauli)
		if err != nil {
			return nil, fmt.Errorf("term %d: %w", i, err)
		}
		coeffs[i] = complex(t.Coeff, 0)
	}

	return op.NewPauliSumOp(paulis, coeffs, complex(file.Time, 0))
}

var rootCmd = &cobra.Command{
	Use:   "trotterize <hamiltonian.yaml>",
	Short: "Expand a weighted Pauli sum into a product formula",
	Long: `Reads a weighted Pauli sum from a YAML file and prints the ordered
exponentiated-factor list of its Trotter-Suzuki (or qDRIFT) expansion.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		operand, err := loadOperand(args[0])
		if err != nil {
			return err
		}

		reps, _ := cmd.Flags().GetInt("reps")
		order, _ := cmd.Flags().GetInt("order")
		useQDrift, _ := cmd.Flags().GetBool("qdrift")
		seed, _ := cmd.Flags().GetInt64("seed")

		var strategy expand.Strategy
		if useQDrift {
			strategy = expand.NewQDrift(expand.WithReps(reps), expand.WithSeed(seed))
		} else {
			strategy = expand.NewSuzuki(expand.WithReps(reps), expand.WithOrder(order))
		}

		composed, err := strategy.Expand(operand)
		if err != nil {
			return err
		}

		for _, f := range composed.Factors() {
			fmt.Println(f)
		}
		fmt.Fprintf(os.Stderr, "%d factors\n", composed.Len())

		return nil
	},
}

func init() {
	rootCmd.Flags().Int("reps", expand.DefaultReps, "number of repetitions (time slices)")
	rootCmd.Flags().Int("order", expand.DefaultOrder, "Suzuki expansion order (1 or even >= 2)")
	rootCmd.Flags().Bool("qdrift", false, "use the randomized qDRIFT strategy instead of Suzuki")
	rootCmd.Flags().Int64("seed", expand.DefaultSeed, "qDRIFT sampling seed (0 = default stream)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
