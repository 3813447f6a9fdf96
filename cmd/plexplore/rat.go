package main

import (
	"fmt"
	"math/big"

	"github.com/spf13/cobra"

	"github.com/nbrody/exactnum/rational"
)

var ratCmd = &cobra.Command{
	Use:   "rat <num> <den>",
	Short: "Canonicalize an exact rational and print its forms",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		num, ok := new(big.Int).SetString(args[0], 10)
		if !ok {
			return fmt.Errorf("numerator %q is not an integer", args[0])
		}
		den, ok := new(big.Int).SetString(args[1], 10)
		if !ok {
			return fmt.Errorf("denominator %q is not an integer", args[1])
		}
		r, err := rational.New(num, den)
		if err != nil {
			return err
		}
		fmt.Printf("canonical: %s\n", r)
		fmt.Printf("float:     %g\n", r.Float64())
		fmt.Printf("latex:     %s\n", r.Latex())
		return nil
	},
}
