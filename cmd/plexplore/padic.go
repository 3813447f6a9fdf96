package main

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nbrody/exactnum/padic"
)

var padicInv bool

var padicCmd = &cobra.Command{
	Use:   "padic <n | a/b>",
	Short: "Expand an integer or ratio into p-adic digits",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if p, _ := cmd.Flags().GetInt64("prime"); p != 0 {
			cfg.Prime = p
		}
		if n, _ := cmd.Flags().GetInt("precision"); n != 0 {
			cfg.Precision = n
		}
		f, err := padic.NewField(cfg.Prime, cfg.Precision)
		if err != nil {
			return err
		}
		x, err := parsePadic(f, args[0])
		if err != nil {
			return err
		}
		fmt.Printf("expansion: %s\n", x)
		if x.IsZero() {
			fmt.Println("valuation: infinite")
		} else {
			fmt.Printf("valuation: %d\n", x.Valuation())
		}
		if padicInv {
			inv, err := x.Inv()
			if err != nil {
				return err
			}
			fmt.Printf("inverse:   %s\n", inv)
		}
		return nil
	},
}

func init() {
	padicCmd.Flags().Int64("prime", 0, "field prime (overrides config)")
	padicCmd.Flags().Int("precision", 0, "digits of precision (overrides config)")
	padicCmd.Flags().BoolVar(&padicInv, "inv", false, "also print the multiplicative inverse")
}

func parsePadic(f *padic.Field, s string) (padic.Number, error) {
	if num, den, ok := strings.Cut(s, "/"); ok {
		a, okA := new(big.Int).SetString(num, 10)
		b, okB := new(big.Int).SetString(den, 10)
		if !okA || !okB {
			return padic.Number{}, fmt.Errorf("ratio %q is not of the form a/b", s)
		}
		return f.FromRatio(a, b)
	}
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return padic.Number{}, fmt.Errorf("%q is not an integer or ratio", s)
	}
	return f.FromBigInt(n)
}
