package main

import (
	"fmt"
	"math/big"

	"github.com/spf13/cobra"

	"github.com/nbrody/exactnum/bruhattits"
	"github.com/nbrody/exactnum/padic"
)

var vertexCmd = &cobra.Command{
	Use:   "vertex <a> <b> <c> <d>",
	Short: "Reduce an integer matrix over Q_p to its Bruhat–Tits tree vertex",
	Args:  cobra.ExactArgs(4),
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

		entries := make([]padic.Number, 4)
		for i, arg := range args {
			n, ok := new(big.Int).SetString(arg, 10)
			if !ok {
				return fmt.Errorf("entry %q is not an integer", arg)
			}
			entries[i], err = f.FromBigInt(n)
			if err != nil {
				return err
			}
		}
		v, err := bruhattits.Reduce(entries[0], entries[1], entries[2], entries[3])
		if err != nil {
			return err
		}
		fmt.Printf("vertex: %s\n", v)
		fmt.Printf("level:  %d\n", v.Level)
		fmt.Printf("offset: %s\n", v.Offset)
		return nil
	},
}

func init() {
	vertexCmd.Flags().Int64("prime", 0, "field prime (overrides config)")
	vertexCmd.Flags().Int("precision", 0, "digits of precision (overrides config)")
}
