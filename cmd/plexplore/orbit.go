package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nbrody/exactnum/mat2"
	"github.com/nbrody/exactnum/orbit"
	"github.com/nbrody/exactnum/projective"
)

// generatorSet returns a named system of generators together with their
// adjugates, so the action is explored as a group, not a monoid.
func generatorSet(name string) ([]orbit.Generator, error) {
	pair := func(label string, m mat2.Matrix) []orbit.Generator {
		return []orbit.Generator{
			{Name: label, M: m},
			{Name: label + "'", M: m.Adjugate()},
		}
	}
	switch name {
	case "modular":
		gens := pair("S", mat2.FromInt64s(0, -1, 1, 0))
		return append(gens, pair("T", mat2.FromInt64s(1, 1, 0, 1))...), nil
	case "zhalf":
		gens := pair("A", mat2.FromInt64s(4, -4, 0, 1))
		return append(gens, pair("B", mat2.FromInt64s(3, 4, 2, 3))...), nil
	case "triangle":
		gens := pair("S", mat2.FromInt64s(0, -1, 1, 0))
		gens = append(gens, pair("A", mat2.FromInt64s(2, 0, 0, 1))...)
		return append(gens, pair("B", mat2.FromInt64s(1, 2, 2, 5))...), nil
	default:
		return nil, fmt.Errorf("unknown generator set %q (want modular, zhalf or triangle)", name)
	}
}

var (
	orbitGroup string
	orbitTo    string
	orbitCover int64
)

var orbitCmd = &cobra.Command{
	Use:   "orbit [seed]",
	Short: "Enumerate a generator orbit on P¹(Q), search a path, or cover a test set",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if d, _ := cmd.Flags().GetInt("max-depth"); d != 0 {
			cfg.MaxDepth = d
		}
		if h, _ := cmd.Flags().GetInt64("height-cap"); h != 0 {
			cfg.HeightCap = h
		}
		if n, _ := cmd.Flags().GetInt("max-nodes"); n != 0 {
			cfg.MaxNodes = n
		}
		if w, _ := cmd.Flags().GetInt("beam-width"); w != 0 {
			cfg.BeamWidth = w
		}

		gens, err := generatorSet(orbitGroup)
		if err != nil {
			return err
		}
		opts := []orbit.Option{
			orbit.WithContext(cmd.Context()),
			orbit.WithMaxDepth(cfg.MaxDepth),
			orbit.WithHeightCap(cfg.HeightCap),
			orbit.WithMaxNodes(cfg.MaxNodes),
			orbit.WithBeamWidth(cfg.BeamWidth),
		}

		if orbitCover > 0 {
			cov, err := orbit.Cover(gens, orbitCover, opts...)
			if err != nil {
				return err
			}
			fmt.Printf("|S_%d| = %d, representatives needed: %d\n",
				orbitCover, cov.Total, len(cov.Reps))
			for _, r := range cov.Reps {
				fmt.Printf("  %s\n", r)
			}
			if cov.HitCap {
				fmt.Println("node budget reached: orbits may have split")
			}
			return nil
		}

		if len(args) != 1 {
			return fmt.Errorf("a seed point is required unless --cover is given")
		}
		seed, err := projective.ParsePoint(args[0])
		if err != nil {
			return err
		}

		if orbitTo != "" {
			target, err := projective.ParsePoint(orbitTo)
			if err != nil {
				return err
			}
			path, err := orbit.FindPath(gens, seed, []projective.Point{target}, opts...)
			if err != nil {
				return err
			}
			word := make([]string, len(path.Steps))
			for i, s := range path.Steps {
				word[i] = s.Gen
			}
			fmt.Printf("reached:  %s\n", path.Target)
			fmt.Printf("word:     %s\n", strings.Join(word, " "))
			fmt.Printf("length:   %d\n", len(path.Steps))
			return nil
		}

		res, err := orbit.Explore(gens, seed, opts...)
		if err != nil {
			return err
		}
		fmt.Printf("orbit size: %d\n", len(res.Order))
		for _, pt := range res.Order {
			fmt.Printf("  %-12s depth %d\n", pt, res.Depth[pt.String()])
		}
		if res.HitCap {
			fmt.Println("node budget reached: orbit may be incomplete")
		}
		return nil
	},
}

var sphereCmd = &cobra.Command{
	Use:   "sphere <height>",
	Short: "List the points of P¹(Q) of height at most H",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var h int64
		if _, err := fmt.Sscanf(args[0], "%d", &h); err != nil || h < 1 {
			return fmt.Errorf("height %q must be a positive integer", args[0])
		}
		pts := orbit.Sphere(h)
		fmt.Printf("|S_%d| = %d\n", h, len(pts))
		for _, pt := range pts {
			fmt.Printf("  %s\n", pt)
		}
		return nil
	},
}

func init() {
	orbitCmd.Flags().StringVar(&orbitGroup, "group", "modular", "generator set: modular, zhalf or triangle")
	orbitCmd.Flags().StringVar(&orbitTo, "to", "", "beam-search a generator word to this point instead of enumerating")
	orbitCmd.Flags().Int64Var(&orbitCover, "cover", 0, "cover the test set S_H at this height and print the orbit representatives")
	orbitCmd.Flags().Int("max-depth", 0, "maximum word length (overrides config)")
	orbitCmd.Flags().Int64("height-cap", 0, "discard points above this height (overrides config)")
	orbitCmd.Flags().Int("max-nodes", 0, "node budget (overrides config)")
	orbitCmd.Flags().Int("beam-width", 0, "beam width for --to searches (overrides config)")
}
