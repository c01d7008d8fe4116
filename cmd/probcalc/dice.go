package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kydenul/probability"
	"github.com/kydenul/probability/dice"
)

func (a *app) newDiceCmd() *cobra.Command {
	var totals []int

	cmd := &cobra.Command{
		Use:   "dice NdS... --sum TOTAL",
		Short: "Probability that dice such as 2d6 roll one of the given totals",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			specs := make([]dice.Spec, 0, len(args))
			for _, arg := range args {
				spec, err := parseDice(arg)
				if err != nil {
					return err
				}
				specs = append(specs, spec)
			}

			sums, err := dice.Sums(specs...)
			if err != nil {
				return err
			}
			p, err := probability.Probability(probability.NewSet(totals...), sums)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", p.RatString())
			return nil
		},
	}

	cmd.Flags().IntSliceVar(&totals, "sum", nil, "Comma-separated totals making up the event")
	_ = cmd.MarkFlagRequired("sum")
	return cmd
}

// parseDice parses dice notation such as "2d6" or "d20"
func parseDice(s string) (dice.Spec, error) {
	count, sides, ok := strings.Cut(strings.ToLower(s), "d")
	if !ok {
		return dice.Spec{}, fmt.Errorf("dice %q: want NdS, e.g. 2d6", s)
	}
	if count == "" {
		count = "1"
	}

	n, err := strconv.Atoi(count)
	if err != nil {
		return dice.Spec{}, fmt.Errorf("dice %q: %w", s, err)
	}
	m, err := strconv.Atoi(sides)
	if err != nil {
		return dice.Spec{}, fmt.Errorf("dice %q: %w", s, err)
	}
	return dice.Spec{Sides: m, Count: n}, nil
}
