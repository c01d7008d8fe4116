package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kydenul/probability"
	"github.com/kydenul/probability/cards"
)

func (a *app) newCardsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cards",
		Short: "Questions about 5-card poker hands",
	}

	var enumerate bool
	flushCmd := &cobra.Command{
		Use:   "flush",
		Short: "Probability that a 5-card hand is a flush",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			closed := cards.FlushProbability()
			fmt.Fprintf(out, "closed form: %s (%.6g)\n", closed.RatString(), probability.Float(closed))
			if !enumerate {
				return nil
			}

			a.engine.GetLogger().Info("Enumerating every 5-card hand")
			hands, err := cards.Hands(5)
			if err != nil {
				return err
			}
			a.engine.Monitor().RecordEnumeration(hands.Len())

			p, err := probability.Probability(probability.Select(hands, cards.Flush), hands)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "enumerated:  %s over %d hands\n", p.RatString(), hands.Len())
			if p.Cmp(closed) != 0 {
				return fmt.Errorf("enumeration %s disagrees with closed form %s", p.RatString(), closed.RatString())
			}
			return nil
		},
	}
	flushCmd.Flags().BoolVar(&enumerate, "enumerate", false, "Also enumerate all 2,598,960 hands")

	describeCmd := &cobra.Command{
		Use:   "describe CARD...",
		Short: "Name the poker category of a 5 or 7 card hand, e.g. Ah Kh Qh Jh Th",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := cards.ParseHand(strings.Join(args, " "))
			if err != nil {
				return err
			}
			desc, err := cards.Describe(h)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", h, desc)
			return nil
		},
	}

	cmd.AddCommand(flushCmd, describeCmd)
	return cmd
}
