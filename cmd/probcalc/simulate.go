package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kydenul/probability"
	"github.com/kydenul/probability/internal/scenario"
)

func (a *app) newSimulateCmd() *cobra.Command {
	var (
		trials int
		seed   int64
	)

	cmd := &cobra.Command{
		Use:   "simulate FILE",
		Short: "Cross-check the scenarios of a YAML file by Monte Carlo sampling",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("seed") {
				cfg := *a.engine.GetConfig()
				sim := *cfg.Simulation
				sim.Seed = seed
				cfg.Simulation = &sim
				if err := a.engine.UpdateConfig(&cfg); err != nil {
					return err
				}
			}

			scenarios, err := scenario.Load(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, s := range scenarios {
				exact, err := s.Run(a.engine)
				if err != nil {
					return fmt.Errorf("scenario %q: %w", s.Name, err)
				}
				est, err := s.Simulate(a.engine, trials)
				if err != nil {
					return fmt.Errorf("scenario %q: %w", s.Name, err)
				}

				fmt.Fprintf(out, "%s: exact %.6g, estimate %.6g ± %.2g over %d trials",
					s.Name, exact.Float, est.Probability, est.StdErr, est.Trials)
				if len(s.Given) > 0 {
					fmt.Fprint(out, " (unconditioned)")
				} else if !est.Within(exact.Probability, 5) {
					fmt.Fprint(out, " OUTSIDE 5 standard errors")
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&trials, "trials", 0, fmt.Sprintf("Number of samples (0 uses simulation.trials, default %d)", probability.DefaultSimulationTrials))
	cmd.Flags().Int64Var(&seed, "seed", 0, "Seed for reproducible sampling (0 uses a cryptographic source)")
	return cmd
}
