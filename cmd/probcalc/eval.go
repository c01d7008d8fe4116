package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kydenul/probability/internal/report"
	"github.com/kydenul/probability/internal/scenario"
)

func (a *app) newEvalCmd() *cobra.Command {
	var (
		asJSON   bool
		csvPath  string
		xlsxPath string
	)

	cmd := &cobra.Command{
		Use:   "eval FILE...",
		Short: "Evaluate the scenarios of one or more YAML files exactly",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var results []*scenario.Result
			mismatches := 0
			for _, path := range args {
				scenarios, err := scenario.Load(path)
				if err != nil {
					return err
				}
				for _, s := range scenarios {
					res, err := s.Run(a.engine)
					if err != nil {
						return fmt.Errorf("scenario %q: %w", s.Name, err)
					}
					if res.Matches != nil && !*res.Matches {
						mismatches++
					}
					results = append(results, res)
				}
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(results); err != nil {
					return err
				}
			} else {
				for _, res := range results {
					printResult(cmd, res)
				}
			}

			if err := writeReports(results, csvPath, xlsxPath); err != nil {
				return err
			}

			if mismatches > 0 {
				return fmt.Errorf("%d scenario(s) did not match their expected answer", mismatches)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print results as JSON")
	cmd.Flags().StringVar(&csvPath, "csv", "", "Also write results to a CSV file")
	cmd.Flags().StringVar(&xlsxPath, "xlsx", "", "Also write results to an XLSX spreadsheet")
	return cmd
}

func writeReports(results []*scenario.Result, csvPath, xlsxPath string) error {
	if csvPath != "" {
		f, err := os.Create(csvPath)
		if err != nil {
			return err
		}
		if err := report.WriteCSV(f, results); err != nil {
			f.Close()
			return fmt.Errorf("writing %s: %w", csvPath, err)
		}
		if err := f.Close(); err != nil {
			return err
		}
	}
	if xlsxPath != "" {
		if err := report.WriteXLSX(xlsxPath, results); err != nil {
			return fmt.Errorf("writing %s: %w", xlsxPath, err)
		}
	}
	return nil
}

func printResult(cmd *cobra.Command, res *scenario.Result) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: %s (%.6g) over %d outcomes", res.Name, res.Exact, res.Float, res.Outcomes)
	if res.Matches != nil {
		if *res.Matches {
			fmt.Fprint(out, " ok")
		} else {
			fmt.Fprintf(out, " MISMATCH, expected %s", res.Expected)
		}
	}
	fmt.Fprintln(out)
}
