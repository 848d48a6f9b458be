package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/cruise-sim/sim"
)

var (
	comparePreset     string
	compareMaxCruises int
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare expected returns across cruise counts",
	Long:  "Expand a preset once per cruise count from 1 to --max-cruises and report the counts with the best ROI and net return.",
	Run: func(cmd *cobra.Command, args []string) {
		if compareMaxCruises < 1 {
			logrus.Fatalf("--max-cruises must be at least 1, got %d", compareMaxCruises)
		}
		cfg, err := sim.Preset(comparePreset)
		if err != nil {
			logrus.Fatalf("Failed to load preset: %v", err)
		}
		rows := sim.CompareCruiseCounts(cfg, compareMaxCruises)
		if err := writeComparisonTable(cmd.OutOrStdout(), comparePreset, rows); err != nil {
			logrus.Fatalf("Failed to write comparison: %v", err)
		}
	},
}

// writeComparisonTable prints one row per cruise count followed by the best counts.
func writeComparisonTable(w io.Writer, preset string, rows []sim.CruiseComparison) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CRUISES\tSTAGES\tMONTHS\tCOMPLETION\tEXPECTED NET\tROI%\tBREAKEVEN\tANNUAL IRR%")
	for _, r := range rows {
		s := r.Summary
		breakeven, irr := "-", "-"
		if s.BreakevenStage != nil {
			breakeven = fmt.Sprintf("%d", *s.BreakevenStage)
		}
		if s.AnnualIRR != nil {
			irr = fmt.Sprintf("%.2f", *s.AnnualIRR)
		}
		fmt.Fprintf(tw, "%d\t%d\t%d\t%.4f\t%.2f\t%.2f\t%s\t%s\n",
			r.NumCruises, s.Stages, s.TotalMonths, s.CompletionProbability,
			s.ExpectedNetCashFlow, s.ROIPercent, breakeven, irr)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\n=== Cruise Count Comparison (%s) ===\n", preset)
	if best, ok := sim.BestByROI(rows); ok {
		fmt.Fprintf(w, "Best ROI: %d cruises (%.2f%%)\n", best.NumCruises, best.Summary.ROIPercent)
	}
	if best, ok := sim.BestByNetCashFlow(rows); ok {
		fmt.Fprintf(w, "Best net return: %d cruises (%.2f)\n", best.NumCruises, best.Summary.ExpectedNetCashFlow)
	}
	return nil
}

func init() {
	compareCmd.Flags().StringVar(&comparePreset, "preset", "default", "Preset name (default, baseline, optimistic, pessimistic)")
	compareCmd.Flags().IntVar(&compareMaxCruises, "max-cruises", 5, "Largest cruise count to compare")

	rootCmd.AddCommand(compareCmd)
}
