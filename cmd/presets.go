package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/cruise-sim/sim"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the built-in scenario presets",
	Run: func(cmd *cobra.Command, args []string) {
		if err := writePresetTable(cmd.OutOrStdout()); err != nil {
			logrus.Fatalf("Failed to list presets: %v", err)
		}
	},
}

// writePresetTable prints one row of headline parameters per preset.
func writePresetTable(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PRESET\tCRUISES\tBREAKS\tTRAINING DROPOUT\tDISNEY SALARIES\tCOSTA SALARIES\tSTAGES\tCOMPLETION\tEXPECTED NET\tDESCRIPTION")
	for _, name := range sim.PresetNames() {
		cfg, err := sim.Preset(name)
		if err != nil {
			return err
		}
		desc, err := sim.PresetDescription(name)
		if err != nil {
			return err
		}
		providers := cfg.Providers()
		sum := sim.Summarize(sim.CreateStateConfigs(cfg))
		fmt.Fprintf(tw, "%s\t%d\t%v\t%.2f\t%v\t%v\t%d\t%.4f\t%.2f\t%s\n",
			name, cfg.NumCruises, cfg.IncludeBreaks, cfg.BasicTrainingDropoutRate,
			providers[0].Salaries, providers[1].Salaries,
			sum.Stages, sum.CompletionProbability, sum.ExpectedNetCashFlow, desc)
	}
	return tw.Flush()
}

func init() {
	rootCmd.AddCommand(presetsCmd)
}
