package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/cruise-sim/sim"
)

// stagesOptions holds the flags of `cruise-sim stages`.
type stagesOptions struct {
	preset         string
	configPath     string
	format         string
	skipValidation bool

	numCruises              int
	includeBreaks           bool
	includeOfferStage       bool
	includeEarlyTermination bool
	includeAdvancedTraining bool
}

var stagesOpts stagesOptions

var stagesCmd = &cobra.Command{
	Use:   "stages",
	Short: "Expand a simulation config into its stage timeline",
	Long: "Start from a named preset, optionally overlay a YAML config file and flag overrides, " +
		"then print the ordered stage list with expected-value totals.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := resolveConfig(stagesOpts, cmd.Flags().Changed)
		if err != nil {
			logrus.Fatalf("Failed to resolve config: %v", err)
		}
		if !stagesOpts.skipValidation {
			if err := cfg.Validate(); err != nil {
				logrus.Fatalf("Invalid config: %v", err)
			}
		}

		states := sim.CreateStateConfigs(cfg)
		logrus.Infof("Expanded preset %q into %d stages (num_cruises=%d, breaks=%v)",
			stagesOpts.preset, len(states), cfg.NumCruises, cfg.IncludeBreaks)

		report := newStagesReport(stagesOpts.preset, states)
		if err := writeReport(cmd.OutOrStdout(), stagesOpts.format, report); err != nil {
			logrus.Fatalf("Failed to write report: %v", err)
		}
	},
}

// resolveConfig builds the config from preset, overlay file and the flags the
// user explicitly set. changed reports whether a flag was given on the command line.
func resolveConfig(opts stagesOptions, changed func(string) bool) (sim.SimulationConfig, error) {
	cfg, err := sim.Preset(opts.preset)
	if err != nil {
		return sim.SimulationConfig{}, err
	}
	if opts.configPath != "" {
		cfg, err = sim.LoadSimulationConfig(opts.configPath, cfg)
		if err != nil {
			return sim.SimulationConfig{}, err
		}
	}

	// Flags win over the file, but only when set explicitly.
	if changed("num-cruises") {
		cfg.NumCruises = opts.numCruises
	}
	if changed("include-breaks") {
		cfg.IncludeBreaks = opts.includeBreaks
	}
	if changed("include-offer-stage") {
		cfg.IncludeOfferStage = opts.includeOfferStage
	}
	if changed("include-early-termination") {
		cfg.IncludeEarlyTermination = opts.includeEarlyTermination
	}
	if changed("include-advanced-training") {
		cfg.IncludeAdvancedTraining = opts.includeAdvancedTraining
	}
	return cfg, nil
}

func init() {
	stagesCmd.Flags().StringVar(&stagesOpts.preset, "preset", "default", "Preset name (default, baseline, optimistic, pessimistic)")
	stagesCmd.Flags().StringVar(&stagesOpts.configPath, "config", "", "Path to a YAML file overlaid on the preset")
	stagesCmd.Flags().StringVar(&stagesOpts.format, "format", "table", "Output format (table, yaml, json)")
	stagesCmd.Flags().BoolVar(&stagesOpts.skipValidation, "skip-validation", false, "Expand the config without range checks")

	stagesCmd.Flags().IntVar(&stagesOpts.numCruises, "num-cruises", 0, "Cruises per provider")
	stagesCmd.Flags().BoolVar(&stagesOpts.includeBreaks, "include-breaks", false, "Insert breaks between cruises")
	stagesCmd.Flags().BoolVar(&stagesOpts.includeOfferStage, "include-offer-stage", false, "Include the offer stage")
	stagesCmd.Flags().BoolVar(&stagesOpts.includeEarlyTermination, "include-early-termination", false, "Include the early termination stage")
	stagesCmd.Flags().BoolVar(&stagesOpts.includeAdvancedTraining, "include-advanced-training", false, "Include the advanced training stage")

	rootCmd.AddCommand(stagesCmd)
}
