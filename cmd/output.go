package cmd

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/inference-sim/cruise-sim/sim"
)

// stageRow is one stage plus the probability of still being active after it.
type stageRow struct {
	sim.StateConfig `yaml:",inline"`
	Survival        float64 `yaml:"survival" json:"survival"`
}

// stagesReport is the document written by `cruise-sim stages`.
type stagesReport struct {
	Preset  string      `yaml:"preset" json:"preset"`
	Stages  []stageRow  `yaml:"stages" json:"stages"`
	Summary sim.Summary `yaml:"summary" json:"summary"`
}

func newStagesReport(preset string, states []sim.StateConfig) stagesReport {
	curve := sim.SurvivalCurve(states)
	rows := make([]stageRow, len(states))
	for i, s := range states {
		rows[i] = stageRow{StateConfig: s, Survival: curve[i]}
	}
	return stagesReport{Preset: preset, Stages: rows, Summary: sim.Summarize(states)}
}

// writeReport renders report to w in the requested format.
func writeReport(w io.Writer, format string, report stagesReport) error {
	switch strings.ToLower(format) {
	case "table", "":
		return writeTable(w, report)
	case "yaml":
		data, err := yaml.Marshal(report)
		if err != nil {
			return fmt.Errorf("YAML marshal failed: %w", err)
		}
		_, err = w.Write(data)
		return err
	case "json":
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("JSON marshal failed: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	default:
		return fmt.Errorf("unknown format %q; valid: table, yaml, json", format)
	}
}

func writeTable(w io.Writer, report stagesReport) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tSTAGE\tKIND\tPROVIDER\tMONTHS\tCOST\tDROPOUT\tSALARY\tVAR%\tPAY\tSURVIVAL")
	for i, r := range report.Stages {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\t%.2f\t%.3f\t%.2f\t%.1f\t%.3f\t%.4f\n",
			i+1, r.Name, r.Kind, r.Provider, r.DurationMonths, r.TrainingCost,
			r.DropoutRate, r.BaseSalary, r.SalaryVariationPct, r.PaymentFraction, r.Survival)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	s := report.Summary
	fmt.Fprintf(w, "\n=== Timeline Summary (%s) ===\n", report.Preset)
	fmt.Fprintf(w, "Stages: %d (work %d, breaks %d)\n", s.Stages, s.WorkStages, s.BreakStages)
	fmt.Fprintf(w, "Total months: %d\n", s.TotalMonths)
	for _, p := range sortedKeys(s.MonthsByProvider) {
		fmt.Fprintf(w, "  %s: %d months, expected payments %.2f\n", p, s.MonthsByProvider[p], s.PaymentsByProvider[p])
	}
	fmt.Fprintf(w, "Completion probability: %.4f\n", s.CompletionProbability)
	fmt.Fprintf(w, "Training cost: %.2f (expected %.2f)\n", s.TotalTrainingCost, s.ExpectedTrainingCost)
	fmt.Fprintf(w, "Expected payments: %.2f\n", s.ExpectedPayments)
	fmt.Fprintf(w, "Expected net cash flow: %.2f\n", s.ExpectedNetCashFlow)
	fmt.Fprintf(w, "ROI: %.1f%%\n", s.ROIPercent)
	fmt.Fprintf(w, "Repayment rate: %.1f%%\n", s.RepaymentRate)
	if s.BreakevenStage != nil {
		fmt.Fprintf(w, "Breakeven stage: %d\n", *s.BreakevenStage)
	} else {
		fmt.Fprintln(w, "Breakeven: not reached")
	}
	if s.AnnualIRR != nil {
		fmt.Fprintf(w, "Annual IRR: %.1f%%\n", *s.AnnualIRR)
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
