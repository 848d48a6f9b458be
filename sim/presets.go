package sim

import (
	"fmt"
	"sort"
	"strings"
)

// Built-in scenario presets. Each returns a fresh, fully populated
// SimulationConfig, so callers may tweak the copy without affecting others.

// DefaultConfig returns the moderate-assumption scenario.
func DefaultConfig() SimulationConfig {
	return SimulationConfig{
		NumStudents: 100,

		BasicTrainingCost:        1000,
		BasicTrainingDropoutRate: 0.2,
		BasicTrainingDuration:    3,

		IncludeOfferStage:  true,
		NoOfferRate:        0.15,
		OfferStageDuration: 2,

		IncludeEarlyTermination:  false,
		EarlyTerminationRate:     0,
		EarlyTerminationDuration: 0,

		IncludeAdvancedTraining:     false,
		AdvancedTrainingCost:        500,
		AdvancedTrainingDropoutRate: 0.15,
		AdvancedTrainingDuration:    3,

		DisneyAllocationPct: 30.0,
		CostaAllocationPct:  70.0,

		DisneyFirstCruiseSalary:  900,
		DisneySecondCruiseSalary: 1200,
		DisneyThirdCruiseSalary:  1500, // monthly tier; the 61000 quoted with the first two tiers is not a monthly figure
		DisneyCruiseDuration:     6,
		DisneyCruiseDropoutRate:  0.05,
		DisneySalaryVariation:    5.0,
		DisneyPaymentFraction:    0.14,

		CostaFirstCruiseSalary:  800,
		CostaSecondCruiseSalary: 1000,
		CostaThirdCruiseSalary:  1200,
		CostaCruiseDuration:     8,
		CostaCruiseDropoutRate:  0.05,
		CostaSalaryVariation:    5.0,
		CostaPaymentFraction:    0.14,

		IncludeBreaks:    true,
		BreakDuration:    1,
		BreakDropoutRate: 0.1,

		NumCruises: 3,
	}
}

// BaselineConfig returns the reference scenario used for comparisons.
func BaselineConfig() SimulationConfig {
	return SimulationConfig{
		NumStudents: 100,

		BasicTrainingCost:        1000,
		BasicTrainingDropoutRate: 0.15,
		BasicTrainingDuration:    3,

		IncludeOfferStage:  true,
		NoOfferRate:        0.15,
		OfferStageDuration: 2,

		IncludeEarlyTermination:  false,
		EarlyTerminationRate:     0,
		EarlyTerminationDuration: 0,

		IncludeAdvancedTraining:     false,
		AdvancedTrainingCost:        500,
		AdvancedTrainingDropoutRate: 0.15,
		AdvancedTrainingDuration:    3,

		DisneyAllocationPct: 30.0,
		CostaAllocationPct:  70.0,

		DisneyFirstCruiseSalary:  1000,
		DisneySecondCruiseSalary: 1300,
		DisneyThirdCruiseSalary:  1600,
		DisneyCruiseDuration:     6,
		DisneyCruiseDropoutRate:  0.04,
		DisneySalaryVariation:    6.0,
		DisneyPaymentFraction:    0.14,

		CostaFirstCruiseSalary:  850,
		CostaSecondCruiseSalary: 1050,
		CostaThirdCruiseSalary:  1250,
		CostaCruiseDuration:     8,
		CostaCruiseDropoutRate:  0.04,
		CostaSalaryVariation:    6.0,
		CostaPaymentFraction:    0.14,

		IncludeBreaks:    true,
		BreakDuration:    1,
		BreakDropoutRate: 0.08,

		NumCruises: 3,
	}
}

// OptimisticConfig returns a scenario with lower dropout, higher salaries and more cruises.
func OptimisticConfig() SimulationConfig {
	return SimulationConfig{
		NumStudents: 100,

		BasicTrainingCost:        1000,
		BasicTrainingDropoutRate: 0.1,
		BasicTrainingDuration:    3,

		IncludeOfferStage:  true,
		NoOfferRate:        0.1,
		OfferStageDuration: 2,

		IncludeEarlyTermination:  false,
		EarlyTerminationRate:     0,
		EarlyTerminationDuration: 0,

		IncludeAdvancedTraining:     false,
		AdvancedTrainingCost:        500,
		AdvancedTrainingDropoutRate: 0.08,
		AdvancedTrainingDuration:    3,

		DisneyAllocationPct: 30.0,
		CostaAllocationPct:  70.0,

		DisneyFirstCruiseSalary:  1100,
		DisneySecondCruiseSalary: 1450,
		DisneyThirdCruiseSalary:  1800,
		DisneyCruiseDuration:     6,
		DisneyCruiseDropoutRate:  0.02,
		DisneySalaryVariation:    4.0,
		DisneyPaymentFraction:    0.15,

		CostaFirstCruiseSalary:  950,
		CostaSecondCruiseSalary: 1150,
		CostaThirdCruiseSalary:  1400,
		CostaCruiseDuration:     8,
		CostaCruiseDropoutRate:  0.02,
		CostaSalaryVariation:    4.0,
		CostaPaymentFraction:    0.15,

		IncludeBreaks:    true,
		BreakDuration:    1,
		BreakDropoutRate: 0.05,

		NumCruises: 4,
	}
}

// PessimisticConfig returns a scenario with higher dropout, lower salaries and fewer cruises.
func PessimisticConfig() SimulationConfig {
	return SimulationConfig{
		NumStudents: 100,

		BasicTrainingCost:        1000,
		BasicTrainingDropoutRate: 0.25,
		BasicTrainingDuration:    3,

		IncludeOfferStage:  true,
		NoOfferRate:        0.2,
		OfferStageDuration: 2,

		IncludeEarlyTermination:  false,
		EarlyTerminationRate:     0,
		EarlyTerminationDuration: 0,

		IncludeAdvancedTraining:     false,
		AdvancedTrainingCost:        500,
		AdvancedTrainingDropoutRate: 0.2,
		AdvancedTrainingDuration:    3,

		DisneyAllocationPct: 30.0,
		CostaAllocationPct:  70.0,

		DisneyFirstCruiseSalary:  850,
		DisneySecondCruiseSalary: 1100,
		DisneyThirdCruiseSalary:  1300,
		DisneyCruiseDuration:     6,
		DisneyCruiseDropoutRate:  0.08,
		DisneySalaryVariation:    8.0,
		DisneyPaymentFraction:    0.12,

		CostaFirstCruiseSalary:  750,
		CostaSecondCruiseSalary: 900,
		CostaThirdCruiseSalary:  1050,
		CostaCruiseDuration:     8,
		CostaCruiseDropoutRate:  0.08,
		CostaSalaryVariation:    8.0,
		CostaPaymentFraction:    0.12,

		IncludeBreaks:    true,
		BreakDuration:    2,
		BreakDropoutRate: 0.15,

		NumCruises: 2,
	}
}

type presetEntry struct {
	ctor        func() SimulationConfig
	description string
}

var presets = map[string]presetEntry{
	"default":     {DefaultConfig, "Moderate assumptions used when no scenario is chosen."},
	"baseline":    {BaselineConfig, "Moderate assumptions about cruise career progression."},
	"optimistic":  {OptimisticConfig, "Favorable conditions with higher salaries and lower dropout rates."},
	"pessimistic": {PessimisticConfig, "Challenging conditions with lower salaries and higher dropout rates."},
}

// PresetNames returns the registered preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Preset returns a fresh copy of the named preset. Lookup is case-insensitive.
func Preset(name string) (SimulationConfig, error) {
	entry, ok := presets[strings.ToLower(name)]
	if !ok {
		return SimulationConfig{}, fmt.Errorf("unknown preset %q; valid: %s", name, strings.Join(PresetNames(), ", "))
	}
	return entry.ctor(), nil
}

// PresetDescription returns the one-line description of the named preset.
func PresetDescription(name string) (string, error) {
	entry, ok := presets[strings.ToLower(name)]
	if !ok {
		return "", fmt.Errorf("unknown preset %q; valid: %s", name, strings.Join(PresetNames(), ", "))
	}
	return entry.description, nil
}
