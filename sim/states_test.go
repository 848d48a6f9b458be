package sim

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stageNames(states []StateConfig) []string {
	names := make([]string, len(states))
	for i, s := range states {
		names[i] = s.Name
	}
	return names
}

func TestCreateStateConfigs_TwoCruisesWithBreaks(t *testing.T) {
	// GIVEN the default preset with every optional stage off and two cruises
	cfg := DefaultConfig()
	cfg.IncludeOfferStage = false
	cfg.IncludeEarlyTermination = false
	cfg.IncludeAdvancedTraining = false
	cfg.NumCruises = 2
	cfg.IncludeBreaks = true

	// WHEN expanded
	states := CreateStateConfigs(cfg)

	// THEN each provider contributes cruise, break, cruise
	assert.Equal(t, []string{
		"Training",
		"Disney Cruise 1", "Break 1", "Disney Cruise 2",
		"Costa Cruise 1", "Break 1", "Costa Cruise 2",
	}, stageNames(states))
}

func TestCreateStateConfigs_ZeroCruises_OnlyLeadingStages(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NumCruises = 0

	assert.Equal(t, []string{"Training", "Offer Stage"}, stageNames(CreateStateConfigs(cfg)))

	cfg.IncludeOfferStage = false
	assert.Equal(t, []string{"Training"}, stageNames(CreateStateConfigs(cfg)))
}

func TestCreateStateConfigs_NegativeCruises_TreatedAsZero(t *testing.T) {
	cfg := DefaultConfig()
	cfg.IncludeOfferStage = false
	cfg.NumCruises = -2

	assert.Equal(t, []string{"Training"}, stageNames(CreateStateConfigs(cfg)))
}

func TestCreateStateConfigs_SalaryPlateausAtThirdTier(t *testing.T) {
	// GIVEN five cruises with tiers 100/200/300 for both providers
	cfg := DefaultConfig()
	cfg.NumCruises = 5
	cfg.DisneyFirstCruiseSalary, cfg.DisneySecondCruiseSalary, cfg.DisneyThirdCruiseSalary = 100, 200, 300
	cfg.CostaFirstCruiseSalary, cfg.CostaSecondCruiseSalary, cfg.CostaThirdCruiseSalary = 100, 200, 300

	// WHEN expanded
	states := CreateStateConfigs(cfg)

	// THEN cruises 4 and 5 repeat the third tier for each provider independently
	salaries := map[string][]float64{}
	for _, s := range states {
		if s.IsWork() {
			salaries[s.Provider] = append(salaries[s.Provider], s.BaseSalary)
		}
	}
	want := []float64{100, 200, 300, 300, 300}
	assert.Equal(t, want, salaries[DisneyProvider])
	assert.Equal(t, want, salaries[CostaProvider])
}

func TestCreateStateConfigs_ProvidersUseOwnTiers(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NumCruises = 4

	var disney, costa []float64
	for _, s := range CreateStateConfigs(cfg) {
		switch {
		case s.IsWork() && s.Provider == DisneyProvider:
			disney = append(disney, s.BaseSalary)
		case s.IsWork() && s.Provider == CostaProvider:
			costa = append(costa, s.BaseSalary)
		}
	}
	assert.Equal(t, []float64{900, 1200, 1500, 1500}, disney)
	assert.Equal(t, []float64{800, 1000, 1200, 1200}, costa)
}

func TestCreateStateConfigs_StageCountFormula(t *testing.T) {
	for _, offer := range []bool{false, true} {
		for _, early := range []bool{false, true} {
			for _, adv := range []bool{false, true} {
				for _, breaks := range []bool{false, true} {
					for _, n := range []int{0, 1, 2, 3, 7} {
						name := fmt.Sprintf("offer=%v/early=%v/adv=%v/breaks=%v/n=%d", offer, early, adv, breaks, n)
						t.Run(name, func(t *testing.T) {
							cfg := BaselineConfig()
							cfg.IncludeOfferStage = offer
							cfg.IncludeEarlyTermination = early
							cfg.IncludeAdvancedTraining = adv
							cfg.IncludeBreaks = breaks
							cfg.NumCruises = n

							want := 1 + n + n
							for _, on := range []bool{offer, early, adv} {
								if on {
									want++
								}
							}
							if breaks {
								want += 2 * max(n-1, 0)
							}

							states := CreateStateConfigs(cfg)
							assert.Len(t, states, want)
							assert.Equal(t, want, ExpectedStageCount(cfg))
						})
					}
				}
			}
		}
	}
}

func TestCreateStateConfigs_NoTrailingBreak(t *testing.T) {
	for _, breaks := range []bool{false, true} {
		for n := 1; n <= 6; n++ {
			cfg := DefaultConfig()
			cfg.IncludeBreaks = breaks
			cfg.NumCruises = n

			last := map[string]StateConfig{}
			for _, s := range CreateStateConfigs(cfg) {
				if s.Provider == DisneyProvider || s.Provider == CostaProvider {
					last[s.Provider] = s
				}
			}
			for _, p := range []string{DisneyProvider, CostaProvider} {
				assert.True(t, last[p].IsWork(), "breaks=%v n=%d: %s block ends with %q", breaks, n, p, last[p].Name)
				assert.Equal(t, fmt.Sprintf("%s Cruise %d", p, n), last[p].Name)
			}
		}
	}
}

func TestCreateStateConfigs_BreaksDisabled_NoBreakStages(t *testing.T) {
	cfg := OptimisticConfig()
	cfg.IncludeBreaks = false
	cfg.NumCruises = 5

	for _, s := range CreateStateConfigs(cfg) {
		assert.False(t, s.IsBreak(), "unexpected break %q", s.Name)
	}
}

func TestCreateStateConfigs_FixedStageOrder(t *testing.T) {
	// GIVEN every optional stage enabled
	cfg := DefaultConfig()
	cfg.IncludeOfferStage = true
	cfg.IncludeEarlyTermination = true
	cfg.EarlyTerminationRate = 0.05
	cfg.EarlyTerminationDuration = 1
	cfg.IncludeAdvancedTraining = true

	states := CreateStateConfigs(cfg)

	// THEN the leading stages appear in fixed order
	require.GreaterOrEqual(t, len(states), 4)
	assert.Equal(t, []StageKind{StageTraining, StageOffer, StageEarlyTermination, StageAdvancedTraining},
		[]StageKind{states[0].Kind, states[1].Kind, states[2].Kind, states[3].Kind})

	// AND every Disney stage precedes every Costa stage
	lastDisney, firstCosta := -1, len(states)
	for i, s := range states[4:] {
		switch s.Provider {
		case DisneyProvider:
			lastDisney = i
		case CostaProvider:
			firstCosta = min(firstCosta, i)
		default:
			t.Errorf("stage %q after leading stages has provider %q", s.Name, s.Provider)
		}
	}
	assert.Less(t, lastDisney, firstCosta)
}

func TestCreateStateConfigs_LeadingStageFields(t *testing.T) {
	cfg := DefaultConfig()
	cfg.IncludeEarlyTermination = true
	cfg.EarlyTerminationRate = 0.07
	cfg.EarlyTerminationDuration = 2
	cfg.IncludeAdvancedTraining = true

	states := CreateStateConfigs(cfg)
	require.GreaterOrEqual(t, len(states), 4)

	assert.Equal(t, StateConfig{
		Kind: StageTraining, TrainingCost: 1000, DropoutRate: 0.2, DurationMonths: 3,
		PaymentFraction: 1, Name: "Training",
	}, states[0])
	assert.Equal(t, StateConfig{
		Kind: StageOffer, DropoutRate: 0.15, DurationMonths: 2, PaymentFraction: 1,
		Name: "Offer Stage", Provider: "Transportation and placement",
	}, states[1])
	assert.Equal(t, StateConfig{
		Kind: StageEarlyTermination, DropoutRate: 0.07, DurationMonths: 2, PaymentFraction: 1,
		Name: "Early Termination Stage",
	}, states[2])
	assert.Equal(t, StateConfig{
		Kind: StageAdvancedTraining, TrainingCost: 500, DropoutRate: 0.15, DurationMonths: 3,
		PaymentFraction: 1, Name: "Advanced Training",
	}, states[3])
}

func TestCreateStateConfigs_WorkAndBreakFields(t *testing.T) {
	cfg := DefaultConfig()
	cfg.IncludeOfferStage = false
	cfg.NumCruises = 2

	states := CreateStateConfigs(cfg)
	require.Len(t, states, 7)

	assert.Equal(t, StateConfig{
		Kind: StageWork, DropoutRate: 0.05, BaseSalary: 900, SalaryVariationPct: 5.0,
		DurationMonths: 6, PaymentFraction: 0.14, Name: "Disney Cruise 1", Provider: DisneyProvider,
	}, states[1])
	assert.Equal(t, StateConfig{
		Kind: StageBreak, DropoutRate: 0.1, DurationMonths: 1, Name: "Break 1", Provider: DisneyProvider,
	}, states[2])
	assert.Equal(t, StateConfig{
		Kind: StageWork, DropoutRate: 0.05, BaseSalary: 1000, SalaryVariationPct: 5.0,
		DurationMonths: 8, PaymentFraction: 0.14, Name: "Costa Cruise 2", Provider: CostaProvider,
	}, states[6])
}

func TestCreateStateConfigs_Deterministic(t *testing.T) {
	cfg := PessimisticConfig()
	assert.Equal(t, CreateStateConfigs(cfg), CreateStateConfigs(cfg))
}

func TestCreateStateConfigs_FreshValuesAndInputUntouched(t *testing.T) {
	// GIVEN a config and a snapshot of it
	cfg := OptimisticConfig()
	before := cfg

	// WHEN the first result is mutated
	first := CreateStateConfigs(cfg)
	first[0].TrainingCost = -1
	first[len(first)-1].Name = "changed"

	// THEN a second expansion is unaffected and the input is unchanged
	second := CreateStateConfigs(cfg)
	assert.Equal(t, 1000.0, second[0].TrainingCost)
	assert.Equal(t, "Costa Cruise 4", second[len(second)-1].Name)
	assert.Equal(t, before, cfg)
}

func TestCreateStateConfigs_PresetsRespectRanges(t *testing.T) {
	for _, name := range PresetNames() {
		t.Run(name, func(t *testing.T) {
			cfg, err := Preset(name)
			require.NoError(t, err)
			for _, s := range CreateStateConfigs(cfg) {
				assert.GreaterOrEqual(t, s.DurationMonths, 0, s.Name)
				assert.True(t, s.DropoutRate >= 0 && s.DropoutRate <= 1, "%s dropout %v", s.Name, s.DropoutRate)
				assert.True(t, s.PaymentFraction >= 0 && s.PaymentFraction <= 1, "%s payment %v", s.Name, s.PaymentFraction)
			}
		})
	}
}
