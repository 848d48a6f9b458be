package sim

import "fmt"

// salaryTiers is the number of distinct salary levels per provider; later
// cruises stay at the last tier.
const salaryTiers = 3

// CreateStateConfigs expands cfg into the ordered stage timeline:
// training, the enabled optional stages, all Disney stages, then all Costa stages.
// It does not modify cfg and returns fresh values on every call.
func CreateStateConfigs(cfg SimulationConfig) []StateConfig {
	states := []StateConfig{{
		Kind:            StageTraining,
		TrainingCost:    cfg.BasicTrainingCost,
		DropoutRate:     cfg.BasicTrainingDropoutRate,
		DurationMonths:  cfg.BasicTrainingDuration,
		PaymentFraction: 1,
		Name:            "Training",
	}}

	if cfg.IncludeOfferStage {
		states = append(states, StateConfig{
			Kind:            StageOffer,
			DropoutRate:     cfg.NoOfferRate,
			DurationMonths:  cfg.OfferStageDuration,
			PaymentFraction: 1,
			Name:            "Offer Stage",
			Provider:        "Transportation and placement",
		})
	}

	if cfg.IncludeEarlyTermination {
		states = append(states, StateConfig{
			Kind:            StageEarlyTermination,
			DropoutRate:     cfg.EarlyTerminationRate,
			DurationMonths:  cfg.EarlyTerminationDuration,
			PaymentFraction: 1,
			Name:            "Early Termination Stage",
		})
	}

	if cfg.IncludeAdvancedTraining {
		states = append(states, StateConfig{
			Kind:            StageAdvancedTraining,
			TrainingCost:    cfg.AdvancedTrainingCost,
			DropoutRate:     cfg.AdvancedTrainingDropoutRate,
			DurationMonths:  cfg.AdvancedTrainingDuration,
			PaymentFraction: 1,
			Name:            "Advanced Training",
		})
	}

	for _, p := range cfg.Providers() {
		states = append(states, providerStates(cfg, p)...)
	}
	return states
}

// providerStates emits NumCruises work stages for one provider, with a break
// after every work stage except the last when breaks are enabled.
func providerStates(cfg SimulationConfig, p ProviderParams) []StateConfig {
	if cfg.NumCruises <= 0 {
		return nil
	}
	states := make([]StateConfig, 0, 2*cfg.NumCruises-1)
	for i := 0; i < cfg.NumCruises; i++ {
		states = append(states, StateConfig{
			Kind:               StageWork,
			DropoutRate:        p.DropoutRate,
			BaseSalary:         p.Salaries[min(i, salaryTiers-1)],
			SalaryVariationPct: p.SalaryVariation,
			DurationMonths:     p.DurationMonths,
			PaymentFraction:    p.PaymentFraction,
			Name:               fmt.Sprintf("%s Cruise %d", p.Label, i+1),
			Provider:           p.Label,
		})
		if cfg.IncludeBreaks && i < cfg.NumCruises-1 {
			states = append(states, StateConfig{
				Kind:           StageBreak,
				DropoutRate:    cfg.BreakDropoutRate,
				DurationMonths: cfg.BreakDuration,
				Name:           fmt.Sprintf("Break %d", i+1),
				Provider:       p.Label,
			})
		}
	}
	return states
}

// ExpectedStageCount returns len(CreateStateConfigs(cfg)) without building the slice.
func ExpectedStageCount(cfg SimulationConfig) int {
	n := 1
	for _, on := range []bool{cfg.IncludeOfferStage, cfg.IncludeEarlyTermination, cfg.IncludeAdvancedTraining} {
		if on {
			n++
		}
	}
	if cfg.NumCruises <= 0 {
		return n
	}
	perProvider := cfg.NumCruises
	if cfg.IncludeBreaks {
		perProvider += cfg.NumCruises - 1
	}
	return n + len(cfg.Providers())*perProvider
}
