package sim

import (
	"fmt"
	"math"
)

// Provider labels. Work stages for DisneyProvider always precede CostaProvider.
const (
	DisneyProvider = "Disney"
	CostaProvider  = "Costa"
)

// SimulationConfig holds every scalar parameter of a career simulation.
// Construct it from a preset (DefaultConfig, BaselineConfig, ...) and treat it as
// read-only afterwards. Fraction fields are in [0,1]; fields named *Pct or
// *Variation are percentages in [0,100].
type SimulationConfig struct {
	// Run-level
	NumStudents int    `yaml:"num_students"`
	RandomSeed  *int64 `yaml:"random_seed,omitempty"` // consumed by the sampler, nil = unseeded

	// Basic training
	BasicTrainingCost        float64 `yaml:"basic_training_cost"`
	BasicTrainingDropoutRate float64 `yaml:"basic_training_dropout_rate"`
	BasicTrainingDuration    int     `yaml:"basic_training_duration"`

	// Offer stage
	IncludeOfferStage  bool    `yaml:"include_offer_stage"`
	NoOfferRate        float64 `yaml:"no_offer_rate"`
	OfferStageDuration int     `yaml:"offer_stage_duration"`

	// Early termination
	IncludeEarlyTermination  bool    `yaml:"include_early_termination"`
	EarlyTerminationRate     float64 `yaml:"early_termination_rate"`
	EarlyTerminationDuration int     `yaml:"early_termination_duration"`

	// Advanced training
	IncludeAdvancedTraining     bool    `yaml:"include_advanced_training"`
	AdvancedTrainingCost        float64 `yaml:"advanced_training_cost"`
	AdvancedTrainingDropoutRate float64 `yaml:"advanced_training_dropout_rate"`
	AdvancedTrainingDuration    int     `yaml:"advanced_training_duration"`

	// Provider allocation, informational for the sampler only
	DisneyAllocationPct float64 `yaml:"disney_allocation_pct"`
	CostaAllocationPct  float64 `yaml:"costa_allocation_pct"`

	// Disney cruises
	DisneyFirstCruiseSalary  float64 `yaml:"disney_first_cruise_salary"`
	DisneySecondCruiseSalary float64 `yaml:"disney_second_cruise_salary"`
	DisneyThirdCruiseSalary  float64 `yaml:"disney_third_cruise_salary"`
	DisneyCruiseDuration     int     `yaml:"disney_cruise_duration"`
	DisneyCruiseDropoutRate  float64 `yaml:"disney_cruise_dropout_rate"`
	DisneySalaryVariation    float64 `yaml:"disney_salary_variation"`
	DisneyPaymentFraction    float64 `yaml:"disney_payment_fraction"`

	// Costa cruises
	CostaFirstCruiseSalary  float64 `yaml:"costa_first_cruise_salary"`
	CostaSecondCruiseSalary float64 `yaml:"costa_second_cruise_salary"`
	CostaThirdCruiseSalary  float64 `yaml:"costa_third_cruise_salary"`
	CostaCruiseDuration     int     `yaml:"costa_cruise_duration"`
	CostaCruiseDropoutRate  float64 `yaml:"costa_cruise_dropout_rate"`
	CostaSalaryVariation    float64 `yaml:"costa_salary_variation"`
	CostaPaymentFraction    float64 `yaml:"costa_payment_fraction"`

	// Breaks between cruises
	IncludeBreaks    bool    `yaml:"include_breaks"`
	BreakDuration    int     `yaml:"break_duration"`
	BreakDropoutRate float64 `yaml:"break_dropout_rate"`

	NumCruises int `yaml:"num_cruises"` // work stages per provider
}

// ProviderParams groups the per-provider cruise parameters of a SimulationConfig.
type ProviderParams struct {
	Label           string
	Salaries        [3]float64 // first, second, third-and-later cruise salary
	DurationMonths  int
	DropoutRate     float64
	SalaryVariation float64 // percent
	PaymentFraction float64
}

// Providers returns the provider parameter groups in expansion order.
func (c SimulationConfig) Providers() []ProviderParams {
	return []ProviderParams{
		{
			Label:           DisneyProvider,
			Salaries:        [3]float64{c.DisneyFirstCruiseSalary, c.DisneySecondCruiseSalary, c.DisneyThirdCruiseSalary},
			DurationMonths:  c.DisneyCruiseDuration,
			DropoutRate:     c.DisneyCruiseDropoutRate,
			SalaryVariation: c.DisneySalaryVariation,
			PaymentFraction: c.DisneyPaymentFraction,
		},
		{
			Label:           CostaProvider,
			Salaries:        [3]float64{c.CostaFirstCruiseSalary, c.CostaSecondCruiseSalary, c.CostaThirdCruiseSalary},
			DurationMonths:  c.CostaCruiseDuration,
			DropoutRate:     c.CostaCruiseDropoutRate,
			SalaryVariation: c.CostaSalaryVariation,
			PaymentFraction: c.CostaPaymentFraction,
		},
	}
}

// Validate checks value ranges. CreateStateConfigs does not require it;
// callers loading configs from files should run it before expanding.
func (c SimulationConfig) Validate() error {
	if c.NumStudents <= 0 {
		return fmt.Errorf("num_students must be positive, got %d", c.NumStudents)
	}
	if c.NumCruises < 0 {
		return fmt.Errorf("num_cruises must be non-negative, got %d", c.NumCruises)
	}

	fractions := []struct {
		name string
		val  float64
	}{
		{"basic_training_dropout_rate", c.BasicTrainingDropoutRate},
		{"no_offer_rate", c.NoOfferRate},
		{"early_termination_rate", c.EarlyTerminationRate},
		{"advanced_training_dropout_rate", c.AdvancedTrainingDropoutRate},
		{"disney_cruise_dropout_rate", c.DisneyCruiseDropoutRate},
		{"disney_payment_fraction", c.DisneyPaymentFraction},
		{"costa_cruise_dropout_rate", c.CostaCruiseDropoutRate},
		{"costa_payment_fraction", c.CostaPaymentFraction},
		{"break_dropout_rate", c.BreakDropoutRate},
	}
	for _, f := range fractions {
		if err := validateInRange(f.name, f.val, 0, 1); err != nil {
			return err
		}
	}

	percents := []struct {
		name string
		val  float64
	}{
		{"disney_allocation_pct", c.DisneyAllocationPct},
		{"costa_allocation_pct", c.CostaAllocationPct},
		{"disney_salary_variation", c.DisneySalaryVariation},
		{"costa_salary_variation", c.CostaSalaryVariation},
	}
	for _, p := range percents {
		if err := validateInRange(p.name, p.val, 0, 100); err != nil {
			return err
		}
	}

	amounts := []struct {
		name string
		val  float64
	}{
		{"basic_training_cost", c.BasicTrainingCost},
		{"advanced_training_cost", c.AdvancedTrainingCost},
		{"disney_first_cruise_salary", c.DisneyFirstCruiseSalary},
		{"disney_second_cruise_salary", c.DisneySecondCruiseSalary},
		{"disney_third_cruise_salary", c.DisneyThirdCruiseSalary},
		{"costa_first_cruise_salary", c.CostaFirstCruiseSalary},
		{"costa_second_cruise_salary", c.CostaSecondCruiseSalary},
		{"costa_third_cruise_salary", c.CostaThirdCruiseSalary},
	}
	for _, a := range amounts {
		if err := validateFiniteNonNegative(a.name, a.val); err != nil {
			return err
		}
	}

	durations := []struct {
		name string
		val  int
	}{
		{"basic_training_duration", c.BasicTrainingDuration},
		{"offer_stage_duration", c.OfferStageDuration},
		{"early_termination_duration", c.EarlyTerminationDuration},
		{"advanced_training_duration", c.AdvancedTrainingDuration},
		{"disney_cruise_duration", c.DisneyCruiseDuration},
		{"costa_cruise_duration", c.CostaCruiseDuration},
		{"break_duration", c.BreakDuration},
	}
	for _, d := range durations {
		if d.val < 0 {
			return fmt.Errorf("%s must be non-negative, got %d", d.name, d.val)
		}
	}
	return nil
}

// AllocationTotal returns the summed provider allocation percentage.
func (c SimulationConfig) AllocationTotal() float64 {
	return c.DisneyAllocationPct + c.CostaAllocationPct
}

func validateInRange(name string, val, lo, hi float64) error {
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return fmt.Errorf("%s must be a finite number, got %f", name, val)
	}
	if val < lo || val > hi {
		return fmt.Errorf("%s must be in [%g, %g], got %g", name, lo, hi, val)
	}
	return nil
}

func validateFiniteNonNegative(name string, val float64) error {
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return fmt.Errorf("%s must be a finite number, got %f", name, val)
	}
	if val < 0 {
		return fmt.Errorf("%s must be non-negative, got %g", name, val)
	}
	return nil
}
