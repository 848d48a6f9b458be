package sim

import "math"

// Summary holds deterministic expected-value aggregates of a stage timeline
// for a single student. Dropout is applied at stage entry: the training cost
// of a stage is charged before the dropout draw, and pay accrues only to
// students who stay.
type Summary struct {
	Stages                int                `yaml:"stages" json:"stages"`
	WorkStages            int                `yaml:"work_stages" json:"work_stages"`
	BreakStages           int                `yaml:"break_stages" json:"break_stages"`
	TotalMonths           int                `yaml:"total_months" json:"total_months"`
	MonthsByProvider      map[string]int     `yaml:"months_by_provider,omitempty" json:"months_by_provider,omitempty"`
	TotalTrainingCost     float64            `yaml:"total_training_cost" json:"total_training_cost"`
	CompletionProbability float64            `yaml:"completion_probability" json:"completion_probability"`
	ExpectedTrainingCost  float64            `yaml:"expected_training_cost" json:"expected_training_cost"`
	ExpectedPayments      float64            `yaml:"expected_payments" json:"expected_payments"`
	ExpectedNetCashFlow   float64            `yaml:"expected_net_cash_flow" json:"expected_net_cash_flow"`
	PaymentsByProvider    map[string]float64 `yaml:"payments_by_provider,omitempty" json:"payments_by_provider,omitempty"`

	// Return metrics, all computed from the expected values above.
	ROIPercent     float64  `yaml:"roi_pct" json:"roi_pct"`                 // (payments-cost)/cost*100, 0 when cost is 0
	RepaymentRate  float64  `yaml:"repayment_rate" json:"repayment_rate"`   // payments/cost*100, 0 when cost is 0
	BreakevenStage *int     `yaml:"breakeven_stage" json:"breakeven_stage"` // 1-based; nil = never reached
	AnnualIRR      *float64 `yaml:"annual_irr" json:"annual_irr"`           // percent; nil when cost or months is 0
}

// SurvivalCurve returns, for each stage, the probability that a student is
// still active after that stage's dropout draw.
func SurvivalCurve(states []StateConfig) []float64 {
	curve := make([]float64, len(states))
	alive := 1.0
	for i, s := range states {
		alive *= 1 - s.DropoutRate
		curve[i] = alive
	}
	return curve
}

// Summarize aggregates a stage timeline. Work stages of both providers are
// counted on one timeline, in the order produced by CreateStateConfigs.
func Summarize(states []StateConfig) Summary {
	sum := Summary{
		Stages:             len(states),
		MonthsByProvider:   map[string]int{},
		PaymentsByProvider: map[string]float64{},
	}
	cumulative := make([]float64, len(states)) // expected payments through stage i
	reached := 1.0                             // probability of entering the current stage
	for i, s := range states {
		sum.TotalMonths += s.DurationMonths
		sum.TotalTrainingCost += s.TrainingCost
		sum.ExpectedTrainingCost += reached * s.TrainingCost

		stayed := reached * (1 - s.DropoutRate)
		switch {
		case s.IsWork():
			sum.WorkStages++
			pay := stayed * s.BaseSalary * s.PaymentFraction * float64(s.DurationMonths)
			sum.ExpectedPayments += pay
			sum.PaymentsByProvider[s.Provider] += pay
			sum.MonthsByProvider[s.Provider] += s.DurationMonths
		case s.IsBreak():
			sum.BreakStages++
			sum.MonthsByProvider[s.Provider] += s.DurationMonths
		}
		cumulative[i] = sum.ExpectedPayments
		reached = stayed
	}
	sum.CompletionProbability = reached
	sum.ExpectedNetCashFlow = sum.ExpectedPayments - sum.ExpectedTrainingCost

	// Breakeven compares against the whole expected cost, charged up front.
	for i, paid := range cumulative {
		if paid >= sum.ExpectedTrainingCost {
			stage := i + 1
			sum.BreakevenStage = &stage
			break
		}
	}

	cost := sum.ExpectedTrainingCost
	if cost > 0 {
		sum.ROIPercent = sum.ExpectedNetCashFlow / cost * 100
		sum.RepaymentRate = sum.ExpectedPayments / cost * 100
		if sum.TotalMonths > 0 {
			irr := -100.0
			if sum.ExpectedPayments > 0 {
				years := float64(sum.TotalMonths) / 12
				irr = (math.Pow(sum.ExpectedPayments/cost, 1/years) - 1) * 100
			}
			sum.AnnualIRR = &irr
		}
	}
	return sum
}
