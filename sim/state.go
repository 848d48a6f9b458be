package sim

// StageKind classifies a stage so consumers do not have to parse display names.
type StageKind string

const (
	StageTraining         StageKind = "training"
	StageOffer            StageKind = "offer"
	StageEarlyTermination StageKind = "early_termination"
	StageAdvancedTraining StageKind = "advanced_training"
	StageWork             StageKind = "work"
	StageBreak            StageKind = "break"
)

// StateConfig describes one stage of a simulated career timeline.
// Values are produced fresh by CreateStateConfigs and never shared between calls.
type StateConfig struct {
	Kind               StageKind `yaml:"kind" json:"kind"`
	TrainingCost       float64   `yaml:"training_cost" json:"training_cost"`               // one-time cost on entry
	DropoutRate        float64   `yaml:"dropout_rate" json:"dropout_rate"`                 // probability of exiting during the stage, [0,1]
	BaseSalary         float64   `yaml:"base_salary" json:"base_salary"`                   // nominal monthly salary, 0 where not applicable
	SalaryIncreasePct  float64   `yaml:"salary_increase_pct" json:"salary_increase_pct"`   // percent, stage-over-stage
	SalaryVariationPct float64   `yaml:"salary_variation_pct" json:"salary_variation_pct"` // percent, ± variation around BaseSalary
	DurationMonths     int       `yaml:"duration_months" json:"duration_months"`
	PaymentFraction    float64   `yaml:"payment_fraction" json:"payment_fraction"` // fraction of salary paid out, [0,1]
	Name               string    `yaml:"name" json:"name"`
	Provider           string    `yaml:"provider,omitempty" json:"provider,omitempty"`
}

// IsWork reports whether the stage is a provider work stage.
func (s StateConfig) IsWork() bool { return s.Kind == StageWork }

// IsBreak reports whether the stage is a break between two work stages.
func (s StateConfig) IsBreak() bool { return s.Kind == StageBreak }
