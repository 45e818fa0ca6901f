package model

// Salary models supported by the scenario builder.
const (
	SalaryModelLadder   = "ladder"
	SalaryModelIncrease = "increase"
)

// ScenarioConfig holds the user-level parameters of a simulation. It is
// expanded into a concrete state sequence by scenario.Build.
type ScenarioConfig struct {
	NumStudents int    `json:"num_students" yaml:"num_students"`
	RandomSeed  *int64 `json:"random_seed,omitempty" yaml:"random_seed,omitempty"`

	BasicTrainingCost        float64 `json:"basic_training_cost" yaml:"basic_training_cost"`
	BasicTrainingDropoutRate float64 `json:"basic_training_dropout_rate" yaml:"basic_training_dropout_rate"`
	BasicTrainingDuration    int     `json:"basic_training_duration" yaml:"basic_training_duration"`

	IncludeOfferStage  bool    `json:"include_offer_stage" yaml:"include_offer_stage"`
	OfferStageCost     float64 `json:"offer_stage_cost" yaml:"offer_stage_cost"`
	NoOfferRate        float64 `json:"no_offer_rate" yaml:"no_offer_rate"`
	OfferStageDuration int     `json:"offer_stage_duration" yaml:"offer_stage_duration"`

	// Advanced training is the "Transportation and placement" state, where
	// the provider branch is drawn.
	IncludeAdvancedTraining     bool    `json:"include_advanced_training" yaml:"include_advanced_training"`
	AdvancedTrainingCost        float64 `json:"advanced_training_cost" yaml:"advanced_training_cost"`
	AdvancedTrainingDropoutRate float64 `json:"advanced_training_dropout_rate" yaml:"advanced_training_dropout_rate"`
	AdvancedTrainingDuration    int     `json:"advanced_training_duration" yaml:"advanced_training_duration"`

	IncludeEarlyTermination  bool    `json:"include_early_termination" yaml:"include_early_termination"`
	EarlyTerminationCost     float64 `json:"early_termination_cost" yaml:"early_termination_cost"`
	EarlyTerminationRate     float64 `json:"early_termination_rate" yaml:"early_termination_rate"`
	EarlyTerminationDuration int     `json:"early_termination_duration" yaml:"early_termination_duration"`

	IncludeBreaks    bool    `json:"include_breaks" yaml:"include_breaks"`
	BreakDuration    int     `json:"break_duration" yaml:"break_duration"`
	BreakDropoutRate float64 `json:"break_dropout_rate" yaml:"break_dropout_rate"`

	NumCruises int `json:"num_cruises" yaml:"num_cruises"`

	SalaryModel                  string  `json:"salary_model" yaml:"salary_model"`
	SubsequentSalaryIncreasePct  float64 `json:"subsequent_salary_increase_pct" yaml:"subsequent_salary_increase_pct"`
	SubsequentSalaryVariationPct float64 `json:"subsequent_salary_variation_pct" yaml:"subsequent_salary_variation_pct"`

	DisneyAllocationPct     float64   `json:"disney_allocation_pct" yaml:"disney_allocation_pct"`
	DisneySalaries          []float64 `json:"disney_salaries" yaml:"disney_salaries"`
	DisneyCruiseDropoutRate float64   `json:"disney_cruise_dropout_rate" yaml:"disney_cruise_dropout_rate"`
	DisneyCruiseDuration    int       `json:"disney_cruise_duration" yaml:"disney_cruise_duration"`
	DisneySalaryVariation   float64   `json:"disney_salary_variation_pct" yaml:"disney_salary_variation_pct"`
	DisneyPaymentFraction   float64   `json:"disney_payment_fraction" yaml:"disney_payment_fraction"`

	CostaAllocationPct     float64   `json:"costa_allocation_pct" yaml:"costa_allocation_pct"`
	CostaSalaries          []float64 `json:"costa_salaries" yaml:"costa_salaries"`
	CostaCruiseDropoutRate float64   `json:"costa_cruise_dropout_rate" yaml:"costa_cruise_dropout_rate"`
	CostaCruiseDuration    int       `json:"costa_cruise_duration" yaml:"costa_cruise_duration"`
	CostaSalaryVariation   float64   `json:"costa_salary_variation_pct" yaml:"costa_salary_variation_pct"`
	CostaPaymentFraction   float64   `json:"costa_payment_fraction" yaml:"costa_payment_fraction"`
}

// ProviderTerms is the per-provider slice of a scenario.
type ProviderTerms struct {
	Provider          Provider
	AllocationPct     float64
	Salaries          []float64
	CruiseDropoutRate float64
	CruiseDuration    int
	SalaryVariation   float64
	PaymentFraction   float64
}

// ProviderTerms returns the per-provider parameters in canonical provider order.
func (c *ScenarioConfig) ProviderTerms() []ProviderTerms {
	return []ProviderTerms{
		{
			Provider:          ProviderDisney,
			AllocationPct:     c.DisneyAllocationPct,
			Salaries:          c.DisneySalaries,
			CruiseDropoutRate: c.DisneyCruiseDropoutRate,
			CruiseDuration:    c.DisneyCruiseDuration,
			SalaryVariation:   c.DisneySalaryVariation,
			PaymentFraction:   c.DisneyPaymentFraction,
		},
		{
			Provider:          ProviderCosta,
			AllocationPct:     c.CostaAllocationPct,
			Salaries:          c.CostaSalaries,
			CruiseDropoutRate: c.CostaCruiseDropoutRate,
			CruiseDuration:    c.CostaCruiseDuration,
			SalaryVariation:   c.CostaSalaryVariation,
			PaymentFraction:   c.CostaPaymentFraction,
		},
	}
}

// Allocation maps each provider to its configured allocation percentage.
func (c *ScenarioConfig) Allocation() map[Provider]float64 {
	return map[Provider]float64{
		ProviderDisney: c.DisneyAllocationPct,
		ProviderCosta:  c.CostaAllocationPct,
	}
}

// TrialSeed returns the RNG seed of trial i.
func (c *ScenarioConfig) TrialSeed(i int) int64 {
	if c.RandomSeed != nil {
		return *c.RandomSeed + int64(i)
	}
	return int64(i)
}

// Clone returns a deep copy; the salary ladders are not shared.
func (c ScenarioConfig) Clone() ScenarioConfig {
	out := c
	if c.RandomSeed != nil {
		seed := *c.RandomSeed
		out.RandomSeed = &seed
	}
	out.DisneySalaries = append([]float64(nil), c.DisneySalaries...)
	out.CostaSalaries = append([]float64(nil), c.CostaSalaries...)
	return out
}

func DefaultScenario() ScenarioConfig {
	return ScenarioConfig{
		NumStudents: 100,

		BasicTrainingCost:        1500,
		BasicTrainingDropoutRate: 0.10,
		BasicTrainingDuration:    3,

		IncludeOfferStage:  false,
		OfferStageCost:     0,
		NoOfferRate:        0.20,
		OfferStageDuration: 1,

		IncludeAdvancedTraining:     true,
		AdvancedTrainingCost:        500,
		AdvancedTrainingDropoutRate: 0.15,
		AdvancedTrainingDuration:    3,

		IncludeEarlyTermination:  false,
		EarlyTerminationCost:     0,
		EarlyTerminationRate:     0.05,
		EarlyTerminationDuration: 2,

		IncludeBreaks:    true,
		BreakDuration:    2,
		BreakDropoutRate: 0,

		NumCruises: 4,

		SalaryModel:                  SalaryModelLadder,
		SubsequentSalaryIncreasePct:  10,
		SubsequentSalaryVariationPct: 5,

		DisneyAllocationPct:     30,
		DisneySalaries:          []float64{5500, 6000, 6500, 7000, 7500},
		DisneyCruiseDropoutRate: 0.03,
		DisneyCruiseDuration:    7,
		DisneySalaryVariation:   6,
		DisneyPaymentFraction:   0.14,

		CostaAllocationPct:     70,
		CostaSalaries:          []float64{5000, 5300, 5600, 5900, 6200},
		CostaCruiseDropoutRate: 0.03,
		CostaCruiseDuration:    8,
		CostaSalaryVariation:   6,
		CostaPaymentFraction:   0.14,
	}
}
