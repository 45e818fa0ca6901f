package model

// StepOutcome is how a trial left a state it entered.
type StepOutcome string

const (
	StepCompleted StepOutcome = "completed"
	StepDropout   StepOutcome = "dropout"
)

// StepRecord captures one entered state of one trial. Running totals are the
// trial's values after the state was processed.
type StepRecord struct {
	StateIndex      int         `json:"state_index"`
	StateName       string      `json:"state_name"`
	Kind            StateKind   `json:"kind"`
	Provider        Provider    `json:"provider,omitempty"`
	DurationMonths  int         `json:"duration_months"`
	Cost            float64     `json:"cost"`
	Salary          float64     `json:"salary"`
	Payment         float64     `json:"payment"`
	PaymentFraction float64     `json:"payment_fraction"`
	Outcome         StepOutcome `json:"outcome"`
	TotalCost       float64     `json:"total_cost"`
	TotalPayments   float64     `json:"total_payments"`
	NetCashFlow     float64     `json:"net_cash_flow"`
}

// TrialResult is the terminal, read-only record of one simulated individual.
type TrialResult struct {
	Seed             int64        `json:"seed"`
	SelectedProvider Provider     `json:"selected_provider,omitempty"`
	Dropout          bool         `json:"dropout"`
	Completed        bool         `json:"completed"`
	TotalCost        float64      `json:"total_cost"`
	TotalPayments    float64      `json:"total_payments"`
	NetCashFlow      float64      `json:"net_cash_flow"`
	ROI              *float64     `json:"roi"`
	DurationMonths   int          `json:"duration_months"`
	CompletedStates  []int        `json:"completed_states"`
	FinalStateIndex  int          `json:"final_state_index"`
	BreakevenState   *int         `json:"breakeven_state"`
	Steps            []StepRecord `json:"steps"`
	MonthlyCashFlows []float64    `json:"monthly_cash_flows"`
	MonthlyIRR       *float64     `json:"monthly_irr"`
	AnnualIRR        *float64     `json:"annual_irr"`
}

type StateMetrics struct {
	Index                 int       `json:"index"`
	Name                  string    `json:"name"`
	Kind                  StateKind `json:"kind"`
	Provider              Provider  `json:"provider,omitempty"`
	AvgSalary             float64   `json:"avg_salary"`
	AvgPayment            float64   `json:"avg_payment"`
	ExpectedPayment       float64   `json:"expected_payment"`
	EntryCount            int       `json:"entry_count"`
	CompletedCount        int       `json:"completed_count"`
	DropoutCount          int       `json:"dropout_count"`
	SalaryCount           int       `json:"salary_count"`
	ObservedDropoutRate   float64   `json:"observed_dropout_rate"`
	ConfiguredDropoutRate float64   `json:"configured_dropout_rate"`
	TotalCost             float64   `json:"total_cost"`
	TotalPayment          float64   `json:"total_payment"`
}

type ProviderMetrics struct {
	Provider       Provider `json:"provider"`
	Trials         int      `json:"trials"`
	CompletionRate float64  `json:"completion_rate"`
	DropoutRate    float64  `json:"dropout_rate"`
	AvgCost        float64  `json:"avg_cost"`
	AvgPayments    float64  `json:"avg_payments"`
	AvgNetCashFlow float64  `json:"avg_net_cash_flow"`
	AvgROI         *float64 `json:"avg_roi"`
}

// AggregateResult summarises a batch. Rates are percentages; ROI values are
// fractions. Pointer fields are nil when no trial produced a defined value.
type AggregateResult struct {
	NumTrials        int      `json:"num_trials"`
	CompletionRate   float64  `json:"completion_rate"`
	DropoutRate      float64  `json:"dropout_rate"`
	AvgDuration      float64  `json:"avg_duration"`
	AvgStatesVisited float64  `json:"avg_states_visited"`
	AvgTrainingCost  float64  `json:"avg_training_cost"`
	AvgTotalPayments float64  `json:"avg_total_payments"`
	AvgNetCashFlow   float64  `json:"avg_net_cash_flow"`
	AvgROI           *float64 `json:"avg_roi"`
	ROIStd           *float64 `json:"roi_std"`
	ROI10th          *float64 `json:"roi_10th"`
	ROI90th          *float64 `json:"roi_90th"`
	AvgMonthlyIRR    *float64 `json:"avg_monthly_irr"`
	AvgAnnualIRR     *float64 `json:"avg_annual_irr"`
	IRRDefinedTrials int      `json:"irr_defined_trials"`
	BreakevenRate    float64  `json:"breakeven_rate"`
	RepaymentRate    float64  `json:"repayment_rate"`

	PerStateMetrics        []StateMetrics    `json:"per_state_metrics"`
	PerProviderMetrics     []ProviderMetrics `json:"per_provider_metrics"`
	ProviderDistribution   map[Provider]int  `json:"provider_distribution"`
	UnassignedTrials       int               `json:"unassigned_trials"`
	FinalStateDistribution map[int]int       `json:"final_state_distribution"`
}
