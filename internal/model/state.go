package model

import "fmt"

// StateKind classifies a state independently of its display name.
type StateKind int

const (
	KindTraining StateKind = iota
	KindOfferStage
	KindPlacement
	KindEarlyTermination
	KindCruiseLeg
	KindBreak
)

var kindNames = map[StateKind]string{
	KindTraining:         "training",
	KindOfferStage:       "offer_stage",
	KindPlacement:        "placement",
	KindEarlyTermination: "early_termination",
	KindCruiseLeg:        "cruise_leg",
	KindBreak:            "break",
}

func (k StateKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Paying reports whether a state of this kind earns a salary and returns payments.
func (k StateKind) Paying() bool {
	return k == KindCruiseLeg
}

func (k StateKind) MarshalText() ([]byte, error) {
	if _, ok := kindNames[k]; !ok {
		return nil, fmt.Errorf("unknown state kind %d", int(k))
	}
	return []byte(k.String()), nil
}

func (k *StateKind) UnmarshalText(text []byte) error {
	for kind, name := range kindNames {
		if name == string(text) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown state kind %q", string(text))
}

// Provider identifies an employer branch. The empty value marks a shared state.
type Provider string

const (
	ProviderNone   Provider = ""
	ProviderDisney Provider = "Disney"
	ProviderCosta  Provider = "Costa"
)

// Providers returns the closed set of branches in canonical order.
func Providers() []Provider {
	return []Provider{ProviderDisney, ProviderCosta}
}

type StateConfig struct {
	Kind               StateKind `json:"kind" yaml:"kind"`
	Name               string    `json:"name" yaml:"name"`
	Provider           Provider  `json:"provider,omitempty" yaml:"provider,omitempty"`
	CruiseNumber       int       `json:"cruise_number,omitempty" yaml:"cruise_number,omitempty"`
	Cost               float64   `json:"cost" yaml:"cost"`
	DropoutProbability float64   `json:"dropout_probability" yaml:"dropout_probability"`
	BaseSalary         float64   `json:"base_salary" yaml:"base_salary"`
	SalaryIncreasePct  float64   `json:"salary_increase_pct" yaml:"salary_increase_pct"`
	// SalaryFromPrevious grows the previous paying state's salary by
	// SalaryIncreasePct instead of sampling around BaseSalary.
	SalaryFromPrevious bool      `json:"salary_from_previous,omitempty" yaml:"salary_from_previous,omitempty"`
	SalaryVariationPct float64   `json:"salary_variation_pct" yaml:"salary_variation_pct"`
	DurationMonths     int       `json:"duration_months" yaml:"duration_months"`
	PaymentFraction    float64   `json:"payment_fraction" yaml:"payment_fraction"`
}

// Validate checks the value ranges of a single state. The index is only used
// to name the offending field.
func (s StateConfig) Validate(index int) error {
	field := func(name string) string {
		return fmt.Sprintf("states[%d].%s", index, name)
	}
	switch {
	case s.Cost < 0:
		return &ErrInvalidArgument{Name: field("cost"), Value: s.Cost, Message: "must be non-negative"}
	case s.DropoutProbability < 0 || s.DropoutProbability > 1:
		return &ErrInvalidArgument{Name: field("dropout_probability"), Value: s.DropoutProbability, Message: "must be within [0, 1]"}
	case s.BaseSalary < 0:
		return &ErrInvalidArgument{Name: field("base_salary"), Value: s.BaseSalary, Message: "must be non-negative"}
	case s.DurationMonths < 1:
		return &ErrInvalidArgument{Name: field("duration_months"), Value: s.DurationMonths, Message: "must be at least 1"}
	case s.PaymentFraction < 0 || s.PaymentFraction > 1:
		return &ErrInvalidArgument{Name: field("payment_fraction"), Value: s.PaymentFraction, Message: "must be within [0, 1]"}
	}
	return nil
}
