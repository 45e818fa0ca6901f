package career

import "career-engine/internal/model"

// Plan is the traversal layout of a state list: a shared prefix walked by
// every trial, then exactly one provider branch.
type Plan struct {
	prefix []int
	// branchPoint is the state index whose completion draws the provider, or
	// -1 when the draw happens once the prefix is exhausted.
	branchPoint int
	providers   []model.Provider
	branches    map[model.Provider][]int
}

// NewPlan splits states into the shared prefix (leading states without a
// provider) and per-provider routes. A route holds the provider's own states
// and any shared states after the prefix, in list order; other providers'
// states never appear on it.
func NewPlan(states []model.StateConfig) *Plan {
	p := &Plan{
		branchPoint: -1,
		branches:    make(map[model.Provider][]int),
	}

	i := 0
	for ; i < len(states) && states[i].Provider == model.ProviderNone; i++ {
		p.prefix = append(p.prefix, i)
		if states[i].Kind == model.KindPlacement && p.branchPoint < 0 {
			p.branchPoint = i
		}
	}

	rest := states[i:]
	for _, s := range rest {
		if s.Provider == model.ProviderNone {
			continue
		}
		if _, ok := p.branches[s.Provider]; !ok {
			p.providers = append(p.providers, s.Provider)
			p.branches[s.Provider] = nil
		}
	}
	for j, s := range rest {
		idx := i + j
		if s.Provider == model.ProviderNone {
			for _, provider := range p.providers {
				p.branches[provider] = append(p.branches[provider], idx)
			}
			continue
		}
		p.branches[s.Provider] = append(p.branches[s.Provider], idx)
	}

	if len(p.providers) == 0 {
		// No branching: the whole list is one route.
		p.branchPoint = -1
		for j := range rest {
			p.prefix = append(p.prefix, i+j)
		}
	}
	return p
}

func (p *Plan) Prefix() []int {
	return p.prefix
}

// BranchPoint returns the index of the placement state that draws the
// provider, or -1.
func (p *Plan) BranchPoint() int {
	return p.branchPoint
}

// Providers lists the branches in first-seen order.
func (p *Plan) Providers() []model.Provider {
	return p.providers
}

// Branch returns the state indices walked after the prefix for provider.
func (p *Plan) Branch(provider model.Provider) []int {
	return p.branches[provider]
}

func (p *Plan) HasBranches() bool {
	return len(p.providers) > 0
}
