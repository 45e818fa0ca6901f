// Package irr finds the internal rate of return of a periodic cash-flow series.
package irr

import "math"

const (
	tolerance     = 1e-10
	maxIterations = 200
	// Rates at or below -1 make the discount factor undefined.
	minRate = -1 + 1e-9
	// Lower edge of the bisection bracket. Over long schedules the discount
	// factors underflow there and the edge is moved towards zero.
	bracketLow = -0.99
)

// NPV discounts flows at the given per-period rate; flow t is discounted by
// (1+rate)^t. Zero flows are skipped, so an underflowed factor only matters
// where money actually moves.
func NPV(rate float64, flows []float64) float64 {
	var npv float64
	factor := 1.0
	for _, cf := range flows {
		if cf != 0 {
			npv += cf / factor
		}
		factor *= 1 + rate
	}
	return npv
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Monthly returns the per-period rate r with NPV(r, flows) == 0. ok is false
// when flows is empty, when every flow has the same sign (or is zero), or
// when no root is found.
func Monthly(flows []float64) (rate float64, ok bool) {
	if !hasSignChange(flows) {
		return 0, false
	}
	fTol := tolerance * math.Max(1, maxAbs(flows))
	if r, ok := newton(flows, 0.01, fTol); ok {
		return r, true
	}
	return bisect(flows, fTol)
}

// Annualize converts a monthly rate to its compounded annual equivalent.
func Annualize(monthly float64) float64 {
	return math.Pow(1+monthly, 12) - 1
}

func maxAbs(flows []float64) float64 {
	var m float64
	for _, cf := range flows {
		m = math.Max(m, math.Abs(cf))
	}
	return m
}

func hasSignChange(flows []float64) bool {
	var pos, neg bool
	for _, cf := range flows {
		switch {
		case cf > 0:
			pos = true
		case cf < 0:
			neg = true
		}
	}
	return pos && neg
}

// derivative is d NPV / d rate.
func derivative(rate float64, flows []float64) float64 {
	var d float64
	for t, cf := range flows {
		if t == 0 || cf == 0 {
			continue
		}
		d -= float64(t) * cf / math.Pow(1+rate, float64(t+1))
	}
	return d
}

func newton(flows []float64, guess, fTol float64) (float64, bool) {
	r := guess
	for i := 0; i < maxIterations; i++ {
		f := NPV(r, flows)
		if math.Abs(f) < fTol {
			return r, true
		}
		d := derivative(r, flows)
		if d == 0 || math.IsNaN(d) || math.IsInf(d, 0) {
			return 0, false
		}
		next := r - f/d
		if math.IsNaN(next) || math.IsInf(next, 0) || next <= minRate {
			return 0, false
		}
		if math.Abs(next-r) < tolerance {
			return next, math.Abs(NPV(next, flows)) < fTol
		}
		r = next
	}
	return 0, false
}

// bisect brackets a root on [lo, hi], starting from [bracketLow, 1]. lo is
// moved towards zero while the NPV there is not finite and hi is doubled until
// the NPV changes sign; the bracket is then halved. A result is only reported
// for a bracketed sign change.
func bisect(flows []float64, fTol float64) (float64, bool) {
	lo, hi := bracketLow, 1.0
	fLo := NPV(lo, flows)
	for !finite(fLo) {
		lo = 2*lo + 1 // doubles the distance from -1
		if lo >= 0 {
			return 0, false
		}
		fLo = NPV(lo, flows)
	}
	if fLo == 0 {
		return lo, true
	}

	fHi := NPV(hi, flows)
	for i := 0; fLo*fHi > 0 || !finite(fHi); i++ {
		if i >= 60 {
			return 0, false
		}
		hi *= 2
		fHi = NPV(hi, flows)
	}
	if fHi == 0 {
		return hi, true
	}

	for i := 0; i < maxIterations; i++ {
		mid := (lo + hi) / 2
		fMid := NPV(mid, flows)
		if !finite(fMid) {
			return 0, false
		}
		if math.Abs(fMid) < fTol || (hi-lo)/2 < tolerance {
			return mid, true
		}
		if fLo*fMid < 0 {
			hi = mid
		} else {
			lo, fLo = mid, fMid
		}
	}
	return 0, false
}
