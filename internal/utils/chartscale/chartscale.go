// Package chartscale computes y-axis domains and tick sets for the net
// worth and stacked category charts. Both policies are pure functions of
// the aggregated values and are safe on empty input.
package chartscale

import "math"

// Scale is a y-axis domain plus the ordered ticks spanning it. The first
// and last tick always equal the domain bounds.
type Scale struct {
	Min   float64   `json:"min"`
	Max   float64   `json:"max"`
	Ticks []float64 `json:"ticks"`
}

const (
	// Net-worth axis convention: the axis starts at a fixed floor and
	// steps in half-million increments regardless of the data.
	netWorthFloor = 2_000_000
	netWorthStep  = 500_000

	stackedStep = 500_000
	headroom    = 0.05
)

// NetWorth computes the axis for the net-worth line chart. The top tick is
// the maximum observed value plus 5% headroom, rounded up to the next step
// multiple; the floor is fixed. With no values a two-tick placeholder range
// is returned.
func NetWorth(values []float64) Scale {
	if len(values) == 0 {
		return Scale{
			Min:   netWorthFloor,
			Max:   netWorthFloor + netWorthStep,
			Ticks: []float64{netWorthFloor, netWorthFloor + netWorthStep},
		}
	}

	maxV := values[0]
	for _, v := range values[1:] {
		if v > maxV {
			maxV = v
		}
	}

	top := math.Ceil(maxV*(1+headroom)/netWorthStep) * netWorthStep
	if top <= netWorthFloor {
		top = netWorthFloor + netWorthStep
	}
	return Scale{Min: netWorthFloor, Max: top, Ticks: ticksBetween(netWorthFloor, top, netWorthStep)}
}

// Stacked computes the axis for the stacked category chart from the per-date
// positive (asset) totals and negative (negated liability) totals. The
// domain always includes zero so the chart keeps a visible baseline, and
// both ends are rounded outward to the nearest step multiple.
func Stacked(positives, negatives []float64) Scale {
	all := make([]float64, 0, len(positives)+len(negatives))
	all = append(all, positives...)
	all = append(all, negatives...)
	if len(all) == 0 {
		return Scale{Min: -stackedStep, Max: stackedStep, Ticks: []float64{-stackedStep, 0, stackedStep}}
	}

	minV, maxV := all[0], all[0]
	for _, v := range all[1:] {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}

	if minV == maxV {
		spread := math.Abs(minV)
		if spread == 0 {
			spread = 1
		}
		minV -= spread
		maxV += spread
	}

	minV -= math.Abs(minV) * headroom
	maxV += math.Abs(maxV) * headroom

	if minV > 0 {
		minV = 0
	}
	if maxV < 0 {
		maxV = 0
	}

	lo := math.Floor(minV/stackedStep) * stackedStep
	hi := math.Ceil(maxV/stackedStep) * stackedStep
	if lo == hi {
		hi = lo + stackedStep
	}
	return Scale{Min: lo, Max: hi, Ticks: ticksBetween(lo, hi, stackedStep)}
}

func ticksBetween(lo, hi, step float64) []float64 {
	var ticks []float64
	for v := lo; v <= hi; v += step {
		ticks = append(ticks, v)
	}
	// Guard against float drift dropping the final tick.
	if len(ticks) == 0 || ticks[len(ticks)-1] != hi {
		ticks = append(ticks, hi)
	}
	return ticks
}
