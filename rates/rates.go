// Package rates evaluates channel intensities and carries the affect
// functions that mutate state when a channel fires.
package rates

import (
	"fmt"

	"github.com/zefrenchwan/nrm-simulator/maths"
)

// State is the species-count vector a channel reads and an affect mutates.
// It is opaque to the aggregator: the aggregator only ever passes it through.
type State []float64

// Channel is the two-variant sum type the Design Notes call for: a mass-action
// channel with declarative stoichiometry, or an opaque constant-rate channel
// backed by a user closure. Both expose the same evaluation/affect surface so
// the aggregator can iterate all M channels uniformly, dispatching by variant.
type Channel[T maths.FloatNumber] interface {
	// Evaluate returns the channel's current intensity given (u, p, t).
	Evaluate(u State, p any, t T) (T, error)
	// Affect returns the action to run on u when this channel fires.
	Affect() Affect[T]
}

// checkRate rejects negative or NaN rates, raising InvalidRateKind.
func checkRate[T maths.FloatNumber](channel int, rate T) error {
	if rate != rate {
		return InvalidRateKind{Channel: channel, Rate: fmt.Sprintf("%v", rate)}
	}

	if rate < 0 {
		return InvalidRateKind{Channel: channel, Rate: fmt.Sprintf("%v", rate)}
	}

	return nil
}
