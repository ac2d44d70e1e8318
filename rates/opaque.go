package rates

import "github.com/zefrenchwan/nrm-simulator/maths"

// Opaque is a constant-rate channel: its intensity is an arbitrary closure
// over (u, p, t), not a declarative stoichiometry. "Constant-rate" means the
// rate does not change between jump events as a stochastic functional of
// internal time; it may still depend on u, p, t evaluated at event boundaries.
type Opaque[T maths.FloatNumber] struct {
	// Id is this channel's id, in [M_ma+1, M]
	Id int
	// RateFn evaluates the channel's intensity
	RateFn func(u State, p any, t T) (T, error)
	// AffectFn mutates u when this channel fires
	AffectFn Affect[T]
}

// Evaluate runs RateFn and rejects a negative or NaN result
func (o Opaque[T]) Evaluate(u State, p any, t T) (T, error) {
	rate, err := o.RateFn(u, p, t)
	if err != nil {
		return 0, err
	}

	if err := checkRate(o.Id, rate); err != nil {
		return 0, err
	}

	return rate, nil
}

// Affect returns the registered affect
func (o Opaque[T]) Affect() Affect[T] {
	return o.AffectFn
}
