package rates

import "github.com/zefrenchwan/nrm-simulator/maths"

// Integrator is the opaque carrier an Affect may mutate. The aggregator never
// inspects it beyond reading EndTime once, at initialization.
type Integrator[T maths.FloatNumber] interface {
	// EndTime returns the simulated time the host intends to stop at
	EndTime() T
}

// Affect deterministically mutates the state vector when its channel fires,
// per §4.A's affect!(u, integrator). Adapted from the teacher's commons.Action
// (Execute(Parameters) error): a channel fires exactly one affect, never a
// batch, so there is no counterpart to the teacher's Actions grouping type.
type Affect[T maths.FloatNumber] interface {
	// Execute mutates u, given the integrator handle for this jump
	Execute(u State, integrator Integrator[T]) error
}

// AffectFunc adapts a plain function to Affect, same decorator idiom the
// teacher used for NewEventObserver/NewEventProcessor.
type AffectFunc[T maths.FloatNumber] func(u State, integrator Integrator[T]) error

// Execute calls the decorated function
func (f AffectFunc[T]) Execute(u State, integrator Integrator[T]) error {
	if f == nil {
		return nil
	}

	return f(u, integrator)
}
