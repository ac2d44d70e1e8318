package aggregator_test

import "github.com/zefrenchwan/nrm-simulator/rates"

// birthDeath builds the two-channel system of property 6: a zero-order birth
// channel (rate lambda) and a first-order death channel (rate mu*u).
func birthDeath(lambda, mu float64) []rates.MassAction[float64] {
	birth := rates.MassAction[float64]{
		Id: 1, RateConstant: lambda,
		Reactants: map[int]int{},
		NetChange: map[int]int{1: 1},
		AffectFn:  increment(1, 1),
	}

	death := rates.MassAction[float64]{
		Id: 2, RateConstant: mu,
		Reactants: map[int]int{1: 1},
		NetChange: map[int]int{1: -1},
		AffectFn:  decrement(1, 1),
	}

	return []rates.MassAction[float64]{birth, death}
}

// sequenceSource is a deterministic rng.Source test double: it replays a
// fixed sequence of "Exp(1)" draws, so scenario tests can verify the exact
// arithmetic of the scheduling/rescaling formulas without depending on a
// real distribution's internal draw sequence.
type sequenceSource struct {
	values []float64
	pos    int
}

func (s *sequenceSource) RandExp() float64 {
	v := s.values[s.pos]
	s.pos++
	return v
}

// stubIntegrator is the simplest host integrator handle: the core only ever
// reads EndTime once, at Initialize.
type stubIntegrator struct {
	endTime float64
}

func (s stubIntegrator) EndTime() float64 { return s.endTime }

// decrement builds an affect that subtracts delta from u[species-1].
func decrement(species int, delta float64) rates.Affect[float64] {
	return rates.AffectFunc[float64](func(u rates.State, _ rates.Integrator[float64]) error {
		u[species-1] -= delta
		return nil
	})
}

// increment builds an affect that adds delta to u[species-1].
func increment(species int, delta float64) rates.Affect[float64] {
	return rates.AffectFunc[float64](func(u rates.State, _ rates.Integrator[float64]) error {
		u[species-1] += delta
		return nil
	})
}

// combine runs a sequence of affects against the same jump.
func combine(affects ...rates.Affect[float64]) rates.Affect[float64] {
	return rates.AffectFunc[float64](func(u rates.State, integrator rates.Integrator[float64]) error {
		for _, a := range affects {
			if err := a.Execute(u, integrator); err != nil {
				return err
			}
		}

		return nil
	})
}
