package rates

import (
	"fmt"
	"math"

	"github.com/zefrenchwan/nrm-simulator/maths"
)

// MassAction is a declarative channel: intensity is a closed-form polynomial
// of species counts times a rate constant. The combinatoric convention is
// used (Open Question resolved, see DESIGN.md): intensity is
// k * prod(u[s]^nu), not the falling-factorial binomial convention.
type MassAction[T maths.FloatNumber] struct {
	// Id is this channel's id, in [1, M_ma]
	Id int
	// RateConstant is k_i
	RateConstant T
	// Reactants maps species id (1-based, indexes State as species-1) to its
	// multiplicity nu in the rate polynomial
	Reactants map[int]int
	// NetChange maps species id to its net stoichiometric change when this
	// channel fires; used to derive the dependency graph
	// (structures.StoichiometrySource.NetStoichiometryTouches). It does not
	// mutate u: AffectFn is supplied separately and is not built from it
	NetChange map[int]int
	// AffectFn mutates u when this channel fires
	AffectFn Affect[T]
}

// Evaluate computes k_i * prod(u[s]^nu) over the declared reactants.
func (m MassAction[T]) Evaluate(u State, _ any, _ T) (T, error) {
	product := 1.0
	for species, nu := range m.Reactants {
		idx := species - 1
		if idx < 0 || idx >= len(u) {
			return 0, fmt.Errorf("mass-action channel %d references species %d out of range [1,%d]", m.Id, species, len(u))
		}

		product *= math.Pow(u[idx], float64(nu))
	}

	rate := m.RateConstant * T(product)
	if err := checkRate(m.Id, rate); err != nil {
		return 0, err
	}

	return rate, nil
}

// Affect returns the registered affect
func (m MassAction[T]) Affect() Affect[T] {
	return m.AffectFn
}

// Stoichiometry adapts a slice of mass-action channels to
// structures.StoichiometrySource, letting the dependency graph be derived
// without the structures package depending on rates.
type Stoichiometry[T maths.FloatNumber] struct {
	// MassActions are the declarative channels 1..NumMassActionChannels()
	MassActions []MassAction[T]
}

// NumMassActionChannels returns the count of declarative channels
func (s Stoichiometry[T]) NumMassActionChannels() int {
	return len(s.MassActions)
}

// NetStoichiometryTouches returns the species touched by channel's net change
func (s Stoichiometry[T]) NetStoichiometryTouches(channel int) []int {
	for _, ma := range s.MassActions {
		if ma.Id == channel {
			species := make([]int, 0, len(ma.NetChange))
			for sp := range ma.NetChange {
				species = append(species, sp)
			}

			return species
		}
	}

	return nil
}

// Reactants returns the species that determine channel's rate
func (s Stoichiometry[T]) Reactants(channel int) []int {
	for _, ma := range s.MassActions {
		if ma.Id == channel {
			species := make([]int, 0, len(ma.Reactants))
			for sp := range ma.Reactants {
				species = append(species, sp)
			}

			return species
		}
	}

	return nil
}
