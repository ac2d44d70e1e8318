package structures

import (
	"fmt"
)

// touches_link is the (unvalued) edge marker used by ChannelDependencyGraph.
// The dependency graph only needs to know "does i depend on j", not a weight,
// but DVGraph is valued, so we fill the link with a constant, same idiom the
// teacher used for its "depends"/"extends" relations.
const touches_link = 0

// MissingDependencyGraph is raised when opaque (constant-rate) channels exist
// and no user-supplied dependency graph was given: the core cannot introspect
// an opaque rate function to discover which species it reads.
type MissingDependencyGraph struct {
	// OpaqueChannel is the id of the first opaque channel found without a graph
	OpaqueChannel int
}

func (e MissingDependencyGraph) Error() string {
	return fmt.Sprintf("channel %d has an opaque rate and no dependency graph was supplied", e.OpaqueChannel)
}

// StoichiometrySource exposes just enough of a mass-action specification to
// derive a dependency graph, without structures depending on the rates package.
type StoichiometrySource interface {
	// NumMassActionChannels returns the number of mass-action channels (1..NumMassActionChannels)
	NumMassActionChannels() int
	// NetStoichiometryTouches returns the species whose count changes when channel fires
	NetStoichiometryTouches(channel int) []int
	// Reactants returns the species that appear as reactants (rate-determining) for channel
	Reactants(channel int) []int
}

// ChannelDependencyGraph is a DVGraph of channel ids, link is "depends on".
// Self-loops are mandatory: a channel always belongs to its own dependency set.
// Unlike the teacher's Dependencies[S], cycles are expected and never rejected:
// reversible reactions routinely make channel i depend on channel j and channel
// j depend on channel i.
type ChannelDependencyGraph struct {
	// edges links a trigger channel to each dependent channel (the one whose
	// rate must be recomputed once the trigger fires)
	edges DVGraph[int, int]
	// numChannels is M, the total channel count
	numChannels int
}

// NewChannelDependencyGraph builds an empty graph over numChannels channels (1..numChannels)
func NewChannelDependencyGraph(numChannels int) ChannelDependencyGraph {
	result := ChannelDependencyGraph{
		edges:       NewDVGraph[int, int](),
		numChannels: numChannels,
	}

	for channel := 1; channel <= numChannels; channel++ {
		result.edges.AddNode(channel)
	}

	return result
}

// AddEdge records that dependent's rate must be recomputed whenever trigger fires.
// It returns an error if either channel id is out of [1,numChannels].
func (g *ChannelDependencyGraph) AddEdge(dependent, trigger int) error {
	if dependent < 1 || dependent > g.numChannels {
		return fmt.Errorf("dependent channel %d out of range [1,%d]", dependent, g.numChannels)
	} else if trigger < 1 || trigger > g.numChannels {
		return fmt.Errorf("trigger channel %d out of range [1,%d]", trigger, g.numChannels)
	}

	g.edges.Link(trigger, dependent, touches_link)
	return nil
}

// EnsureSelfLoops adds i -> i for every channel, idempotently, satisfying invariant 2 of §3.
func (g *ChannelDependencyGraph) EnsureSelfLoops() {
	for channel := 1; channel <= g.numChannels; channel++ {
		g.edges.Link(channel, channel, touches_link)
	}
}

// Dependents returns D(trigger): the channels whose rate must be re-evaluated
// once trigger fires, sorted by ascending channel id so RNG draw order during
// update_dependent_rates is deterministic and reproducible (spec §9).
func (g ChannelDependencyGraph) Dependents(trigger int) []int {
	neighbors, found := g.edges.Neighbors(trigger)
	if !found {
		return nil
	}

	ids := make([]int, 0, len(neighbors))
	for id := range neighbors {
		ids = append(ids, id)
	}

	return SliceReduce(ids)
}

// NewUserSuppliedDependencyGraph wraps a caller-provided D(i) mapping, augmenting it
// with self-loops (idempotent), per §4.B contract: "if the user supplied dep_gr, use
// it verbatim, then add self-loops". Fails if userGraph names a channel id out of
// range: a typo'd or stale id would otherwise silently drop that edge, leaving the
// aggregator unaware a dependent channel exists to recompute.
func NewUserSuppliedDependencyGraph(numChannels int, userGraph map[int][]int) (ChannelDependencyGraph, error) {
	result := NewChannelDependencyGraph(numChannels)
	for trigger, dependents := range userGraph {
		for _, dependent := range dependents {
			if err := result.AddEdge(dependent, trigger); err != nil {
				return ChannelDependencyGraph{}, err
			}
		}
	}

	result.EnsureSelfLoops()
	return result, nil
}

// DeriveFromMassAction builds D(i) from stoichiometry for a system with no opaque
// channels: j in D(i) iff i's net stoichiometry touches a species that is a reactant
// of j. Fails with MissingDependencyGraph if numChannels exceeds the mass-action count
// (meaning opaque channels exist, and the core cannot introspect their rate functions).
func DeriveFromMassAction(numChannels int, source StoichiometrySource) (ChannelDependencyGraph, error) {
	massActionCount := source.NumMassActionChannels()
	if numChannels > massActionCount {
		return ChannelDependencyGraph{}, MissingDependencyGraph{OpaqueChannel: massActionCount + 1}
	}

	result := NewChannelDependencyGraph(numChannels)

	reactantsByChannel := make(map[int][]int, numChannels)
	for channel := 1; channel <= numChannels; channel++ {
		reactantsByChannel[channel] = source.Reactants(channel)
	}

	for i := 1; i <= numChannels; i++ {
		touched := source.NetStoichiometryTouches(i)
		touchedSet := make(map[int]bool, len(touched))
		for _, species := range touched {
			touchedSet[species] = true
		}

		for j := 1; j <= numChannels; j++ {
			for _, reactant := range reactantsByChannel[j] {
				if touchedSet[reactant] {
					_ = result.AddEdge(j, i)
					break
				}
			}
		}
	}

	result.EnsureSelfLoops()
	return result, nil
}

// Is reports whether err is a MissingDependencyGraph, matching the stdlib errors.Is idiom.
func (e MissingDependencyGraph) Is(target error) bool {
	_, ok := target.(MissingDependencyGraph)
	return ok
}
