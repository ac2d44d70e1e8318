// Package aggregator implements the Next Reaction Method state machine: it
// owns the current rates, the indexed priority queue, the dependency graph
// and the RNG, and exposes initialize / peek-next / execute-jump (§4.D).
package aggregator

import (
	"math"

	"github.com/zefrenchwan/nrm-simulator/commons"
	"github.com/zefrenchwan/nrm-simulator/maths"
	"github.com/zefrenchwan/nrm-simulator/pqueue"
	"github.com/zefrenchwan/nrm-simulator/rates"
	"github.com/zefrenchwan/nrm-simulator/rng"
	"github.com/zefrenchwan/nrm-simulator/structures"
)

// Phase tracks the aggregator's position in its lifecycle:
// Fresh -> Initialized -> (PeekedNext -> Executing -> Updated)* -> Done.
type Phase int

const (
	Fresh Phase = iota
	Initialized
	PeekedNext
	Executing
	Updated
	Done
)

// Aggregator owns everything the Next Reaction Method needs between jumps:
// the channels, the current rates, the priority queue, the dependency graph
// and the RNG. u and p are always borrowed from the host for the duration
// of a single call.
type Aggregator[T maths.FloatNumber] struct {
	id         string
	channels   []rates.Channel[T]
	curRates   []T
	pq         pqueue.Indexed[T]
	depGraph   structures.ChannelDependencyGraph
	source     rng.Source[T]
	numSpecies int

	endTime       T
	savePositions bool
	observers     ObserverGroup[T]

	prevJump     int
	nextJump     int
	nextJumpTime T
	phase        Phase
}

// Id satisfies commons.Identifiable, so hosts running several trajectories
// at once can tell aggregator instances apart (e.g. in an observer's log line).
func (a *Aggregator[T]) Id() string {
	return a.id
}

// Phase returns the aggregator's current lifecycle state.
func (a *Aggregator[T]) Phase() Phase {
	return a.phase
}

// AddObserver registers an observer to be notified after every jump, when
// save_positions was enabled at Build time.
func (a *Aggregator[T]) AddObserver(observer Observer[T]) {
	a.observers.Add(observer)
}

// ScheduledTime returns the currently scheduled absolute firing time for
// channel id, supporting property 1 (heap consistency) checks.
func (a *Aggregator[T]) ScheduledTime(id int) (T, error) {
	return a.pq.Read(id)
}

// CurrentRate returns the last-evaluated intensity for channel id.
func (a *Aggregator[T]) CurrentRate(id int) T {
	return a.curRates[id-1]
}

// NumChannels returns M, the total channel count.
func (a *Aggregator[T]) NumChannels() int {
	return len(a.channels)
}

// positiveInfinity returns +Inf for any maths.FloatNumber.
func positiveInfinity[T maths.FloatNumber]() T {
	return T(math.Inf(1))
}

// Build constructs an aggregator over massActions (channels 1..len(massActions))
// followed by opaque channels (len(massActions)+1..M). If depGraph is nil, one
// is derived from stoichiometry, failing with structures.MissingDependencyGraph
// if any opaque channel exists (§4.B): the core cannot introspect an opaque
// rate closure to learn which species it reads.
func Build[T maths.FloatNumber](
	endTime T,
	massActions []rates.MassAction[T],
	opaque []rates.Opaque[T],
	savePositions bool,
	source rng.Source[T],
	numSpecies int,
	depGraph *structures.ChannelDependencyGraph,
) (*Aggregator[T], error) {
	numChannels := len(massActions) + len(opaque)
	channels := make([]rates.Channel[T], 0, numChannels)
	for _, ma := range massActions {
		channels = append(channels, ma)
	}

	for _, op := range opaque {
		channels = append(channels, op)
	}

	var graph structures.ChannelDependencyGraph
	if depGraph != nil {
		graph = *depGraph
		graph.EnsureSelfLoops()
	} else {
		derived, err := structures.DeriveFromMassAction(numChannels, rates.Stoichiometry[T]{MassActions: massActions})
		if err != nil {
			return nil, err
		}

		graph = derived
	}

	return &Aggregator[T]{
		id:            commons.NewId(),
		channels:      channels,
		curRates:      make([]T, numChannels),
		depGraph:      graph,
		source:        source,
		numSpecies:    numSpecies,
		endTime:       endTime,
		savePositions: savePositions,
		phase:         Fresh,
	}, nil
}

// Initialize evaluates every channel's rate, draws one Exp(1) per channel,
// schedules pq[i] = t + E_i/rate_i (or +Inf if rate_i == 0), and builds the
// heap. The integrator's end_time is read here, once, per the Design Notes.
func (a *Aggregator[T]) Initialize(integrator rates.Integrator[T], u rates.State, p any, t T) error {
	if a.numSpecies > 0 && len(u) != a.numSpecies {
		return SpeciesLengthMismatch{Got: len(u), Want: a.numSpecies}
	}

	a.endTime = integrator.EndTime()

	times := make([]T, len(a.channels))
	for i, channel := range a.channels {
		rate, err := channel.Evaluate(u, p, t)
		if err != nil {
			return err
		}

		a.curRates[i] = rate
		if rate > 0 {
			times[i] = t + a.source.RandExp()/rate
		} else {
			times[i] = positiveInfinity[T]()
		}
	}

	a.pq = pqueue.Build(times)
	a.nextJumpTime, a.nextJump = a.pq.PeekMin()
	a.phase = Initialized
	return nil
}

// PeekNext returns the current minimum (time, channel id). It leaves the heap,
// the rates and the RNG untouched; its only effect is setting the phase to PeekedNext.
func (a *Aggregator[T]) PeekNext() (T, int) {
	a.phase = PeekedNext
	return a.nextJumpTime, a.nextJump
}

// ExecuteJump applies the affect of the channel at the heap's top to u, then
// recomputes every dependent rate and reschedules it (§4.D). prev_jump is
// advanced to the fired channel before dependents are recomputed, so Case A
// of the rescale rule (§4.E) can recognize "the channel that just fired".
func (a *Aggregator[T]) ExecuteJump(integrator rates.Integrator[T], u rates.State, p any, t T) error {
	a.phase = Executing

	channel := a.channels[a.nextJump-1]
	if err := channel.Affect().Execute(u, integrator); err != nil {
		return err
	}

	a.prevJump = a.nextJump
	firedAt := a.nextJumpTime

	if err := a.updateDependentRates(u, p, t); err != nil {
		return err
	}

	a.nextJumpTime, a.nextJump = a.pq.PeekMin()
	a.phase = Updated

	if a.savePositions {
		a.observers.NotifyAll(a.prevJump, firedAt, u)
	}

	if a.nextJumpTime >= a.endTime {
		a.phase = Done
	}

	return nil
}

// updateDependentRates re-evaluates and reschedules every channel in
// D(prev_jump), in ascending channel id order so RNG draw order is
// deterministic given the graph layout (§5).
func (a *Aggregator[T]) updateDependentRates(u rates.State, p any, t T) error {
	for _, rx := range a.depGraph.Dependents(a.prevJump) {
		oldRate := a.curRates[rx-1]
		oldTime, err := a.pq.Read(rx)
		if err != nil {
			return err
		}

		newRate, err := a.channels[rx-1].Evaluate(u, p, t)
		if err != nil {
			return err
		}

		a.curRates[rx-1] = newRate

		newTime := a.rescale(rx, oldRate, newRate, oldTime, t)
		if err := a.pq.Update(rx, newTime); err != nil {
			return err
		}
	}

	return nil
}
