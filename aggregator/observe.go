package aggregator

import (
	"github.com/zefrenchwan/nrm-simulator/commons"
	"github.com/zefrenchwan/nrm-simulator/maths"
	"github.com/zefrenchwan/nrm-simulator/rates"
)

// Observer is notified once a jump has fired and the heap is back in a
// consistent state, when save_positions was enabled at Build time. Adapted
// from the teacher's commons.EventObserver (OnEventProcessing), narrowed to
// the one event shape this core ever emits.
type Observer[T maths.FloatNumber] interface {
	commons.Identifiable
	// OnJump reports that channel fired at t, leaving u in its post-jump state
	OnJump(channel int, t T, u rates.State)
}

// functionalObserver decorates a plain function as an Observer, same idiom
// as the teacher's functionalEventObserver.
type functionalObserver[T maths.FloatNumber] struct {
	id       string
	listener func(channel int, t T, u rates.State)
}

// Id returns the observer's id
func (f functionalObserver[T]) Id() string {
	return f.id
}

// OnJump calls the decorated listener
func (f functionalObserver[T]) OnJump(channel int, t T, u rates.State) {
	if f.listener != nil {
		f.listener(channel, t, u)
	}
}

// NewObserver builds an Observer from a listening function.
func NewObserver[T maths.FloatNumber](listener func(channel int, t T, u rates.State)) Observer[T] {
	return functionalObserver[T]{id: commons.NewId(), listener: listener}
}

// ObserverGroup holds the observers attached to an Aggregator. Adapted from
// the teacher's commons.LocalContainer/ProcessorsGroup, with the concurrency
// guard dropped: §5 mandates the core is single-threaded and synchronous, so
// the mutex the teacher needed for its multi-goroutine container has no
// purpose here.
type ObserverGroup[T maths.FloatNumber] struct {
	observers []Observer[T]
}

// Add registers an observer, deduplicating by id.
func (g *ObserverGroup[T]) Add(observer Observer[T]) {
	if observer == nil {
		return
	}

	newValues := append(g.observers, observer)
	g.observers = commons.SliceDeduplicateFunc(newValues, func(a, b Observer[T]) bool { return a.Id() == b.Id() })
}

// Remove drops the observer with the given id, reporting whether it was present.
func (g *ObserverGroup[T]) Remove(id string) bool {
	before := len(g.observers)
	var kept []Observer[T]
	for _, o := range g.observers {
		if o.Id() != id {
			kept = append(kept, o)
		}
	}

	g.observers = kept
	return len(kept) != before
}

// NotifyAll calls OnJump on every registered observer, in registration order.
func (g *ObserverGroup[T]) NotifyAll(channel int, t T, u rates.State) {
	for _, o := range g.observers {
		o.OnJump(channel, t, u)
	}
}
