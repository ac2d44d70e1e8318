// Package rng supplies the standard-exponential draws the Next Reaction
// Method consumes at initialize! and at every Case A/C rescale.
package rng

import (
	"math/rand"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/zefrenchwan/nrm-simulator/maths"
)

// Source draws independent Exp(1) variates. The aggregator owns one; it is
// never shared with the host integrator, so a given seed reproduces a given
// trajectory exactly (property 5).
type Source[T maths.FloatNumber] interface {
	// RandExp returns one draw from the standard exponential distribution
	RandExp() T
}

// GonumSource wraps gonum's distuv.Exponential(rate=1), seeded via math/rand
// for reproducibility across runs given the same seed.
type GonumSource[T maths.FloatNumber] struct {
	dist distuv.Exponential
}

// NewGonumSource seeds a standard-exponential source deterministically.
func NewGonumSource[T maths.FloatNumber](seed uint64) *GonumSource[T] {
	return &GonumSource[T]{
		dist: distuv.Exponential{
			Rate: 1,
			Src:  rand.NewSource(int64(seed)),
		},
	}
}

// RandExp draws one Exp(1) variate.
func (s *GonumSource[T]) RandExp() T {
	return T(s.dist.Rand())
}
