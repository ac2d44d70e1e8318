package rates_test

import (
	"errors"
	"testing"

	"github.com/zefrenchwan/nrm-simulator/rates"
)

func TestOpaqueEvaluateDelegates(t *testing.T) {
	channel := rates.Opaque[float64]{
		Id: 2,
		RateFn: func(u rates.State, p any, t float64) (float64, error) {
			return 2.0 * u[0], nil
		},
	}

	rate, err := channel.Evaluate(rates.State{5}, nil, 0.0)
	if err != nil {
		t.Log(err)
		t.Fail()
	} else if rate != 10.0 {
		t.Fail()
	}
}

func TestOpaqueRejectsNaN(t *testing.T) {
	channel := rates.Opaque[float64]{
		Id: 2,
		RateFn: func(u rates.State, p any, t float64) (float64, error) {
			nan := 0.0
			return nan / nan, nil
		},
	}

	_, err := channel.Evaluate(nil, nil, 0.0)
	var invalid rates.InvalidRateKind
	if !errors.As(err, &invalid) {
		t.Log("expected InvalidRateKind for a NaN rate")
		t.Fail()
	}
}

func TestOpaquePropagatesRateFnError(t *testing.T) {
	expected := errors.New("boom")
	channel := rates.Opaque[float64]{
		Id: 2,
		RateFn: func(u rates.State, p any, t float64) (float64, error) {
			return 0, expected
		},
	}

	_, err := channel.Evaluate(nil, nil, 0.0)
	if !errors.Is(err, expected) {
		t.Log("expected the rate function's error to propagate unchanged")
		t.Fail()
	}
}
