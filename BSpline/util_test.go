package BSpline

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"gonum.org/v1/gonum/floats"
)

var approx = cmpopts.EquateApprox(0, 1e-12)

func cmpApprox(margin float64) cmp.Option {
	return cmpopts.EquateApprox(0, margin)
}

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// clampedQuadratic is the quadratic open knot vector for five control points
var clampedQuadratic = []float64{0, 0, 0, 1, 2, 3, 3, 3}

func uniformKnots(n int) (x []float64) {
	x = make([]float64, n)
	floats.Span(x, 0, float64(n-1))
	return
}

// samples returns n+1 parameters spaced evenly over [tMin, tMax]
func samples(tMin, tMax float64, n int) (T []float64) {
	T = make([]float64, n+1)
	floats.Span(T, tMin, tMax)
	return
}
