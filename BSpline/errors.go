package BSpline

import (
	"errors"
	"fmt"
	"math"
)

// MaxSlots bounds npts+order for the derivative evaluators, which work in
// fixed-size rows. It admits at most 35 control points.
const MaxSlots = 36

var (
	ErrInvalidInput     = errors.New("invalid basis input")
	ErrCapacityExceeded = errors.New("basis capacity exceeded")
	ErrDegenerateKnots  = errors.New("degenerate knot span")
)

func checkInput(order, npts int, x []float64) (err error) {
	switch {
	case order < 1:
		err = fmt.Errorf("%w: order must be at least 1, have %d", ErrInvalidInput, order)
	case npts < 1:
		err = fmt.Errorf("%w: number of control points must be at least 1, have %d", ErrInvalidInput, npts)
	case len(x) != npts+order:
		err = fmt.Errorf("%w: knot vector length is %d, required length is npts+order = %d",
			ErrInvalidInput, len(x), npts+order)
	default:
		for i := 1; i < len(x); i++ {
			if x[i] < x[i-1] {
				err = fmt.Errorf("%w: knot vector decreases at index %d: %v > %v",
					ErrInvalidInput, i, x[i-1], x[i])
				return
			}
		}
	}
	return
}

func checkCapacity(order, npts int) (err error) {
	if npts+order > MaxSlots {
		err = fmt.Errorf("%w: npts+order = %d, maximum is %d",
			ErrCapacityExceeded, npts+order, MaxSlots)
	}
	return
}

// A zero-width span with a live gating factor is the only way a division
// by zero reaches the output, so a non-finite value is reported rather than
// returned.
func checkFinite(t float64, rows ...[]float64) (err error) {
	for _, row := range rows {
		for i, val := range row {
			if math.IsNaN(val) || math.IsInf(val, 0) {
				err = fmt.Errorf("%w: non-finite value %v in slot %d at t = %v",
					ErrDegenerateKnots, val, i+1, t)
				return
			}
		}
	}
	return
}
