package BSpline

// Domain returns the parameter interval over which the basis is a partition
// of unity. Open knot vectors span the whole vector, periodic ones run from
// x[order] to x[npts+1] (1-based).
func Domain(kt KnotType, order, npts int, x []float64) (tMin, tMax float64, err error) {
	if err = checkInput(order, npts, x); err != nil {
		return
	}
	switch kt {
	case Periodic:
		tMin, tMax = x[order-1], x[npts]
	default:
		tMin, tMax = x[0], x[len(x)-1]
	}
	return
}
