package BSpline

/*
OpenBasis evaluates the order k B-spline basis of an open (clamped) knot
vector at parameter t, using the Cox-de Boor recursion.

	k  - order of the basis (degree + 1)
	t  - parameter value
	n1 - number of control points / basis functions
	x  - knot vector, len(x) == n1+k

The returned slice holds N_{i,k}(t) for i = 1..n1 at N[i-1].
*/
func OpenBasis(k int, t float64, n1 int, x []float64) (N []float64, err error) {
	if err = checkInput(k, n1, x); err != nil {
		return
	}
	var (
		nplusc = n1 + k
		temp   = make([]float64, nplusc-1)
	)
	// First order: indicator of the half-open span [x[i], x[i+1])
	for i := 0; i < nplusc-1; i++ {
		if t >= x[i] && t < x[i+1] {
			temp[i] = 1
		}
	}
	// Higher orders, in place. temp[i+1] still holds order d-1 when temp[i]
	// is overwritten. Gated terms never evaluate 0/0 at repeated knots.
	for d := 2; d <= k; d++ {
		for i := 0; i < nplusc-d; i++ {
			var direct, forward float64
			if temp[i] != 0 {
				direct = ((t - x[i]) * temp[i]) / (x[i+d-1] - x[i])
			}
			if temp[i+1] != 0 {
				forward = ((x[i+d] - t) * temp[i+1]) / (x[i+d] - x[i+1])
			}
			temp[i] = direct + forward
		}
	}
	// The last basis function reaches 1 at the final knot
	Open.correctBoundary(t, n1, x, temp)

	N = make([]float64, n1)
	copy(N, temp[:n1])
	if err = checkFinite(t, N); err != nil {
		N = nil
	}
	return
}
