package BSpline

// DerivativeBasisOpen evaluates the basis of an open knot vector together with
// its first and second derivatives with respect to t. The arguments follow
// OpenBasis; npts+c may not exceed MaxSlots.
func DerivativeBasisOpen(c int, t float64, npts int, x []float64) (N, D1, D2 []float64, err error) {
	return derivativeBasis(Open, c, t, npts, x)
}

// DerivativeBasisPeriodic is DerivativeBasisOpen for a periodic (uniform,
// unclamped) knot vector. The domain ends at x[npts+1] rather than at the last knot.
func DerivativeBasisPeriodic(c int, t float64, npts int, x []float64) (N, D1, D2 []float64, err error) {
	return derivativeBasis(Periodic, c, t, npts, x)
}

// DerivativeBasis dispatches on the knot vector type.
func DerivativeBasis(kt KnotType, c int, t float64, npts int, x []float64) (N, D1, D2 []float64, err error) {
	return derivativeBasis(kt, c, t, npts, x)
}

func derivativeBasis(kt KnotType, c int, t float64, npts int, x []float64) (N, D1, D2 []float64, err error) {
	if err = checkCapacity(c, npts); err != nil {
		return
	}
	if err = checkInput(c, npts, x); err != nil {
		return
	}
	nplusc := npts + c
	// Value, first and second derivative rows
	var temp, temp1, temp2 [MaxSlots]float64
	for i := 0; i < nplusc-1; i++ {
		if t >= x[i] && t < x[i+1] {
			temp[i] = 1
		}
	}
	kt.correctBoundary(t, npts, x, temp[:nplusc-1])

	for k := 2; k <= c; k++ {
		for i := 0; i < nplusc-k; i++ {
			var (
				b1, b2         float64
				f1, f2, f3, f4 float64
				s1, s2, s3, s4 float64
			)
			dl, dr := x[i+k-1]-x[i], x[i+k]-x[i+1]
			tl, tr := t-x[i], x[i+k]-t
			if temp[i] != 0 {
				b1 = tl * temp[i] / dl
				f1 = temp[i] / dl
			}
			if temp[i+1] != 0 {
				b2 = tr * temp[i+1] / dr
				f2 = -temp[i+1] / dr
			}
			if temp1[i] != 0 {
				f3 = tl * temp1[i] / dl
				s1 = 2 * temp1[i] / dl
			}
			if temp1[i+1] != 0 {
				f4 = tr * temp1[i+1] / dr
				s2 = -2 * temp1[i+1] / dr
			}
			if temp2[i] != 0 {
				s3 = tl * temp2[i] / dl
			}
			if temp2[i+1] != 0 {
				s4 = tr * temp2[i+1] / dr
			}
			// Every term above reads order k-1 values, slot i is replaced only now
			temp[i] = b1 + b2
			temp1[i] = f1 + f2 + f3 + f4
			temp2[i] = s1 + s2 + s3 + s4
		}
	}

	N, D1, D2 = make([]float64, npts), make([]float64, npts), make([]float64, npts)
	copy(N, temp[:npts])
	copy(D1, temp1[:npts])
	copy(D2, temp2[:npts])
	if err = checkFinite(t, N, D1, D2); err != nil {
		N, D1, D2 = nil, nil, nil
	}
	return
}
