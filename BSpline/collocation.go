package BSpline

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/notargets/gospline/utils"
)

// Collocation holds the basis evaluated at a set of parameters, one row per
// parameter and one column per control point. Rows are sparse, each has at
// most Order non-zero entries.
type Collocation struct {
	KnotType    KnotType
	Order, NPts int
	Knots       []float64
	Params      []float64
	Derivatives bool
	B, D1, D2   utils.CSR // D1, D2 are only assembled when Derivatives is set
}

type basisRow struct {
	N, D1, D2 []float64
	err       error
}

func NewCollocation(kt KnotType, order, npts int, knots, params []float64,
	derivatives bool, parallelDegree int) (cl *Collocation, err error) {
	if err = checkInput(order, npts, knots); err != nil {
		return
	}
	if len(params) == 0 {
		err = fmt.Errorf("%w: no parameters to evaluate", ErrInvalidInput)
		return
	}
	if parallelDegree < 1 {
		parallelDegree = 1
	}
	if parallelDegree > len(params) {
		parallelDegree = len(params)
	}
	cl = &Collocation{
		KnotType:    kt,
		Order:       order,
		NPts:        npts,
		Knots:       knots,
		Params:      params,
		Derivatives: derivatives,
	}
	var (
		nr   = len(params)
		rows = make([]basisRow, nr)
	)
	// The evaluators share no state, each worker fills its own rows
	utils.ParallelFor(parallelDegree, nr, func(bn, kMin, kMax int) {
		for j := kMin; j < kMax; j++ {
			rows[j] = cl.evaluate(params[j])
		}
	})
	for j := range rows {
		if rows[j].err != nil {
			err = fmt.Errorf("parameter %d (t = %v): %w", j, params[j], rows[j].err)
			cl = nil
			return
		}
	}
	cl.assemble(rows)
	return
}

func (cl *Collocation) evaluate(t float64) (row basisRow) {
	if cl.KnotType == Open && !cl.Derivatives {
		row.N, row.err = OpenBasis(cl.Order, t, cl.NPts, cl.Knots)
		return
	}
	row.N, row.D1, row.D2, row.err = derivativeBasis(cl.KnotType, cl.Order, t, cl.NPts, cl.Knots)
	return
}

func (cl *Collocation) assemble(rows []basisRow) {
	var (
		nr         = len(rows)
		bm, d1, d2 = utils.NewDOK(nr, cl.NPts), utils.NewDOK(nr, cl.NPts), utils.NewDOK(nr, cl.NPts)
	)
	for j, row := range rows {
		for i := 0; i < cl.NPts; i++ {
			if row.N[i] != 0 {
				bm.Set(j, i, row.N[i])
			}
			if !cl.Derivatives {
				continue
			}
			if row.D1[i] != 0 {
				d1.Set(j, i, row.D1[i])
			}
			if row.D2[i] != 0 {
				d2.Set(j, i, row.D2[i])
			}
		}
	}
	cl.B = bm.ToCSR()
	cl.B.SetReadOnly("B")
	if cl.Derivatives {
		cl.D1, cl.D2 = d1.ToCSR(), d2.ToCSR()
		cl.D1.SetReadOnly("D1")
		cl.D2.SetReadOnly("D2")
	}
}

// Dense returns dense copies of the collocation matrices. D1 and D2 are nil
// unless derivatives were requested.
func (cl *Collocation) Dense() (B, D1, D2 *mat.Dense) {
	B = cl.B.ToDense()
	if cl.Derivatives {
		D1, D2 = cl.D1.ToDense(), cl.D2.ToDense()
	}
	return
}

// Evaluate returns B*coef, the spline with scalar coefficients coef sampled
// at every parameter.
func (cl *Collocation) Evaluate(coef []float64) (v *mat.VecDense, err error) {
	if len(coef) != cl.NPts {
		err = fmt.Errorf("%w: have %d coefficients for %d basis functions",
			ErrInvalidInput, len(coef), cl.NPts)
		return
	}
	v = mat.NewVecDense(len(cl.Params), nil)
	v.MulVec(cl.B, mat.NewVecDense(cl.NPts, coef))
	return
}
