package utils

import (
	"fmt"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"
)

type Index []int

// DOK is used to assemble a sparse matrix entry by entry before converting
// it to CSR for row oriented access.
type DOK struct {
	M *sparse.DOK
}

func NewDOK(nr, nc int) (R DOK) {
	R = DOK{sparse.NewDOK(nr, nc)}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m DOK) Dims() (r, c int)    { return m.M.Dims() }
func (m DOK) At(i, j int) float64 { return m.M.At(i, j) }
func (m DOK) T() mat.Matrix       { return m.M.T() }
func (m DOK) NNZ() int            { return m.M.NNZ() }

func (m DOK) Set(i, j int, val float64) {
	nr, nc := m.Dims()
	if i < 0 || i >= nr || j < 0 || j >= nc {
		panic(fmt.Errorf("index (%d, %d) out of bounds for %d x %d matrix", i, j, nr, nc))
	}
	m.M.Set(i, j, val)
}

func (m DOK) ToCSR() CSR {
	return CSR{
		M:    m.M.ToCSR(),
		name: "unnamed - hint: pass a variable name to SetReadOnly()",
	}
}

type CSR struct {
	M        *sparse.CSR
	readOnly bool
	name     string
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m CSR) Dims() (r, c int)    { return m.M.Dims() }
func (m CSR) At(i, j int) float64 { return m.M.At(i, j) }
func (m CSR) T() mat.Matrix       { return m.M.T() }
func (m CSR) NNZ() int            { return m.M.NNZ() }
func (m CSR) IsEmpty() bool       { return m.M == nil }

func (m *CSR) SetReadOnly(name ...string) {
	if len(name) != 0 {
		m.name = name[0]
	}
	m.readOnly = true
}

func (m CSR) IsReadOnly() bool { return m.readOnly }

func (m CSR) Set(i, j int, val float64) {
	m.checkWritable()
	m.M.Set(i, j, val)
}

func (m CSR) ToDense() *mat.Dense {
	return m.M.ToDense()
}

// RowNonZeros returns the column indices and values of the non-zero entries
// of row i, in column order.
func (m CSR) RowNonZeros(i int) (cols Index, vals []float64) {
	_, nc := m.Dims()
	for j := 0; j < nc; j++ {
		if val := m.M.At(i, j); val != 0 {
			cols = append(cols, j)
			vals = append(vals, val)
		}
	}
	return
}

func (m CSR) checkWritable() {
	if m.readOnly {
		err := fmt.Errorf("attempt to write to a read only matrix named: \"%v\"", m.name)
		panic(err)
	}
}
