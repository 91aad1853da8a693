package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gospline/InputParameters"
)

func readInput(t *testing.T, fileInput []byte) (ip *InputParameters.InputParameters) {
	t.Helper()
	ip = &InputParameters.InputParameters{}
	require.NoError(t, ip.Parse(fileInput))
	return
}

func TestRunBasis(t *testing.T) {
	ip := readInput(t, []byte(`
Title: Test Case
KnotType: open
Order: 3
NumPoints: 5
Knots: [0, 0, 0, 1, 2, 3, 3, 3]
Derivatives: true
Samples: 7
`))
	cl, err := RunBasis(ip, 3)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.5, 1, 1.5, 2, 2.5, 3}, cl.Params)
	assert.Equal(t, 1., cl.B.At(0, 0))
	assert.Equal(t, 1., cl.B.At(6, 4))
	assert.Equal(t, 0.75, cl.B.At(3, 2))

	var buf bytes.Buffer
	PrintBasis(&buf, cl)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 8)
	header := strings.Fields(lines[0])
	assert.Equal(t, []string{"t", "N1", "N2", "N3", "N4", "N5", "Sum"}, header[:7])
	assert.Equal(t, "d2N5", header[len(header)-1])
	row := strings.Fields(lines[4]) // t = 1.5
	assert.Equal(t, "1.50000", row[0])
	assert.Equal(t, "0.75000", row[3])
	assert.Equal(t, "1.00000", row[6])
	assert.Equal(t, "-0.50000", row[8])
}

func TestRunBasisPeriodic(t *testing.T) {
	ip := readInput(t, []byte(`
Title: Periodic
KnotType: periodic
Order: 4
NumPoints: 6
Knots: [0, 1, 2, 3, 4, 5, 6, 7, 8, 9]
Samples: 13
`))
	cl, err := RunBasis(ip, 2)
	require.NoError(t, err)
	assert.Equal(t, 3., cl.Params[0])
	assert.Equal(t, 6., cl.Params[12])
	for j := range cl.Params {
		var sum float64
		for i := 0; i < cl.NPts; i++ {
			sum += cl.B.At(j, i)
		}
		assert.InDelta(t, 1., sum, 1.e-12)
	}
	var buf bytes.Buffer
	PrintBasis(&buf, cl)
	assert.NotContains(t, buf.String(), "dN1")
}

func TestPlotBasis(t *testing.T) {
	ip := readInput(t, []byte(InputParameters.ExampleFile))
	cl, err := RunBasis(ip, 2)
	require.NoError(t, err)
	dir := t.TempDir()
	for deriv, name := range []string{"basis.png", "d1.svg", "d2.pdf"} {
		fileName := filepath.Join(dir, name)
		require.NoError(t, PlotBasis(cl, ip.Title, fileName, deriv))
		info, err := os.Stat(fileName)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	}
	assert.Error(t, PlotBasis(cl, ip.Title, filepath.Join(dir, "x.png"), 3))

	ip.Derivatives = false
	cl, err = RunBasis(ip, 1)
	require.NoError(t, err)
	assert.Error(t, PlotBasis(cl, ip.Title, filepath.Join(dir, "d1.png"), 1))
}
