package InputParameters

import (
	"fmt"
	"strings"

	"github.com/ghodss/yaml"

	"github.com/notargets/gospline/BSpline"
)

// Parameters obtained from the YAML input file
type InputParameters struct {
	Title       string    `yaml:"Title"`
	KnotType    string    `yaml:"KnotType"`
	Order       int       `yaml:"Order"`
	NumPoints   int       `yaml:"NumPoints"`
	Knots       []float64 `yaml:"Knots"`
	Derivatives bool      `yaml:"Derivatives"`
	Samples     int       `yaml:"Samples"`    // Uniform samples over the domain
	Parameters  []float64 `yaml:"Parameters"` // Explicit values, used in place of Samples
}

const ExampleFile = `
########################################
Title: "Quadratic clamped"
KnotType: open # Can be "periodic"
Order: 3
NumPoints: 5
Knots: [0, 0, 0, 1, 2, 3, 3, 3]
Derivatives: true
Samples: 13
########################################
`

func (ip *InputParameters) Parse(data []byte) (err error) {
	if err = yaml.Unmarshal(data, ip); err != nil {
		return
	}
	if len(ip.KnotType) == 0 {
		ip.KnotType = BSpline.Open.Print()
	}
	return ip.Validate()
}

func (ip *InputParameters) GetKnotType() (kt BSpline.KnotType) {
	kt, _ = BSpline.NewKnotType(ip.KnotType)
	return
}

func (ip *InputParameters) Validate() (err error) {
	if _, err = BSpline.NewKnotType(ip.KnotType); err != nil {
		return
	}
	if len(ip.Knots) != ip.NumPoints+ip.Order {
		err = fmt.Errorf("%w: %d knots supplied, Order+NumPoints = %d",
			BSpline.ErrInvalidInput, len(ip.Knots), ip.NumPoints+ip.Order)
		return
	}
	if len(ip.Parameters) == 0 && ip.Samples < 2 {
		err = fmt.Errorf("either Parameters or Samples >= 2 must be specified, have Samples = %d",
			ip.Samples)
	}
	return
}

// SampleParameters returns the explicit Parameters if present, otherwise
// Samples values spaced uniformly over [tMin, tMax], both ends included.
func (ip *InputParameters) SampleParameters(tMin, tMax float64) (T []float64) {
	if len(ip.Parameters) != 0 {
		T = make([]float64, len(ip.Parameters))
		copy(T, ip.Parameters)
		return
	}
	T = make([]float64, ip.Samples)
	dt := (tMax - tMin) / float64(ip.Samples-1)
	for i := range T {
		T[i] = tMin + float64(i)*dt
	}
	// Land exactly on the last knot so the end point correction applies
	T[ip.Samples-1] = tMax
	return
}

func (ip *InputParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%s]\t\t\t= Knot Type\n", ip.GetKnotType().Print())
	fmt.Printf("[%d]\t\t\t\t= Order\n", ip.Order)
	fmt.Printf("[%d]\t\t\t\t= Number of Control Points\n", ip.NumPoints)
	fmt.Printf("%v\t= Knots\n", formatList(ip.Knots))
	fmt.Printf("[%v]\t\t\t= Derivatives\n", ip.Derivatives)
	if len(ip.Parameters) != 0 {
		fmt.Printf("%v\t= Parameters\n", formatList(ip.Parameters))
	} else {
		fmt.Printf("[%d]\t\t\t\t= Samples\n", ip.Samples)
	}
}

func formatList(v []float64) string {
	s := make([]string, len(v))
	for i, val := range v {
		s[i] = fmt.Sprintf("%g", val)
	}
	return "[" + strings.Join(s, ", ") + "]"
}
