package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/gospline/BSpline"
	"github.com/notargets/gospline/InputParameters"
)

// BasisCmd represents the basis command
var BasisCmd = &cobra.Command{
	Use:   "basis",
	Short: "Tabulate basis function values",
	Long: `
Evaluates the basis functions (and optionally derivatives) described by an input
file at each sample parameter and prints one row per parameter,

gospline basis -I input.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		inputFile, _ := cmd.Flags().GetString("inputFile")
		ip := processInput(inputFile)
		ip.Print()
		cl, err := RunBasis(ip, viper.GetInt("parallel"))
		if err != nil {
			log.Fatalf("basis evaluation failed: %v", err)
		}
		PrintBasis(os.Stdout, cl)
	},
}

func init() {
	rootCmd.AddCommand(BasisCmd)
	BasisCmd.Flags().StringP("inputFile", "I", "", "YAML file describing the knot vector, order and samples")
}

func processInput(fileName string) (ip *InputParameters.InputParameters) {
	var (
		err  error
		data []byte
	)
	if len(fileName) == 0 {
		err = fmt.Errorf("must supply an input parameters file (-I, --inputFile) in YAML format")
		fmt.Printf("error: %s\n", err.Error())
		fmt.Printf("Example File:%s\n", InputParameters.ExampleFile)
		os.Exit(1)
	}
	if data, err = os.ReadFile(fileName); err != nil {
		log.Fatalf("unable to read input file: %v", err)
	}
	ip = &InputParameters.InputParameters{}
	if err = ip.Parse(data); err != nil {
		log.Fatalf("unable to parse input file %s: %v", fileName, err)
	}
	return
}

func RunBasis(ip *InputParameters.InputParameters, parallel int) (cl *BSpline.Collocation, err error) {
	var (
		kt         = ip.GetKnotType()
		tMin, tMax float64
	)
	if tMin, tMax, err = BSpline.Domain(kt, ip.Order, ip.NumPoints, ip.Knots); err != nil {
		return
	}
	T := ip.SampleParameters(tMin, tMax)
	cl, err = BSpline.NewCollocation(kt, ip.Order, ip.NumPoints, ip.Knots, T, ip.Derivatives, parallel)
	return
}

// PrintBasis writes one row per parameter: t, the basis values, their sum
// and, when present, the first and second derivatives.
func PrintBasis(w io.Writer, cl *BSpline.Collocation) {
	header := func(label string) {
		for i := 0; i < cl.NPts; i++ {
			fmt.Fprintf(w, "%10s", fmt.Sprintf("%s%d", label, i+1))
		}
	}
	fmt.Fprintf(w, "%10s", "t")
	header("N")
	fmt.Fprintf(w, "%10s", "Sum")
	if cl.Derivatives {
		header("dN")
		header("d2N")
	}
	fmt.Fprintln(w)
	for j, t := range cl.Params {
		var sum float64
		fmt.Fprintf(w, "%10.5f", t)
		for i := 0; i < cl.NPts; i++ {
			val := cl.B.At(j, i)
			sum += val
			fmt.Fprintf(w, "%10.5f", val)
		}
		fmt.Fprintf(w, "%10.5f", sum)
		if cl.Derivatives {
			for i := 0; i < cl.NPts; i++ {
				fmt.Fprintf(w, "%10.5f", cl.D1.At(j, i))
			}
			for i := 0; i < cl.NPts; i++ {
				fmt.Fprintf(w, "%10.5f", cl.D2.At(j, i))
			}
		}
		fmt.Fprintln(w)
	}
}
