package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/notargets/gospline/BSpline"
	"github.com/notargets/gospline/utils"
)

// PlotCmd represents the plot command
var PlotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Plot basis functions to an image file",
	Long: `
Plots every basis function described by an input file across the sampled
parameters. The image format follows the output file extension (png, svg, pdf),

gospline plot -I input.yaml -o basis.png -D 1`,
	Run: func(cmd *cobra.Command, args []string) {
		inputFile, _ := cmd.Flags().GetString("inputFile")
		outFile, _ := cmd.Flags().GetString("output")
		deriv, _ := cmd.Flags().GetInt("derivative")
		ip := processInput(inputFile)
		if deriv > 0 {
			ip.Derivatives = true
		}
		cl, err := RunBasis(ip, viper.GetInt("parallel"))
		if err != nil {
			log.Fatalf("basis evaluation failed: %v", err)
		}
		if err = PlotBasis(cl, ip.Title, outFile, deriv); err != nil {
			log.Fatalf("unable to plot basis: %v", err)
		}
		log.Printf("Wrote %s", outFile)
	},
}

func init() {
	rootCmd.AddCommand(PlotCmd)
	PlotCmd.Flags().StringP("inputFile", "I", "", "YAML file describing the knot vector, order and samples")
	PlotCmd.Flags().StringP("output", "o", "basis.png", "image file to write")
	PlotCmd.Flags().IntP("derivative", "D", 0, "which quantity to plot - 0=basis, 1=first derivative, 2=second derivative")
}

func PlotBasis(cl *BSpline.Collocation, title, fileName string, deriv int) (err error) {
	var (
		M      utils.CSR
		yLabel string
	)
	switch deriv {
	case 0:
		M, yLabel = cl.B, "N(t)"
	case 1:
		M, yLabel = cl.D1, "dN/dt"
	case 2:
		M, yLabel = cl.D2, "d2N/dt2"
	default:
		err = fmt.Errorf("derivative must be 0, 1 or 2, have %d", deriv)
		return
	}
	if M.IsEmpty() {
		err = fmt.Errorf("derivative %d was not evaluated", deriv)
		return
	}
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s (%s, order %d)", title, cl.KnotType.Print(), cl.Order)
	p.X.Label.Text = "t"
	p.Y.Label.Text = yLabel
	for i := 0; i < cl.NPts; i++ {
		pts := make(plotter.XYs, len(cl.Params))
		for j, t := range cl.Params {
			pts[j].X, pts[j].Y = t, M.At(j, i)
		}
		var line *plotter.Line
		if line, err = plotter.NewLine(pts); err != nil {
			return
		}
		line.Color = plotutil.Color(i)
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("N%d", i+1), line)
	}
	p.Add(plotter.NewGrid())
	err = p.Save(6*vg.Inch, 4*vg.Inch, fileName)
	return
}
