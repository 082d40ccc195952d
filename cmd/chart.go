package cmd

import (
	"fmt"
	"os"

	"github.com/theirongolddev/growthsim/internal/export"
	"github.com/theirongolddev/growthsim/internal/pie"
	"github.com/theirongolddev/growthsim/internal/tui/theme"

	"github.com/spf13/cobra"
)

var (
	flagChartOut   string
	flagChartLight bool
	flagChartSize  int
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Render the breakdown pie chart as SVG",
	RunE:  runChart,
}

func init() {
	chartCmd.Flags().StringVarP(&flagChartOut, "out", "o", "", "Write to file instead of stdout")
	chartCmd.Flags().BoolVar(&flagChartLight, "light", false, "Use light-background slice borders")
	chartCmd.Flags().IntVar(&flagChartSize, "size", 0, "Width and height in px (0 leaves it to the viewer)")
	rootCmd.AddCommand(chartCmd)
}

// svgOptions picks slice borders that match the chosen background.
func svgOptions(light bool, size int) pie.SVGOptions {
	opts := pie.DefaultSVGOptions()
	th := theme.ByName(cfg.Appearance.Theme)
	if light && th.Dark {
		th = theme.ByName(th.Counterpart)
	}
	if !light && !th.Dark {
		th = theme.ByName(th.Counterpart)
	}
	if th.PieStroke != "" {
		opts.Stroke = th.PieStroke
	}
	opts.Size = size
	return opts
}

func runChart(cmd *cobra.Command, _ []string) error {
	cur, err := currentCurrency(cmd)
	if err != nil {
		return err
	}
	rep := export.NewReport(currentInputs(cmd), cur)
	opts := svgOptions(flagChartLight, flagChartSize)

	if flagChartOut == "" {
		return export.WriteSVG(os.Stdout, rep, opts)
	}
	if err := export.ToFile(flagChartOut, export.FormatSVG, rep, opts); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "  Wrote %s\n", flagChartOut)
	return nil
}
