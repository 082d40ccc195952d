package cmd

import (
	"fmt"

	"github.com/theirongolddev/growthsim/internal/cli"
	"github.com/theirongolddev/growthsim/internal/currency"
	"github.com/theirongolddev/growthsim/internal/projection"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Projection summary with breakdown",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, _ []string) error {
	cur, err := currentCurrency(cmd)
	if err != nil {
		return err
	}
	in := currentInputs(cmd)
	r := in.Project()

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("GROWTH PROJECTION  %s", cli.FormatYears(in.Years))))
	fmt.Println()

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Input", "Value"},
		Rows:    inputRows(in, cur),
	}))
	fmt.Println()

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Result", "Amount"},
		Rows: [][]string{
			{"Final Balance", cur.Format(r.TotalValue)},
			{"Invested Amount", cur.Format(r.Invested())},
			{"Total Interest", cur.Format(r.InterestEarned)},
		},
	}))

	fmt.Println()
	fmt.Print(renderBreakdown(r, cur))
	return nil
}

func inputRows(in projection.Inputs, cur currency.Currency) [][]string {
	rows := make([][]string, 0, len(projection.Fields))
	for _, f := range projection.Fields {
		rows = append(rows, []string{f.Label, cli.FormatField(f, in.Value(f.Key), cur)})
	}
	return rows
}

// renderBreakdown prints one bar per component, sized by its share of the
// final balance.
func renderBreakdown(r projection.Result, cur currency.Currency) string {
	if r.TotalValue <= 0 {
		return "  Nothing to chart: the final balance is 0.\n"
	}

	out := "  Breakdown\n"
	for _, s := range projection.Legend(r) {
		label := fmt.Sprintf("%-14s %6s", s.Label, cli.FormatPercent(s.Value/r.TotalValue))
		out += cli.RenderHorizontalBar(label, s.Value, r.TotalValue, 30, lipgloss.Color(s.Color)) +
			"  " + cur.Format(s.Value) + "\n"
	}
	return out
}
