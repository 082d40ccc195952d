package cmd

import (
	"fmt"
	"strconv"

	"github.com/theirongolddev/growthsim/internal/cli"
	"github.com/theirongolddev/growthsim/internal/projection"

	"github.com/spf13/cobra"
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Year-by-year balance table",
	RunE:  runSchedule,
}

func init() {
	rootCmd.AddCommand(scheduleCmd)
}

func runSchedule(cmd *cobra.Command, _ []string) error {
	cur, err := currentCurrency(cmd)
	if err != nil {
		return err
	}
	in := currentInputs(cmd)
	years := projection.Schedule(in)

	if len(years) == 0 {
		fmt.Println("\n  " + emptyScheduleReason(in.Normalize().Years))
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("YEARLY SCHEDULE  %s", cli.FormatYears(in.Years))))
	fmt.Println()

	rows := make([][]string, 0, len(years))
	for _, y := range years {
		rows = append(rows, []string{
			strconv.FormatFloat(y.Year, 'f', -1, 64),
			cur.Format(y.Balance),
			cur.Format(y.Principal),
			cur.Format(y.Contributions),
			cur.Format(y.Interest),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Year", "Balance", "Principal", "Contributions", "Interest"},
		Rows:    rows,
	}))
	return nil
}

func emptyScheduleReason(years float64) string {
	if years > projection.MaxScheduleYears {
		return fmt.Sprintf("No schedule: horizons over %s years are not tabulated.",
			cli.FormatNumber(projection.MaxScheduleYears))
	}
	return "No schedule: the horizon is 0 years."
}
