package projection

import (
	"math"

	"github.com/theirongolddev/growthsim/internal/pie"
)

// YearRow is the state of the projection at the end of one year.
type YearRow struct {
	Year          float64 `json:"year"`
	Balance       float64 `json:"balance"`
	Principal     float64 `json:"principal"`
	Contributions float64 `json:"contributions"`
	Interest      float64 `json:"interest"`
}

// MaxScheduleYears is the longest horizon Schedule tabulates.
const MaxScheduleYears = 1000

// Schedule returns one row per whole year, plus a final partial-year row
// when the horizon is fractional. Each row is Compute at that horizon.
// Horizons of 0 or beyond MaxScheduleYears yield no rows.
func Schedule(in Inputs) []YearRow {
	in = in.Normalize()
	if in.Years == 0 || in.Years > MaxScheduleYears {
		return nil
	}

	n := int(math.Ceil(in.Years))
	rows := make([]YearRow, 0, n)
	for i := 1; i <= n; i++ {
		y := math.Min(float64(i), in.Years)
		r := Compute(in.Principal, in.AnnualRatePercent, y, in.MonthlyContribution)
		rows = append(rows, YearRow{
			Year:          y,
			Balance:       r.TotalValue,
			Principal:     r.PrincipalTotal,
			Contributions: r.ContributionsTotal,
			Interest:      r.InterestEarned,
		})
	}
	return rows
}

// Breakdown colors.
const (
	ColorPrincipal     = "#6366f1"
	ColorContributions = "#10b981"
	ColorInterest      = "#f43f5e"
)

// Breakdown labels.
const (
	LabelPrincipal     = "Principal"
	LabelContributions = "Contributions"
	LabelInterest      = "Interest"
)

// Legend returns all three breakdown categories, including empty ones.
func Legend(r Result) []pie.Slice {
	return []pie.Slice{
		{Label: LabelPrincipal, Value: r.PrincipalTotal, Color: ColorPrincipal},
		{Label: LabelContributions, Value: r.ContributionsTotal, Color: ColorContributions},
		{Label: LabelInterest, Value: r.InterestEarned, Color: ColorInterest},
	}
}

// Breakdown returns the chart slices for r: principal, contributions and
// interest, keeping only positive amounts.
func Breakdown(r Result) []pie.Slice {
	all := Legend(r)
	out := all[:0]
	for _, s := range all {
		if s.Value > 0 {
			out = append(out, s)
		}
	}
	return out
}
