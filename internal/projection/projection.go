// Package projection computes compound-growth projections with monthly
// contributions.
package projection

import "math"

// PeriodsPerYear is the compounding frequency (monthly).
const PeriodsPerYear = 12

// Inputs are the four user-supplied figures of a projection.
type Inputs struct {
	Principal           float64 `json:"principal"`
	AnnualRatePercent   float64 `json:"annual_rate_percent"`
	Years               float64 `json:"years"`
	MonthlyContribution float64 `json:"monthly_contribution"`
}

// Result splits the future value into its sources.
// TotalValue == PrincipalTotal + ContributionsTotal + InterestEarned.
type Result struct {
	TotalValue         float64 `json:"total_value"`
	PrincipalTotal     float64 `json:"principal_total"`
	ContributionsTotal float64 `json:"contributions_total"`
	InterestEarned     float64 `json:"interest_earned"`
}

// Invested is the amount paid in: principal plus all contributions.
func (r Result) Invested() float64 {
	return r.PrincipalTotal + r.ContributionsTotal
}

// Sanitize maps NaN, infinities and negative values to 0.
func Sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// Normalize returns a copy with every field sanitized.
func (in Inputs) Normalize() Inputs {
	return Inputs{
		Principal:           Sanitize(in.Principal),
		AnnualRatePercent:   Sanitize(in.AnnualRatePercent),
		Years:               Sanitize(in.Years),
		MonthlyContribution: Sanitize(in.MonthlyContribution),
	}
}

// Project computes the projection for in.
func (in Inputs) Project() Result {
	return Compute(in.Principal, in.AnnualRatePercent, in.Years, in.MonthlyContribution)
}

// Compute returns the future value of principal compounded monthly at
// annualRatePercent for years, plus an ordinary annuity of
// monthlyContribution paid at the end of each month. Invalid inputs count
// as 0; Compute never fails.
func Compute(principal, annualRatePercent, years, monthlyContribution float64) Result {
	p := Sanitize(principal)
	t := Sanitize(years)
	pmt := Sanitize(monthlyContribution)
	periodic := Sanitize(annualRatePercent) / 100 / PeriodsPerYear

	// No time elapsed: nothing grows and nothing is contributed. Kept explicit
	// so the annuity term never sees 0/0 when the rate is also 0.
	if t == 0 {
		return Result{
			TotalValue:     p,
			PrincipalTotal: p,
		}
	}

	periods := PeriodsPerYear * t
	growth := math.Pow(1+periodic, periods)

	// growth may overflow to +Inf on long horizons; 0*Inf would be NaN.
	var principalFV float64
	if p > 0 {
		principalFV = p * growth
	}

	var contributionsFV float64
	switch {
	case pmt == 0:
	case periodic > 0:
		contributionsFV = pmt * (growth - 1) / periodic
	default:
		contributionsFV = pmt * periods
	}

	total := principalFV + contributionsFV
	contributed := pmt * periods

	return Result{
		TotalValue:         total,
		PrincipalTotal:     p,
		ContributionsTotal: contributed,
		InterestEarned:     total - (p + contributed),
	}
}
