package projection

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-6

func TestCompute_ZeroTime(t *testing.T) {
	for _, p := range []float64{0, 1, 15000} {
		for _, r := range []float64{0, 6.5, 25} {
			for _, pmt := range []float64{0, 250} {
				got := Compute(p, r, 0, pmt)
				assert.Equal(t, Result{TotalValue: p, PrincipalTotal: p}, got, "P=%v r=%v PMT=%v", p, r, pmt)
			}
		}
	}
}

func TestCompute_Conservation(t *testing.T) {
	inputs := []Inputs{
		{15000, 6.5, 15, 250},
		{0, 3, 2.5, 100},
		{1e6, 25, 50, 5000},
		{123.45, 0.1, 0.5, 0},
		{0, 0, 10, 0},
	}
	for _, in := range inputs {
		r := in.Project()
		sum := r.PrincipalTotal + r.ContributionsTotal + r.InterestEarned
		assert.InDelta(t, r.TotalValue, sum, math.Max(eps, r.TotalValue*1e-12), "%+v", in)
		assert.GreaterOrEqual(t, r.InterestEarned, -eps, "%+v", in)
	}
}

func TestCompute_ZeroRateLinear(t *testing.T) {
	for _, tc := range []struct{ p, years, pmt float64 }{
		{1000, 10, 100},
		{0, 2.5, 40},
		{500, 1, 0},
	} {
		r := Compute(tc.p, 0, tc.years, tc.pmt)
		assert.InDelta(t, tc.p+tc.pmt*12*tc.years, r.TotalValue, eps)
		assert.InDelta(t, 0, r.InterestEarned, eps)
	}
}

func TestCompute_Monotonic(t *testing.T) {
	base := Inputs{15000, 6.5, 15, 250}
	baseTotal := base.Project().TotalValue

	bumps := map[string]Inputs{
		"principal":    {15001, 6.5, 15, 250},
		"rate":         {15000, 6.6, 15, 250},
		"years":        {15000, 6.5, 15.5, 250},
		"contribution": {15000, 6.5, 15, 251},
	}
	for name, in := range bumps {
		assert.Greater(t, in.Project().TotalValue, baseTotal, name)
	}

	// Walking each input upward never decreases the total.
	for _, f := range Fields {
		prev := -1.0
		for v := f.Min; v <= f.Max; v += (f.Max - f.Min) / 20 {
			total := base.With(f.Key, v).Project().TotalValue
			assert.GreaterOrEqual(t, total, prev, "%s=%v", f.Key, v)
			prev = total
		}
	}
}

func TestCompute_ScenarioA(t *testing.T) {
	r := Compute(15000, 6.5, 15, 250)

	periodic := 0.065 / 12
	growth := math.Pow(1+periodic, 180)
	wantTotal := 15000*growth + 250*(growth-1)/periodic

	assert.InDelta(t, wantTotal, r.TotalValue, 1e-9)
	assert.InDelta(t, 115549.20, r.TotalValue, 0.01)
	assert.Equal(t, 15000.0, r.PrincipalTotal)
	assert.Equal(t, 45000.0, r.ContributionsTotal)
	assert.InDelta(t, 55549.20, r.InterestEarned, 0.01)
	assert.InDelta(t, 60000, r.Invested(), eps)
}

func TestCompute_ScenarioB(t *testing.T) {
	assert.Equal(t, Result{}, Compute(0, 0, 0, 0))
}

func TestCompute_InvalidInputsCountAsZero(t *testing.T) {
	nan := math.NaN()
	assert.Equal(t, Result{}, Compute(nan, nan, nan, nan))
	assert.Equal(t, Compute(0, 5, 10, 100), Compute(-100, 5, 10, 100))
	assert.Equal(t, Compute(100, 0, 10, 100), Compute(100, -5, 10, 100))
	assert.Equal(t, Compute(100, 5, 0, 100), Compute(100, 5, math.Inf(1), 100))
	assert.Equal(t, Compute(100, 5, 10, 0), Compute(100, 5, 10, nan))
}

func TestCompute_OverflowStaysNonNegative(t *testing.T) {
	assert.Equal(t, Result{}, Compute(0, 5, 1e6, 0))

	r := Compute(100, 5, 1e6, 0)
	assert.True(t, math.IsInf(r.TotalValue, 1))
	assert.True(t, math.IsInf(r.InterestEarned, 1))
	assert.Equal(t, 0.0, r.ContributionsTotal)

	r = Compute(0, 5, 1e6, 10)
	assert.False(t, math.IsNaN(r.TotalValue))
	assert.Equal(t, 0.0, r.PrincipalTotal)
}

func TestCompute_FractionalYears(t *testing.T) {
	r := Compute(1000, 12, 0.5, 0)
	assert.InDelta(t, 1000*math.Pow(1.01, 6), r.TotalValue, eps)
	assert.Equal(t, 0.0, r.ContributionsTotal)
}

func TestCompute_Idempotent(t *testing.T) {
	assert.Equal(t, Compute(15000, 6.5, 15, 250), Compute(15000, 6.5, 15, 250))
}

func TestNormalize(t *testing.T) {
	in := Inputs{Principal: -1, AnnualRatePercent: math.NaN(), Years: math.Inf(-1), MonthlyContribution: 7}
	assert.Equal(t, Inputs{MonthlyContribution: 7}, in.Normalize())
}

func TestSchedule(t *testing.T) {
	in := Inputs{15000, 6.5, 15, 250}
	rows := Schedule(in)
	require.Len(t, rows, 15)

	assert.Equal(t, 1.0, rows[0].Year)
	assert.InDelta(t, 19095.59, rows[0].Balance, 0.01)
	assert.InDelta(t, 38410.75, rows[4].Balance, 0.01)

	last := rows[len(rows)-1]
	r := in.Project()
	assert.Equal(t, r.TotalValue, last.Balance)
	assert.Equal(t, r.InterestEarned, last.Interest)

	for i := 1; i < len(rows); i++ {
		assert.Greater(t, rows[i].Balance, rows[i-1].Balance)
	}
}

func TestSchedule_FractionalAndEmpty(t *testing.T) {
	rows := Schedule(Inputs{Principal: 100, Years: 2.5, MonthlyContribution: 10})
	require.Len(t, rows, 3)
	assert.Equal(t, []float64{1, 2, 2.5}, []float64{rows[0].Year, rows[1].Year, rows[2].Year})
	assert.InDelta(t, 400, rows[2].Balance, eps)

	assert.Empty(t, Schedule(Inputs{Principal: 100}))
}

func TestSchedule_HorizonCap(t *testing.T) {
	in := Inputs{Principal: 100, AnnualRatePercent: 5, MonthlyContribution: 10}

	for _, y := range []float64{MaxScheduleYears + 0.5, 1e9, 1e19, math.MaxFloat64} {
		in.Years = y
		assert.NotPanics(t, func() { assert.Empty(t, Schedule(in)) }, "years=%v", y)
	}

	in.Years = MaxScheduleYears
	assert.Len(t, Schedule(in), MaxScheduleYears)
}

func TestBreakdown(t *testing.T) {
	r := Compute(15000, 6.5, 15, 250)
	slices := Breakdown(r)
	require.Len(t, slices, 3)
	assert.Equal(t, LabelPrincipal, slices[0].Label)
	assert.Equal(t, ColorContributions, slices[1].Color)
	assert.Equal(t, r.InterestEarned, slices[2].Value)

	// No contributions and no interest leave just the principal.
	slices = Breakdown(Compute(1000, 0, 5, 0))
	require.Len(t, slices, 1)
	assert.Equal(t, LabelPrincipal, slices[0].Label)

	assert.Empty(t, Breakdown(Result{}))
	assert.Len(t, Legend(Result{}), 3)
}
