package projection

import "math"

// Unit tells the UI how to decorate a field value.
type Unit string

const (
	UnitMoney   Unit = "money"
	UnitPercent Unit = "percent"
	UnitYears   Unit = "years"
)

// Field keys.
const (
	KeyPrincipal    = "principal"
	KeyRate         = "rate"
	KeyYears        = "years"
	KeyContribution = "contribution"
)

// Field describes one input for sliders and text entry.
type Field struct {
	Key     string
	Label   string
	Unit    Unit
	Min     float64
	Max     float64
	Step    float64
	Default float64
}

// Fields lists the inputs in display order.
var Fields = []Field{
	{Key: KeyPrincipal, Label: "Initial Principal", Unit: UnitMoney, Max: 500000, Step: 500, Default: 15000},
	{Key: KeyRate, Label: "Interest Rate", Unit: UnitPercent, Max: 25, Step: 0.1, Default: 6.5},
	{Key: KeyYears, Label: "Investment Years", Unit: UnitYears, Max: 50, Step: 1, Default: 15},
	{Key: KeyContribution, Label: "Monthly Contribution", Unit: UnitMoney, Max: 5000, Step: 50, Default: 250},
}

// FieldByKey returns the field with key.
func FieldByKey(key string) (Field, bool) {
	for _, f := range Fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

// DefaultInputs returns the starting values of every field.
func DefaultInputs() Inputs {
	var in Inputs
	for _, f := range Fields {
		in = in.With(f.Key, f.Default)
	}
	return in
}

// Clamp bounds v to the slider range.
func (f Field) Clamp(v float64) float64 {
	v = Sanitize(v)
	if v < f.Min {
		return f.Min
	}
	if v > f.Max {
		return f.Max
	}
	return v
}

// StepUp moves v one step up the slider grid.
func (f Field) StepUp(v float64) float64 {
	return f.Clamp(round(f.snap(v)+f.Step, 10))
}

// StepDown moves v one step down the slider grid.
func (f Field) StepDown(v float64) float64 {
	s := f.snap(v)
	if v-s > 1e-9 {
		// Already between grid points; snapping down is the step.
		return f.Clamp(s)
	}
	return f.Clamp(round(s-f.Step, 10))
}

// snap rounds v down to the nearest multiple of Step, tolerating float noise
// from repeated 0.1 increments.
func (f Field) snap(v float64) float64 {
	if f.Step <= 0 {
		return v
	}
	n := math.Floor(v/f.Step + 1e-9)
	return round(n*f.Step, 10)
}

// Fraction returns v's position on the slider in [0, 1].
func (f Field) Fraction(v float64) float64 {
	if f.Max <= f.Min {
		return 0
	}
	return (f.Clamp(v) - f.Min) / (f.Max - f.Min)
}

// FromFraction maps a slider position in [0, 1] back to a value on the
// step grid.
func (f Field) FromFraction(frac float64) float64 {
	if math.IsNaN(frac) || frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	v := f.Min + frac*(f.Max-f.Min)
	if f.Step > 0 {
		v = round(math.Round(v/f.Step)*f.Step, 10)
	}
	return f.Clamp(v)
}

// Value returns the input for key.
func (in Inputs) Value(key string) float64 {
	switch key {
	case KeyPrincipal:
		return in.Principal
	case KeyRate:
		return in.AnnualRatePercent
	case KeyYears:
		return in.Years
	case KeyContribution:
		return in.MonthlyContribution
	}
	return 0
}

// With returns a copy of in with key set to v (sanitized).
func (in Inputs) With(key string, v float64) Inputs {
	v = Sanitize(v)
	switch key {
	case KeyPrincipal:
		in.Principal = v
	case KeyRate:
		in.AnnualRatePercent = v
	case KeyYears:
		in.Years = v
	case KeyContribution:
		in.MonthlyContribution = v
	}
	return in
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
