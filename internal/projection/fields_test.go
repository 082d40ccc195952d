package projection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultInputs(t *testing.T) {
	assert.Equal(t, Inputs{15000, 6.5, 15, 250}, DefaultInputs())
}

func TestFieldStepping(t *testing.T) {
	rate, ok := FieldByKey(KeyRate)
	require.True(t, ok)

	v := 6.5
	for i := 0; i < 5; i++ {
		v = rate.StepUp(v)
	}
	assert.Equal(t, 7.0, v)

	v = rate.StepDown(v)
	assert.Equal(t, 6.9, v)

	assert.Equal(t, 25.0, rate.StepUp(25))
	assert.Equal(t, 0.0, rate.StepDown(0))
	assert.Equal(t, 0.0, rate.StepDown(0.05))
}

func TestFieldStepping_OffGrid(t *testing.T) {
	principal, _ := FieldByKey(KeyPrincipal)
	assert.Equal(t, 1500.0, principal.StepUp(1234))
	assert.Equal(t, 1000.0, principal.StepDown(1234))
	assert.Equal(t, 500.0, principal.StepDown(1000))
	// Typed values above the slider maximum snap back into range on the next step.
	assert.Equal(t, 500000.0, principal.StepUp(750000))
}

func TestFieldFraction(t *testing.T) {
	years, _ := FieldByKey(KeyYears)
	assert.Equal(t, 0.3, years.Fraction(15))
	assert.Equal(t, 1.0, years.Fraction(80))
	assert.Equal(t, 0.0, years.Fraction(-3))
}

func TestInputsWithAndValue(t *testing.T) {
	in := Inputs{}.With(KeyContribution, 300).With(KeyYears, -2)
	assert.Equal(t, 300.0, in.Value(KeyContribution))
	assert.Equal(t, 0.0, in.Value(KeyYears))
	assert.Equal(t, 0.0, in.Value("unknown"))
	assert.Equal(t, in, in.With("unknown", 5))

	_, ok := FieldByKey("unknown")
	assert.False(t, ok)
}

func TestFieldFromFraction(t *testing.T) {
	rate, _ := FieldByKey(KeyRate)
	assert.Equal(t, 0.0, rate.FromFraction(-1))
	assert.Equal(t, 25.0, rate.FromFraction(2))
	assert.Equal(t, 6.5, rate.FromFraction(0.26))
	assert.Equal(t, 12.5, rate.FromFraction(0.5))

	principal, _ := FieldByKey(KeyPrincipal)
	assert.Equal(t, 15000.0, principal.FromFraction(0.0301))
}
