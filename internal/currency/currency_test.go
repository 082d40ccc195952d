package currency

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	usd := ByCode("USD")
	assert.Equal(t, "$1,235", usd.Format(1234.5))
	assert.Equal(t, "$0", usd.Format(0))
	assert.Equal(t, "$999", usd.Format(999.49))
	assert.Equal(t, "$115,549", usd.Format(115549.2039))
	assert.Equal(t, "$1,000,000", usd.Format(999999.5))
	assert.Equal(t, "-$5", usd.Format(-4.6))
	assert.Equal(t, "$0", usd.Format(math.NaN()))

	assert.Equal(t, "¥1,235", ByCode("JPY").Format(1234.5))
	assert.Equal(t, "€12", ByCode("eur").Format(12))
	assert.Equal(t, "₹45,000", ByCode("INR").Format(45000))
}

func TestByCodeFallsBack(t *testing.T) {
	assert.Equal(t, Default, ByCode("XYZ"))
	assert.Equal(t, "GBP", ByCode(" gbp ").Code)
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate("EUR"))
	assert.Error(t, Validate("CHF"))
	assert.Error(t, Validate("nope"))
}

func TestNextAndIndex(t *testing.T) {
	assert.Equal(t, "EUR", Next("USD").Code)
	assert.Equal(t, "USD", Next("INR").Code)
	assert.Equal(t, Default, Next("XYZ"))
	assert.Equal(t, 3, Index("JPY"))
	assert.Equal(t, 0, Index("XYZ"))
	assert.Equal(t, "£ - British Pound", ByCode("GBP").Label())
}

func TestCents(t *testing.T) {
	assert.Equal(t, "115549.2", Cents(115549.2039).String())
	assert.Equal(t, "0.13", Cents(0.125).String())
	assert.True(t, Cents(math.Inf(1)).IsZero())
}
