// Package currency formats amounts for display in a chosen currency.
// Only the symbol changes between currencies; amounts are never converted.
package currency

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Currency is a selectable display currency.
type Currency struct {
	Code   string
	Symbol string
	Name   string
}

// All lists the selectable currencies in menu order.
var All = []Currency{
	{Code: "USD", Symbol: "$", Name: "US Dollar"},
	{Code: "EUR", Symbol: "€", Name: "Euro"},
	{Code: "GBP", Symbol: "£", Name: "British Pound"},
	{Code: "JPY", Symbol: "¥", Name: "Japanese Yen"},
	{Code: "INR", Symbol: "₹", Name: "Indian Rupee"},
}

// Default is used when a code is unknown.
var Default = All[0]

// printer groups digits the en-US way for every currency.
var printer = message.NewPrinter(language.AmericanEnglish)

// ByCode returns the currency for code (case-insensitive), or Default.
func ByCode(code string) Currency {
	c, ok := Lookup(code)
	if !ok {
		return Default
	}
	return c
}

// Lookup finds a currency in the catalog.
func Lookup(code string) (Currency, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	for _, c := range All {
		if c.Code == code {
			return c, true
		}
	}
	return Currency{}, false
}

// Validate reports whether code is a known ISO 4217 code offered by the catalog.
func Validate(code string) error {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return fmt.Errorf("invalid currency code %q: %w", code, err)
	}
	if _, ok := Lookup(unit.String()); !ok {
		return fmt.Errorf("unsupported currency %s", unit)
	}
	return nil
}

// Next returns the currency after code in menu order, wrapping around.
func Next(code string) Currency {
	for i, c := range All {
		if c.Code == code {
			return All[(i+1)%len(All)]
		}
	}
	return Default
}

// Index returns the menu position of code, or 0.
func Index(code string) int {
	for i, c := range All {
		if c.Code == code {
			return i
		}
	}
	return 0
}

// Label is the menu entry text, e.g. "€ - Euro".
func (c Currency) Label() string {
	return c.Symbol + " - " + c.Name
}

// Format renders amount as a whole number with grouping, e.g. "$99,078".
// Halves round away from zero.
func (c Currency) Format(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}
	n := decimal.NewFromFloat(amount).Round(0).IntPart()
	if n < 0 {
		return "-" + c.Symbol + printer.Sprintf("%d", -n)
	}
	return c.Symbol + printer.Sprintf("%d", n)
}

// Cents rounds amount to two decimal places for exports.
func Cents(amount float64) decimal.Decimal {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(amount).Round(2)
}
