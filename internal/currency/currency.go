// Package currency formats THB amounts for display and converts them to INR
// lakh at a fixed rate. None of this is a live exchange rate.
package currency

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

const (
	// Glyph is the primary currency symbol.
	Glyph = "฿"
	// INRGlyph is the secondary currency symbol.
	INRGlyph = "₹"
	// INRPerTHB is the fixed display conversion (1 THB ≈ ₹2.70).
	INRPerTHB = 2.7
	// Lakh is 100,000 rupees.
	Lakh = 100000
)

var (
	thousand  = decimal.NewFromInt(1000)
	inrPerTHB = decimal.NewFromFloat(INRPerTHB)
	lakh      = decimal.NewFromInt(Lakh)
)

// FormatK abbreviates to thousands: 538000 -> "฿538k", 950 -> "฿950".
func FormatK(thb float64) string {
	return Glyph + FormatKPlain(thb)
}

// FormatKPlain is FormatK without the currency glyph.
func FormatKPlain(thb float64) string {
	thb = finite(thb)
	d := decimal.NewFromFloat(thb)
	if thb >= 1000 {
		return d.Div(thousand).Round(0).String() + "k"
	}
	return d.Round(0).String()
}

// FormatRange renders a low–high pair in thousands: "฿538k–฿702k".
func FormatRange(lo, hi int64) string {
	return FormatK(float64(lo)) + "–" + FormatK(float64(hi))
}

// ToLakh converts a THB amount to INR lakh: thb x 2.7 / 100000.
func ToLakh(thb float64) float64 {
	return lakhDecimal(thb).InexactFloat64()
}

// FormatLakh renders the approximate whole-lakh figure: 579600 -> "~₹16L".
func FormatLakh(thb float64) string {
	return "~" + INRGlyph + lakhDecimal(thb).Round(0).String() + "L"
}

// FormatLakhRange renders a preset-card INR range with one decimal:
// (538000, 702000) -> "₹14.5L–₹19.0L".
func FormatLakhRange(lo, hi int64) string {
	return INRGlyph + lakhDecimal(float64(lo)).StringFixed(1) + "L–" +
		INRGlyph + lakhDecimal(float64(hi)).StringFixed(1) + "L"
}

// RateNote is the caption shown on the custom card.
func RateNote() string {
	return "1 THB ≈ " + INRGlyph + strconv.FormatFloat(INRPerTHB, 'f', 2, 64)
}

func lakhDecimal(thb float64) decimal.Decimal {
	return decimal.NewFromFloat(finite(thb)).Mul(inrPerTHB).Div(lakh)
}

// finite maps NaN and ±Inf to 0; decimal cannot represent them.
func finite(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return x
}
