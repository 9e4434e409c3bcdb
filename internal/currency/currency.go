// Package currency formats and parses amounts in the Indian currency
// notation used by the frontend.
//
// Amounts below one lakh are rendered with thousand separators, larger
// amounts use the lakh (1,00,000) and crore (1,00,00,000) magnitude
// suffixes. The package is a presentation concern only, all arithmetic
// happens on decimal values.
package currency

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Symbol is the currency symbol used for display.
const Symbol = "₹"

var (
	lakh  = decimal.New(1, 5)
	crore = decimal.New(1, 7)

	printer = message.NewPrinter(language.MustParse("en-IN"))
)

var ErrInvalidAmount = errors.New("the amount could not be parsed")

// Format renders an amount for display.
func Format(amount decimal.Decimal) string {
	if amount.IsNegative() {
		return "-" + Format(amount.Neg())
	}

	switch {
	case amount.GreaterThanOrEqual(crore):
		return fmt.Sprintf("%s%s Cr", Symbol, magnitude(amount.Div(crore)))
	case amount.GreaterThanOrEqual(lakh):
		return fmt.Sprintf("%s%s L", Symbol, magnitude(amount.Div(lakh)))
	}

	if amount.IsInteger() {
		return Symbol + printer.Sprintf("%d", amount.IntPart())
	}

	return Symbol + printer.Sprintf("%.2f", amount.InexactFloat64())
}

// magnitude renders the scaled value for a suffix with at most two
// decimal places and no trailing zeros.
func magnitude(scaled decimal.Decimal) string {
	s := scaled.Round(2).String()
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}

	return s
}

// Parse is the inverse of Format. It accepts plain numbers with or
// without separators and the lakh/crore suffixed forms, with or without
// the currency symbol.
func Parse(s string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(s)
	cleaned = strings.ReplaceAll(cleaned, Symbol, "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.TrimSpace(cleaned)

	factor := decimal.New(1, 0)
	lower := strings.ToLower(cleaned)

	for _, suffix := range []struct {
		text   string
		factor decimal.Decimal
	}{
		{"crore", crore},
		{"cr", crore},
		{"lakh", lakh},
		{"l", lakh},
	} {
		if strings.HasSuffix(lower, suffix.text) {
			factor = suffix.factor
			cleaned = strings.TrimSpace(cleaned[:len(cleaned)-len(suffix.text)])
			break
		}
	}

	value, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}

	return value.Mul(factor), nil
}
