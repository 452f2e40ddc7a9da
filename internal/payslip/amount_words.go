package payslip

import (
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	smallNumbers = []string{
		"Zero", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
		"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
		"Seventeen", "Eighteen", "Nineteen",
	}
	tensNames = []string{
		"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
	}
	scaleNames = []string{
		"", "Thousand", "Million", "Billion", "Trillion", "Quadrillion", "Quintillion",
		"Sextillion", "Septillion", "Octillion", "Nonillion", "Decillion",
	}
	thousand = big.NewInt(1000)
)

// AmountInWords spells out amount for currencyCode, for example
// "Sixty Four Thousand Rupees and Fifty Paise Only". The amount is rounded to
// whole cents before it is split.
func AmountInWords(amount decimal.Decimal, currencyCode string) string {
	major, minor := UnitNames(currencyCode)

	rounded := amount.Round(2)
	prefix := ""
	if rounded.IsNegative() {
		prefix = "Minus "
		rounded = rounded.Neg()
	}

	whole := rounded.Truncate(0)
	cents := rounded.Sub(whole).Shift(2).IntPart()

	words := prefix + integerToWords(whole.BigInt()) + " " + major
	if cents > 0 {
		words += " and " + NumberToWords(uint64(cents)) + " " + minor
	}
	return words + " Only"
}

// NumberToWords spells n using the short scale.
func NumberToWords(n uint64) string {
	return integerToWords(new(big.Int).SetUint64(n))
}

// integerToWords spells a non-negative n. Values past the largest scale name
// are counted in that scale, as in "One Thousand Decillion".
func integerToWords(n *big.Int) string {
	if n.Sign() == 0 {
		return smallNumbers[0]
	}
	return strings.Join(scaleGroups(n), " ")
}

func scaleGroups(n *big.Int) []string {
	top := len(scaleNames) - 1
	rest := new(big.Int).Set(n)
	chunk := new(big.Int)

	var groups []string
	for scale := 0; rest.Sign() > 0; scale++ {
		if scale == top {
			high := append(scaleGroups(rest), scaleNames[top])
			return append(high, groups...)
		}
		rest.QuoRem(rest, thousand, chunk)
		if chunk.Sign() == 0 {
			continue
		}
		group := hundredsToWords(chunk.Uint64())
		if scaleNames[scale] != "" {
			group += " " + scaleNames[scale]
		}
		groups = append([]string{group}, groups...)
	}
	return groups
}

func hundredsToWords(n uint64) string {
	var parts []string
	if n >= 100 {
		parts = append(parts, smallNumbers[n/100], "Hundred")
		n %= 100
	}
	switch {
	case n == 0:
	case n < 20:
		parts = append(parts, smallNumbers[n])
	default:
		parts = append(parts, tensNames[n/10])
		if n%10 != 0 {
			parts = append(parts, smallNumbers[n%10])
		}
	}
	return strings.Join(parts, " ")
}
