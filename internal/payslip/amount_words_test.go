package payslip_test

import (
	"math"
	"testing"

	"go-payslip/internal/payslip"

	"github.com/stretchr/testify/assert"
)

func TestAmountInWords(t *testing.T) {
	cases := []struct {
		name     string
		amount   string
		currency string
		want     string
	}{
		{"zero", "0", "INR", "Zero Rupees Only"},
		{"thousands", "64000", "INR", "Sixty Four Thousand Rupees Only"},
		{"paise", "64000.50", "INR", "Sixty Four Thousand Rupees and Fifty Paise Only"},
		{"teens", "1013.19", "USD", "One Thousand Thirteen Dollars and Nineteen Cents Only"},
		{"millions", "1234567.89", "EUR", "One Million Two Hundred Thirty Four Thousand Five Hundred Sixty Seven Euros and Eighty Nine Cents Only"},
		{"rounds to cents first", "10.005", "GBP", "Ten Pounds and One Pence Only"},
		{"rounds up to whole", "99.999", "AED", "One Hundred Dirhams Only"},
		{"code without unit names", "100", "ZAR", "One Hundred ZAR Only"},
		{"negative", "-5", "USD", "Minus Five Dollars Only"},
		{"past int64", "100000000000000000000", "INR", "One Hundred Quintillion Rupees Only"},
		{"int64 boundary", "9223372036854775808.25", "USD", "Nine Quintillion Two Hundred Twenty Three Quadrillion Three Hundred Seventy Two Trillion Thirty Six Billion Eight Hundred Fifty Four Million Seven Hundred Seventy Five Thousand Eight Hundred Eight Dollars and Twenty Five Cents Only"},
		{"past the largest scale", "1000000000000000000000000000000000005", "INR", "One Thousand Decillion Five Rupees Only"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, payslip.AmountInWords(dec(tc.amount), tc.currency))
		})
	}
}

func TestNumberToWords(t *testing.T) {
	assert.Equal(t, "Zero", payslip.NumberToWords(0))
	assert.Equal(t, "Twenty", payslip.NumberToWords(20))
	assert.Equal(t, "One Hundred", payslip.NumberToWords(100))
	assert.Equal(t, "One Million One", payslip.NumberToWords(1_000_001))
	assert.Equal(t, "Two Billion", payslip.NumberToWords(2_000_000_000))
	assert.Equal(t,
		"Eighteen Quintillion Four Hundred Forty Six Quadrillion Seven Hundred Forty Four Trillion Seventy Three Billion Seven Hundred Nine Million Five Hundred Fifty One Thousand Six Hundred Fifteen",
		payslip.NumberToWords(math.MaxUint64),
	)
}

func TestResolveCurrency(t *testing.T) {
	assert.Equal(t, "USD", payslip.ResolveCurrency("usd").Code)
	assert.Equal(t, "INR", payslip.ResolveCurrency("").Code)
	assert.Equal(t, "INR", payslip.ResolveCurrency("BTC").Code)
	assert.Len(t, payslip.SupportedCurrencies(), 10)
}
