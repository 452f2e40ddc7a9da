package payslip

import "strings"

type Currency struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// DefaultCurrencyCode is used when a batch names no currency or one that is
// not supported.
const DefaultCurrencyCode = "INR"

var supportedCurrencies = []Currency{
	{Code: "USD", Symbol: "$", Name: "US Dollar"},
	{Code: "EUR", Symbol: "€", Name: "Euro"},
	{Code: "GBP", Symbol: "£", Name: "British Pound"},
	{Code: "INR", Symbol: "₹", Name: "Indian Rupee"},
	{Code: "AED", Symbol: "AED", Name: "UAE Dirham"},
	{Code: "SGD", Symbol: "S$", Name: "Singapore Dollar"},
	{Code: "AUD", Symbol: "A$", Name: "Australian Dollar"},
	{Code: "CAD", Symbol: "C$", Name: "Canadian Dollar"},
	{Code: "JPY", Symbol: "¥", Name: "Japanese Yen"},
	{Code: "ZAR", Symbol: "R", Name: "South African Rand"},
}

// unitNames holds the spoken major and minor unit per currency code.
var unitNames = map[string][2]string{
	"USD": {"Dollars", "Cents"},
	"EUR": {"Euros", "Cents"},
	"GBP": {"Pounds", "Pence"},
	"INR": {"Rupees", "Paise"},
	"AED": {"Dirhams", "Fils"},
	"SGD": {"Dollars", "Cents"},
	"AUD": {"Dollars", "Cents"},
	"CAD": {"Dollars", "Cents"},
	"JPY": {"Yen", "Sen"},
}

func SupportedCurrencies() []Currency {
	out := make([]Currency, len(supportedCurrencies))
	copy(out, supportedCurrencies)
	return out
}

// ResolveCurrency returns the supported currency for code, else the default.
func ResolveCurrency(code string) Currency {
	code = strings.ToUpper(strings.TrimSpace(code))
	var fallback Currency
	for _, c := range supportedCurrencies {
		if c.Code == code {
			return c
		}
		if c.Code == DefaultCurrencyCode {
			fallback = c
		}
	}
	return fallback
}

// UnitNames returns the major and minor unit words for code. Codes without
// an entry use the code itself for both.
func UnitNames(code string) (major, minor string) {
	if names, ok := unitNames[code]; ok {
		return names[0], names[1]
	}
	return code, code
}
