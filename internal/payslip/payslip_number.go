package payslip

import (
	"fmt"
	"math/rand/v2"
)

const suffixAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// FormatPayslipNumber builds PS-<yyyy><mm>-<employeeId>-<suffix>.
func FormatPayslipNumber(year, month int, employeeID, suffix string) string {
	return fmt.Sprintf("PS-%04d%02d-%s-%s", year, month, employeeID, suffix)
}

// RandomSuffix returns four random characters from [A-Z0-9]. Numbers built
// from it are not checked for collisions.
func RandomSuffix() string {
	b := make([]byte, 4)
	for i := range b {
		b[i] = suffixAlphabet[rand.IntN(len(suffixAlphabet))]
	}
	return string(b)
}
