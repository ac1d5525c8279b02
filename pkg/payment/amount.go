package payment

import (
	"fmt"

	"github.com/shopspring/decimal"
)

const (
	minorUnitDigits = 2
	// maxMinorUnitWidth keeps the minor-unit count inside int64.
	maxMinorUnitWidth = 18
)

// bcdAmountMax is the EPC069-12 upper bound for a credit transfer.
var bcdAmountMax = decimal.RequireFromString("999999999.99")

// FormatMinorUnits renders amount as a zero-padded count of minor currency
// units, e.g. 1500.00 → "000000000150000" for width 15.
func FormatMinorUnits(amount decimal.Decimal, width int) (string, error) {
	if width <= 0 || width > maxMinorUnitWidth {
		return "", fmt.Errorf("%w: amount width %d", ErrInvalidField, width)
	}
	if amount.IsNegative() {
		return "", ErrNegativeAmount
	}
	units := amount.Round(minorUnitDigits).Shift(minorUnitDigits)
	if units.GreaterThanOrEqual(decimal.New(1, int32(width))) {
		return "", fmt.Errorf("%w: %s", ErrAmountOverflow, amount.String())
	}
	return fmt.Sprintf("%0*d", width, units.IntPart()), nil
}

// FormatDecimalAmount renders amount with exactly two decimals and a dot
// separator, prefixed by the currency code: 2500 → "EUR2500.00".
func FormatDecimalAmount(currency string, amount decimal.Decimal) (string, error) {
	if amount.IsNegative() {
		return "", ErrNegativeAmount
	}
	rounded := amount.Round(minorUnitDigits)
	if rounded.GreaterThan(bcdAmountMax) {
		return "", fmt.Errorf("%w: %s", ErrAmountOverflow, amount.String())
	}
	return currency + rounded.StringFixed(minorUnitDigits), nil
}
