package payment_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/paycode/pkg/payment"
)

func TestFormatMinorUnits(t *testing.T) {
	t.Parallel()

	got, err := payment.FormatMinorUnits(decimal.RequireFromString("1500.00"), 15)
	require.NoError(t, err)
	assert.Equal(t, "000000000150000", got)

	got, err = payment.FormatMinorUnits(decimal.RequireFromString("9.99"), 4)
	require.NoError(t, err)
	assert.Equal(t, "0999", got)

	_, err = payment.FormatMinorUnits(decimal.RequireFromString("100"), 4)
	assert.ErrorIs(t, err, payment.ErrAmountOverflow)

	_, err = payment.FormatMinorUnits(decimal.RequireFromString("-5"), 15)
	assert.ErrorIs(t, err, payment.ErrNegativeAmount)

	_, err = payment.FormatMinorUnits(decimal.Zero, 0)
	assert.ErrorIs(t, err, payment.ErrInvalidField)
}

func TestFormatDecimalAmount(t *testing.T) {
	t.Parallel()

	got, err := payment.FormatDecimalAmount("EUR", decimal.NewFromFloat(2500.0))
	require.NoError(t, err)
	assert.Equal(t, "EUR2500.00", got)

	got, err = payment.FormatDecimalAmount("EUR", decimal.RequireFromString("0.005"))
	require.NoError(t, err)
	assert.Equal(t, "EUR0.01", got)

	_, err = payment.FormatDecimalAmount("EUR", decimal.RequireFromString("-0.01"))
	assert.ErrorIs(t, err, payment.ErrNegativeAmount)
}
