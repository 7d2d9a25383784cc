package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestPrice_Add(t *testing.T) {
	a := New(dec("10.00"), dec("12.30"), "EUR")
	b := New(dec("5.00"), dec("6.15"), "EUR")

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.True(t, sum.Net.Equal(dec("15.00")))
	assert.True(t, sum.Gross.Equal(dec("18.45")))
	assert.Equal(t, "EUR", sum.Currency)
}

func TestPrice_Add_CurrencyMismatch(t *testing.T) {
	a := New(dec("10.00"), dec("12.30"), "EUR")
	b := New(dec("5.00"), dec("6.15"), "USD")

	_, err := a.Add(b)
	assert.ErrorIs(t, err, ErrCurrencyMismatch)
}

func TestPrice_Mul_DoesNotRound(t *testing.T) {
	p := New(dec("0.333"), dec("0.333"), "EUR").Mul(dec("3"))

	// intermediate results keep full precision
	assert.True(t, p.Net.Equal(dec("0.999")))
	assert.True(t, p.Quantize().Net.Equal(dec("1.00")))
}

func TestPrice_Quantize_BankersRounding(t *testing.T) {
	// half-even: 0.125 -> 0.12, 0.135 -> 0.14
	cases := []struct {
		in   string
		want string
	}{
		{"0.125", "0.12"},
		{"0.135", "0.14"},
		{"2.675", "2.68"},
		{"2.665", "2.66"},
		{"1.005", "1.00"},
	}
	for _, tc := range cases {
		got := New(dec(tc.in), dec(tc.in), "EUR").Quantize()
		assert.True(t, got.Net.Equal(dec(tc.want)), "quantize(%s) = %s, want %s", tc.in, got.Net, tc.want)
	}
}

func TestZero_IsAddIdentity(t *testing.T) {
	p := New(dec("7.77"), dec("9.99"), "EUR")

	sum, err := Zero("EUR").Add(p)
	require.NoError(t, err)
	assert.True(t, sum.Equal(p))
}

func TestSum_EmptyYieldsZero(t *testing.T) {
	sum, err := Sum("EUR")
	require.NoError(t, err)
	assert.True(t, sum.IsZero())
	assert.Equal(t, "EUR", sum.Currency)
}

func TestSum_PropagatesMismatch(t *testing.T) {
	_, err := Sum("EUR", New(dec("1"), dec("1"), "USD"))
	assert.ErrorIs(t, err, ErrCurrencyMismatch)
}

func TestFromScalar(t *testing.T) {
	p := FromScalar(dec("4.00"), "EUR")
	assert.True(t, p.Net.Equal(p.Gross))
	assert.True(t, p.Net.Equal(dec("4.00")))
}
