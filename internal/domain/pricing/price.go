package pricing

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrCurrencyMismatch is returned when arithmetic is attempted on prices
// carrying different currency codes. Currencies are opaque — there is no
// conversion.
var ErrCurrencyMismatch = errors.New("pricing: currency mismatch")

// Price is an immutable net/gross amount in a single currency.
// All methods return a new value; the receiver is never modified.
type Price struct {
	Net      decimal.Decimal
	Gross    decimal.Decimal
	Currency string
}

// New builds a price from explicit net and gross amounts.
func New(net, gross decimal.Decimal, currency string) Price {
	return Price{Net: net, Gross: gross, Currency: currency}
}

// FromScalar builds a price where net equals gross. Payment surcharges are
// stored as plain amounts and widened this way before summation.
func FromScalar(v decimal.Decimal, currency string) Price {
	return Price{Net: v, Gross: v, Currency: currency}
}

// Zero is the identity element for Add in the given currency.
func Zero(currency string) Price {
	return Price{Net: decimal.Zero, Gross: decimal.Zero, Currency: currency}
}

// Add returns p + q. Both operands must carry the same currency code.
func (p Price) Add(q Price) (Price, error) {
	if p.Currency != q.Currency {
		return Price{}, fmt.Errorf("%w: %q + %q", ErrCurrencyMismatch, p.Currency, q.Currency)
	}
	return Price{
		Net:      p.Net.Add(q.Net),
		Gross:    p.Gross.Add(q.Gross),
		Currency: p.Currency,
	}, nil
}

// Mul scales both amounts by the given factor. The result is NOT rounded;
// call Quantize at the total boundary.
func (p Price) Mul(factor decimal.Decimal) Price {
	return Price{
		Net:      p.Net.Mul(factor),
		Gross:    p.Gross.Mul(factor),
		Currency: p.Currency,
	}
}

// Quantize rounds both amounts to 2 decimal places using banker's rounding
// (round half to even). Rounding happens only when a line, group or order
// total is computed, never on the stored unit snapshots.
func (p Price) Quantize() Price {
	return Price{
		Net:      p.Net.RoundBank(2),
		Gross:    p.Gross.RoundBank(2),
		Currency: p.Currency,
	}
}

// IsZero reports whether both amounts are zero.
func (p Price) IsZero() bool {
	return p.Net.IsZero() && p.Gross.IsZero()
}

// Equal reports amount and currency equality.
func (p Price) Equal(q Price) bool {
	return p.Currency == q.Currency && p.Net.Equal(q.Net) && p.Gross.Equal(q.Gross)
}

func (p Price) String() string {
	return fmt.Sprintf("%s/%s %s", p.Net, p.Gross, p.Currency)
}

// Sum folds prices with Zero(currency) as the seed, so summing nothing is
// well-defined and yields zero.
func Sum(currency string, prices ...Price) (Price, error) {
	total := Zero(currency)
	for _, p := range prices {
		var err error
		total, err = total.Add(p)
		if err != nil {
			return Price{}, err
		}
	}
	return total, nil
}
