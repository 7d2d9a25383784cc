// Package checkout defines the interfaces the order core expects from the
// external cart and catalog subsystems, and the partitioning strategy that
// splits cart contents into delivery groups.
package checkout

import (
	"github.com/shopspring/decimal"

	"github.com/styleseat/satchless/internal/domain/pricing"
)

// Cart is the pre-checkout collection an order is built from. The cart
// subsystem itself lives outside this module; order construction only
// reads it and never mutates it.
type Cart interface {
	// ID is the cart's persistent identity, used to link orders back to
	// the cart they were generated from.
	ID() int64
	// Owner is the owning user id, nil for anonymous carts.
	Owner() *int64
	// Currency is the 3-letter code all line prices are expressed in.
	Currency() string
	IsEmpty() bool
	Lines() []Line
}

// Line is one cart position.
type Line interface {
	Quantity() decimal.Decimal
	// UnitPrice is the variant's current catalog price. It is captured
	// into the ordered-item snapshot at construction time.
	UnitPrice() pricing.Price
	Variant() Variant
}

// Variant is a reference into the catalog.
type Variant interface {
	ID() int64
	// Subtype resolves the generic variant to its concrete catalog
	// subtype, which carries the display name.
	Subtype() Subtype
}

// Subtype is a concrete catalog variant.
type Subtype interface {
	DisplayName() string
}
