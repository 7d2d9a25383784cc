package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/styleseat/satchless/internal/domain/pricing"
)

// OrderedItem is a frozen snapshot of one cart line taken at
// order-creation time. The price columns never change, even if the
// referenced catalog variant is repriced or deleted later.
type OrderedItem struct {
	ID              int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	DeliveryGroupID int64 `gorm:"not null;index" json:"delivery_group_id"`
	// Weak reference into the catalog; nil once the variant is gone.
	ProductVariantID *int64          `gorm:"index" json:"product_variant_id"`
	ProductName      string          `gorm:"type:varchar(128);not null" json:"product_name"`
	Quantity         decimal.Decimal `gorm:"type:numeric(10,4);not null" json:"quantity"`
	UnitPriceNet     decimal.Decimal `gorm:"type:numeric(12,4);not null" json:"unit_price_net"`
	UnitPriceGross   decimal.Decimal `gorm:"type:numeric(12,4);not null" json:"unit_price_gross"`
	CreatedAt        time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
}

// UnitPrice returns the snapshot unit price labelled with the given
// currency, unrounded.
func (i *OrderedItem) UnitPrice(currency string) pricing.Price {
	return pricing.New(i.UnitPriceNet, i.UnitPriceGross, currency)
}

// Price is unit price × quantity, quantized to 2 decimal places
// (banker's rounding).
func (i *OrderedItem) Price(currency string) pricing.Price {
	return i.UnitPrice(currency).Mul(i.Quantity).Quantize()
}
