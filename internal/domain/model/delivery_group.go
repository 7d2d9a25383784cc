package model

import (
	"github.com/styleseat/satchless/internal/domain/pricing"
)

// DeliveryGroup is a subset of an order's items sharing a delivery method.
type DeliveryGroup struct {
	ID           int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID      int64  `gorm:"not null;index" json:"order_id"`
	DeliveryType string `gorm:"type:varchar(256)" json:"delivery_type"`

	Items []OrderedItem `gorm:"constraint:OnDelete:CASCADE" json:"items"`
}

// Subtotal sums the item prices in the given currency. An empty group
// yields zero in that currency.
func (g *DeliveryGroup) Subtotal(currency string) (pricing.Price, error) {
	total := pricing.Zero(currency)
	for i := range g.Items {
		var err error
		total, err = total.Add(g.Items[i].Price(currency))
		if err != nil {
			return pricing.Price{}, err
		}
	}
	return total, nil
}

// Total is an alias for Subtotal; delivery surcharges live on concrete
// delivery types outside this core.
func (g *DeliveryGroup) Total(currency string) (pricing.Price, error) {
	return g.Subtotal(currency)
}
