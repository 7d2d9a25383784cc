package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentVariant is a provider-created payment instance attached to an
// order. Several may exist historically; only the first by creation is
// authoritative (see Order.PaymentVariant).
type PaymentVariant struct {
	ID          int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID     int64           `gorm:"not null;index" json:"order_id"`
	Name        string          `gorm:"type:varchar(128);not null" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	// Scalar surcharge amount in the order's currency.
	Price   decimal.Decimal `gorm:"type:numeric(12,4);not null" json:"price"`
	Created time.Time       `gorm:"not null;autoCreateTime" json:"created"`
}
