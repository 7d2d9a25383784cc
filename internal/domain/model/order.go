package model

import (
	"fmt"
	"time"

	"github.com/styleseat/satchless/internal/domain/pricing"
)

type OrderStatus string

const (
	OrderStatusCheckout        OrderStatus = "checkout"
	OrderStatusPaymentPending  OrderStatus = "payment-pending"
	OrderStatusPaymentComplete OrderStatus = "payment-complete"
	OrderStatusPaymentFailed   OrderStatus = "payment-failed"
	OrderStatusDelivery        OrderStatus = "delivery"
	OrderStatusCancelled       OrderStatus = "cancelled"
)

// Order is the aggregate root for a checkout. It owns its delivery groups
// and payment variants; deleting the order deletes both.
//
// Do not assign Status directly — all transitions go through
// OrderUsecase.SetStatus so the partial write and the status-changed
// notification stay paired.
type Order struct {
	ID               int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	CartID           int64       `gorm:"not null;index" json:"cart_id"`
	Status           OrderStatus `gorm:"type:varchar(32);not null;index;default:'checkout'" json:"status"`
	Created          time.Time   `gorm:"not null;autoCreateTime" json:"created"`
	LastStatusChange time.Time   `gorm:"not null" json:"last_status_change"`
	UserID           *int64      `gorm:"index" json:"user_id"`
	Currency         string      `gorm:"type:varchar(3);not null" json:"currency"`

	BillingFirstName      string `gorm:"type:varchar(256)" json:"billing_first_name"`
	BillingLastName       string `gorm:"type:varchar(256)" json:"billing_last_name"`
	BillingCompanyName    string `gorm:"type:varchar(256)" json:"billing_company_name"`
	BillingStreetAddress1 string `gorm:"type:varchar(256)" json:"billing_street_address_1"`
	BillingStreetAddress2 string `gorm:"type:varchar(256)" json:"billing_street_address_2"`
	BillingCity           string `gorm:"type:varchar(256)" json:"billing_city"`
	BillingPostalCode     string `gorm:"type:varchar(20)" json:"billing_postal_code"`
	BillingCountry        string `gorm:"type:varchar(2)" json:"billing_country"`
	BillingCountryArea    string `gorm:"type:varchar(128)" json:"billing_country_area"`
	BillingTaxID          string `gorm:"type:varchar(40)" json:"billing_tax_id"`
	BillingPhone          string `gorm:"type:varchar(30)" json:"billing_phone"`

	PaymentType string `gorm:"type:varchar(256)" json:"payment_type"`
	// Token is assigned exactly once, at first save. 32 chars, unique
	// across all orders (enforced by the store).
	Token string `gorm:"type:varchar(32);uniqueIndex" json:"token"`

	Groups          []DeliveryGroup  `gorm:"constraint:OnDelete:CASCADE" json:"groups"`
	PaymentVariants []PaymentVariant `gorm:"constraint:OnDelete:CASCADE" json:"payment_variants"`
}

func (o *Order) BillingFullName() string {
	return fmt.Sprintf("%s %s", o.BillingFirstName, o.BillingLastName)
}

// Subtotal sums the delivery group subtotals in the order's currency.
// An order with no groups yields zero.
func (o *Order) Subtotal() (pricing.Price, error) {
	total := pricing.Zero(o.Currency)
	for i := range o.Groups {
		sub, err := o.Groups[i].Subtotal(o.Currency)
		if err != nil {
			return pricing.Price{}, err
		}
		total, err = total.Add(sub)
		if err != nil {
			return pricing.Price{}, err
		}
	}
	return total, nil
}

// PaymentPrice sums the scalar prices of all payment variants into a
// net==gross price in the order's currency.
func (o *Order) PaymentPrice() pricing.Price {
	total := pricing.Zero(o.Currency)
	for i := range o.PaymentVariants {
		// widened scalars share the order currency, Add cannot mismatch
		total, _ = total.Add(pricing.FromScalar(o.PaymentVariants[i].Price, o.Currency))
	}
	return total
}

// Total is the payment price plus the subtotal of all groups.
func (o *Order) Total() (pricing.Price, error) {
	sub, err := o.Subtotal()
	if err != nil {
		return pricing.Price{}, err
	}
	return o.PaymentPrice().Add(sub)
}

// PaymentVariant returns the authoritative variant — the first by
// creation — or nil when none exists.
func (o *Order) PaymentVariant() *PaymentVariant {
	if len(o.PaymentVariants) == 0 {
		return nil
	}
	first := &o.PaymentVariants[0]
	for i := 1; i < len(o.PaymentVariants); i++ {
		if o.PaymentVariants[i].ID < first.ID {
			first = &o.PaymentVariants[i]
		}
	}
	return first
}
