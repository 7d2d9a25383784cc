package repository

import (
	"context"

	"github.com/styleseat/satchless/internal/domain/model"
)

type PaymentVariantRepository interface {
	Create(ctx context.Context, variant *model.PaymentVariant) error
	// ListByOrderID returns variants in creation order; the first one is
	// the authoritative variant for the order.
	ListByOrderID(ctx context.Context, orderID int64) ([]model.PaymentVariant, error)
	DeleteByOrderID(ctx context.Context, orderID int64) error
}
