package repository

import (
	"context"

	"github.com/styleseat/satchless/internal/domain/model"
)

type DeliveryGroupRepository interface {
	Create(ctx context.Context, group *model.DeliveryGroup) error
	ListByOrderID(ctx context.Context, orderID int64) ([]model.DeliveryGroup, error)
	DeleteByOrderID(ctx context.Context, orderID int64) error
}
