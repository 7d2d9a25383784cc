package repository

import (
	"context"

	"github.com/styleseat/satchless/internal/domain/model"
)

type OrderedItemRepository interface {
	CreateBulk(ctx context.Context, deliveryGroupID int64, items []model.OrderedItem) error
	ListByGroupID(ctx context.Context, deliveryGroupID int64) ([]model.OrderedItem, error)
	// DeleteByOrderID removes the items of every group belonging to the
	// order, ahead of the groups themselves.
	DeleteByOrderID(ctx context.Context, orderID int64) error
}
