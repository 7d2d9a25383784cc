package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/styleseat/satchless/internal/domain/model"
)

type OrderedItemGormRepository struct {
	db *gorm.DB
}

func NewOrderedItemGormRepository(db *gorm.DB) *OrderedItemGormRepository {
	return &OrderedItemGormRepository{db: db}
}

func (r *OrderedItemGormRepository) CreateBulk(ctx context.Context, deliveryGroupID int64, items []model.OrderedItem) error {
	if len(items) == 0 {
		return nil
	}
	for i := range items {
		items[i].DeliveryGroupID = deliveryGroupID
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *OrderedItemGormRepository) ListByGroupID(ctx context.Context, deliveryGroupID int64) ([]model.OrderedItem, error) {
	var items []model.OrderedItem
	err := r.db.WithContext(ctx).
		Where("delivery_group_id = ?", deliveryGroupID).
		Order("id asc").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *OrderedItemGormRepository) DeleteByOrderID(ctx context.Context, orderID int64) error {
	return r.db.WithContext(ctx).
		Where("delivery_group_id IN (?)",
			r.db.Model(&model.DeliveryGroup{}).Select("id").Where("order_id = ?", orderID),
		).
		Delete(&model.OrderedItem{}).Error
}
