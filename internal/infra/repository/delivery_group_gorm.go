package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/styleseat/satchless/internal/domain/model"
)

type DeliveryGroupGormRepository struct {
	db *gorm.DB
}

func NewDeliveryGroupGormRepository(db *gorm.DB) *DeliveryGroupGormRepository {
	return &DeliveryGroupGormRepository{db: db}
}

func (r *DeliveryGroupGormRepository) Create(ctx context.Context, group *model.DeliveryGroup) error {
	return r.db.WithContext(ctx).Create(group).Error
}

func (r *DeliveryGroupGormRepository) ListByOrderID(ctx context.Context, orderID int64) ([]model.DeliveryGroup, error) {
	var groups []model.DeliveryGroup
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("id asc").
		Find(&groups).Error
	if err != nil {
		return nil, err
	}
	return groups, nil
}

func (r *DeliveryGroupGormRepository) DeleteByOrderID(ctx context.Context, orderID int64) error {
	return r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Delete(&model.DeliveryGroup{}).Error
}
