package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/styleseat/satchless/internal/domain/model"
)

type PaymentVariantGormRepository struct {
	db *gorm.DB
}

func NewPaymentVariantGormRepository(db *gorm.DB) *PaymentVariantGormRepository {
	return &PaymentVariantGormRepository{db: db}
}

func (r *PaymentVariantGormRepository) Create(ctx context.Context, variant *model.PaymentVariant) error {
	return r.db.WithContext(ctx).Create(variant).Error
}

func (r *PaymentVariantGormRepository) ListByOrderID(ctx context.Context, orderID int64) ([]model.PaymentVariant, error) {
	var variants []model.PaymentVariant
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("id asc").
		Find(&variants).Error
	if err != nil {
		return nil, err
	}
	return variants, nil
}

func (r *PaymentVariantGormRepository) DeleteByOrderID(ctx context.Context, orderID int64) error {
	return r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Delete(&model.PaymentVariant{}).Error
}
