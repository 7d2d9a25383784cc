package repository

import (
	"context"

	"gorm.io/gorm"

	repo "github.com/styleseat/satchless/internal/repository"
)

type txReposGorm struct {
	orders          repo.OrderRepository
	groups          repo.DeliveryGroupRepository
	items           repo.OrderedItemRepository
	paymentVariants repo.PaymentVariantRepository
}

func (r *txReposGorm) Orders() repo.OrderRepository                   { return r.orders }
func (r *txReposGorm) Groups() repo.DeliveryGroupRepository           { return r.groups }
func (r *txReposGorm) Items() repo.OrderedItemRepository              { return r.items }
func (r *txReposGorm) PaymentVariants() repo.PaymentVariantRepository { return r.paymentVariants }

type TxManagerGorm struct {
	db *gorm.DB
}

func NewTxManagerGorm(db *gorm.DB) *TxManagerGorm {
	return &TxManagerGorm{db: db}
}

func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// repositories are rebuilt on the transactional handle
		r := &txReposGorm{
			orders:          NewOrderGormRepository(tx),
			groups:          NewDeliveryGroupGormRepository(tx),
			items:           NewOrderedItemGormRepository(tx),
			paymentVariants: NewPaymentVariantGormRepository(tx),
		}
		return fn(r)
	})
}
