package usecase

import (
	"context"
	"fmt"

	"github.com/styleseat/satchless/internal/domain/model"
	"github.com/styleseat/satchless/internal/payment"
	repo "github.com/styleseat/satchless/internal/repository"
)

// PaymentUsecase drives a payment provider against a persisted order.
type PaymentUsecase struct {
	tx       repo.TransactionManager
	provider payment.Provider
}

func NewPaymentUsecase(tx repo.TransactionManager, provider payment.Provider) *PaymentUsecase {
	return &PaymentUsecase{tx: tx, provider: provider}
}

// CreateVariant asks the provider for a variant, persists it and records
// the chosen payment type on the order. Provider rejections (*payment.Failure)
// pass through untouched.
func (u *PaymentUsecase) CreateVariant(ctx context.Context, order *model.Order, form payment.Form, typ string) (*model.PaymentVariant, error) {
	variant, err := u.provider.CreateVariant(ctx, order, form, typ)
	if err != nil {
		return nil, err
	}
	variant.OrderID = order.ID

	err = u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		if err := r.PaymentVariants().Create(ctx, variant); err != nil {
			return fmt.Errorf("persist payment variant: %w", err)
		}
		return r.Orders().UpdateFields(ctx, order.ID, map[string]any{"payment_type": typ})
	})
	if err != nil {
		return nil, err
	}

	order.PaymentType = typ
	order.PaymentVariants = append(order.PaymentVariants, *variant)
	return variant, nil
}

// Confirm runs the provider's capture step against the order's
// authoritative variant. It does not transition the order status — that
// decision stays with the caller, on success and on *payment.Failure
// alike.
func (u *PaymentUsecase) Confirm(ctx context.Context, order *model.Order) error {
	variant := order.PaymentVariant()
	return u.provider.Confirm(ctx, order, order.PaymentType, variant)
}
