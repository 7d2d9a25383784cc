package repository

import (
	"context"

	"github.com/styleseat/satchless/internal/domain/model"
)

type OrderRepository interface {
	// Create persists a new order and fills in its id. Returns
	// ErrDuplicateToken when the store rejects the token.
	Create(ctx context.Context, order *model.Order) error
	FindByID(ctx context.Context, orderID int64) (model.Order, error)
	// FindByToken is the customer-facing lookup path.
	FindByToken(ctx context.Context, token string) (model.Order, error)
	TokenExists(ctx context.Context, token string) (bool, error)
	ListByUserID(ctx context.Context, userID int64) ([]model.Order, error)

	// UpdateFields writes only the given columns — the partial-write
	// contract behind SetStatus.
	UpdateFields(ctx context.Context, orderID int64, fields map[string]any) error

	// DeleteCheckoutByCart removes every checkout-status order linked to
	// the cart except the one with excludeOrderID, cleaning up abandoned
	// alternate attempts.
	DeleteCheckoutByCart(ctx context.Context, cartID int64, excludeOrderID int64) error
}
