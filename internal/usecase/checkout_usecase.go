package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/styleseat/satchless/internal/checkout"
	"github.com/styleseat/satchless/internal/domain/model"
	repo "github.com/styleseat/satchless/internal/repository"
)

const tokenAttempts = 100

// CheckoutUsecase turns a cart into a fully populated order.
type CheckoutUsecase struct {
	tx          repo.TransactionManager
	partitioner checkout.Queue
	tokens      TokenSource
	clock       Clock
}

func NewCheckoutUsecase(tx repo.TransactionManager, partitioner checkout.Queue, tokens TokenSource, clock Clock) *CheckoutUsecase {
	return &CheckoutUsecase{tx: tx, partitioner: partitioner, tokens: tokens, clock: clock}
}

// GetFromCart creates an order from the cart, possibly discarding any
// previous orders created for it.
//
// With instance nil a new order bound to the cart's owner and currency is
// created. With an instance given, its delivery groups, items and payment
// variants are purged first and the order rebuilt from the current cart
// state — regeneration is a full replace, never a merge, and calling it
// twice on the same cart state yields an equivalent order.
//
// The purge+rebuild sequence and the cleanup of abandoned checkout-status
// orders for the same cart run in one transaction. The cart itself is
// never touched.
func (u *CheckoutUsecase) GetFromCart(ctx context.Context, cart checkout.Cart, instance *model.Order) (*model.Order, error) {
	if cart.IsEmpty() {
		return nil, ErrEmptyCart
	}

	groups, err := u.partitioner.Partition(ctx, cart)
	if err != nil {
		return nil, fmt.Errorf("partition cart %d: %w", cart.ID(), err)
	}

	var order *model.Order
	err = u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		if instance == nil {
			created, err := u.createOrder(ctx, r, cart)
			if err != nil {
				return err
			}
			order = created
		} else {
			order = instance
			if err := u.purge(ctx, r, order); err != nil {
				return err
			}
		}

		for _, g := range groups {
			dg := model.DeliveryGroup{OrderID: order.ID, DeliveryType: g.DeliveryType}
			if err := r.Groups().Create(ctx, &dg); err != nil {
				return fmt.Errorf("create delivery group: %w", err)
			}
			items := make([]model.OrderedItem, 0, len(g.Lines))
			for _, line := range g.Lines {
				items = append(items, snapshotLine(dg.ID, line))
			}
			if err := r.Items().CreateBulk(ctx, dg.ID, items); err != nil {
				return fmt.Errorf("create ordered items: %w", err)
			}
			dg.Items = items
			order.Groups = append(order.Groups, dg)
		}

		// Other orders still undergoing checkout for this cart are
		// abandoned alternates; the just-built order is excluded.
		return r.Orders().DeleteCheckoutByCart(ctx, cart.ID(), order.ID)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (u *CheckoutUsecase) createOrder(ctx context.Context, r repo.TxRepos, cart checkout.Cart) (*model.Order, error) {
	token, err := u.newToken(ctx, r.Orders())
	if err != nil {
		return nil, err
	}
	now := u.clock.Now()
	order := model.Order{
		CartID:           cart.ID(),
		Status:           model.OrderStatusCheckout,
		Created:          now,
		LastStatusChange: now,
		UserID:           cart.Owner(),
		Currency:         cart.Currency(),
		Token:            token,
	}
	if err := r.Orders().Create(ctx, &order); err != nil {
		if errors.Is(err, repo.ErrDuplicateToken) {
			// the store-level unique index caught a race our pre-check
			// missed; treat it like exhaustion rather than retrying
			// inside an open transaction
			return nil, ErrTokenExhausted
		}
		return nil, fmt.Errorf("create order: %w", err)
	}
	return &order, nil
}

// purge removes everything the rebuild will recreate: items, groups and
// payment variants.
func (u *CheckoutUsecase) purge(ctx context.Context, r repo.TxRepos, order *model.Order) error {
	if err := r.Items().DeleteByOrderID(ctx, order.ID); err != nil {
		return fmt.Errorf("purge ordered items: %w", err)
	}
	if err := r.Groups().DeleteByOrderID(ctx, order.ID); err != nil {
		return fmt.Errorf("purge delivery groups: %w", err)
	}
	if err := r.PaymentVariants().DeleteByOrderID(ctx, order.ID); err != nil {
		return fmt.Errorf("purge payment variants: %w", err)
	}
	order.Groups = nil
	order.PaymentVariants = nil
	return nil
}

func (u *CheckoutUsecase) newToken(ctx context.Context, orders repo.OrderRepository) (string, error) {
	for i := 0; i < tokenAttempts; i++ {
		token := u.tokens.Token()
		exists, err := orders.TokenExists(ctx, token)
		if err != nil {
			return "", fmt.Errorf("check token: %w", err)
		}
		if !exists {
			return token, nil
		}
	}
	return "", ErrTokenExhausted
}

// snapshotLine freezes a cart line into an ordered item: current unit
// price and the display name of the variant's concrete subtype. The
// snapshot survives later catalog changes.
func snapshotLine(groupID int64, line checkout.Line) model.OrderedItem {
	price := line.UnitPrice()
	variantID := line.Variant().ID()
	return model.OrderedItem{
		DeliveryGroupID:  groupID,
		ProductVariantID: &variantID,
		ProductName:      line.Variant().Subtype().DisplayName(),
		Quantity:         line.Quantity(),
		UnitPriceNet:     price.Net,
		UnitPriceGross:   price.Gross,
	}
}
