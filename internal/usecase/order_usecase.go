package usecase

import (
	"context"
	"fmt"

	"github.com/styleseat/satchless/internal/domain/model"
	"github.com/styleseat/satchless/internal/event"
	repo "github.com/styleseat/satchless/internal/repository"
)

// OrderUsecase owns status transitions and order lookups.
type OrderUsecase struct {
	tx         repo.TransactionManager
	dispatcher *event.Dispatcher
	clock      Clock
}

func NewOrderUsecase(tx repo.TransactionManager, dispatcher *event.Dispatcher, clock Clock) *OrderUsecase {
	return &OrderUsecase{tx: tx, dispatcher: dispatcher, clock: clock}
}

// SetStatus is the only legal writer of Order.Status. Any status may
// follow any status; no transition table is enforced.
//
// It assigns the new status, stamps last_status_change, persists exactly
// those two columns plus any caller-supplied extras, and then — only after
// the write succeeded — emits one order_status_changed notification
// carrying the old status. extraFields holds column/value pairs the caller
// already mutated on the order (e.g. "payment_type").
func (u *OrderUsecase) SetStatus(ctx context.Context, order *model.Order, newStatus model.OrderStatus, extraFields map[string]any) error {
	oldStatus := order.Status
	order.Status = newStatus
	order.LastStatusChange = u.clock.Now()

	fields := map[string]any{
		"status":             order.Status,
		"last_status_change": order.LastStatusChange,
	}
	for k, v := range extraFields {
		fields[k] = v
	}

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		return r.Orders().UpdateFields(ctx, order.ID, fields)
	})
	if err != nil {
		// roll the in-memory state back so a retry sees the truth
		order.Status = oldStatus
		return fmt.Errorf("set status %q on order %d: %w", newStatus, order.ID, err)
	}

	if u.dispatcher != nil {
		u.dispatcher.Dispatch(ctx, event.StatusChange{Order: order, OldStatus: oldStatus})
	}
	return nil
}

// GetByToken is the customer-facing lookup, returning the order with its
// groups, items and payment variants loaded.
func (u *OrderUsecase) GetByToken(ctx context.Context, token string) (model.Order, error) {
	var out model.Order
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByToken(ctx, token)
		if err != nil {
			return err
		}
		return u.load(ctx, r, &o, &out)
	})
	return out, err
}

// GetByID loads a fully populated order.
func (u *OrderUsecase) GetByID(ctx context.Context, orderID int64) (model.Order, error) {
	var out model.Order
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if err != nil {
			return err
		}
		return u.load(ctx, r, &o, &out)
	})
	return out, err
}

func (u *OrderUsecase) load(ctx context.Context, r repo.TxRepos, o *model.Order, out *model.Order) error {
	groups, err := r.Groups().ListByOrderID(ctx, o.ID)
	if err != nil {
		return err
	}
	for i := range groups {
		items, err := r.Items().ListByGroupID(ctx, groups[i].ID)
		if err != nil {
			return err
		}
		groups[i].Items = items
	}
	o.Groups = groups

	variants, err := r.PaymentVariants().ListByOrderID(ctx, o.ID)
	if err != nil {
		return err
	}
	o.PaymentVariants = variants

	*out = *o
	return nil
}
