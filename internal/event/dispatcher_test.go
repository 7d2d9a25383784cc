package event

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/styleseat/satchless/internal/domain/model"
)

func TestDispatcher_DeliversInRegistrationOrder(t *testing.T) {
	d := NewDispatcher()
	var seen []string
	d.Register(SinkFunc(func(_ context.Context, _ StatusChange) {
		seen = append(seen, "first")
	}))
	d.Register(SinkFunc(func(_ context.Context, _ StatusChange) {
		seen = append(seen, "second")
	}))

	order := &model.Order{ID: 1, Status: model.OrderStatusPaymentPending}
	d.Dispatch(context.Background(), StatusChange{Order: order, OldStatus: model.OrderStatusCheckout})

	assert.Equal(t, []string{"first", "second"}, seen)
}

func TestDispatcher_CarriesOldStatus(t *testing.T) {
	d := NewDispatcher()
	var got StatusChange
	d.Register(SinkFunc(func(_ context.Context, c StatusChange) {
		got = c
	}))

	order := &model.Order{ID: 7, Status: model.OrderStatusCancelled}
	d.Dispatch(context.Background(), StatusChange{Order: order, OldStatus: model.OrderStatusDelivery})

	assert.Equal(t, model.OrderStatusDelivery, got.OldStatus)
	assert.Same(t, order, got.Order)
}

func TestDispatcher_NoSinksIsNoop(t *testing.T) {
	d := NewDispatcher()
	assert.NotPanics(t, func() {
		d.Dispatch(context.Background(), StatusChange{Order: &model.Order{}})
	})
}
