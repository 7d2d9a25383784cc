// Package event carries the order-status-changed notification to
// registered observers. Delivery is synchronous and in-process; a sink
// runs after the status write is durable, never before.
package event

import (
	"context"
	"sync"

	"github.com/styleseat/satchless/internal/domain/model"
)

// StatusChange is the payload handed to every sink.
type StatusChange struct {
	Order     *model.Order
	OldStatus model.OrderStatus
}

// Sink consumes status-change notifications. Sinks own their failure
// handling; a sink error never unwinds the status transition that is
// already persisted.
type Sink interface {
	OrderStatusChanged(ctx context.Context, change StatusChange)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(ctx context.Context, change StatusChange)

func (f SinkFunc) OrderStatusChanged(ctx context.Context, change StatusChange) {
	f(ctx, change)
}

// Dispatcher fans a status change out to sinks in registration order.
// The zero value is ready to use.
type Dispatcher struct {
	mu    sync.RWMutex
	sinks []Sink
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

func (d *Dispatcher) Register(s Sink) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sinks = append(d.sinks, s)
}

// Dispatch delivers the change to every registered sink, synchronously,
// in registration order.
func (d *Dispatcher) Dispatch(ctx context.Context, change StatusChange) {
	d.mu.RLock()
	sinks := make([]Sink, len(d.sinks))
	copy(sinks, d.sinks)
	d.mu.RUnlock()

	for _, s := range sinks {
		s.OrderStatusChanged(ctx, change)
	}
}
