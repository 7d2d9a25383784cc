package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/styleseat/satchless/internal/checkout"
	"github.com/styleseat/satchless/internal/domain/model"
	"github.com/styleseat/satchless/internal/domain/pricing"
	repo "github.com/styleseat/satchless/internal/repository"
)

// =====================
// in-memory store backing the repository interfaces
// =====================

type memStore struct {
	nextID   int64
	orders   map[int64]model.Order
	groups   map[int64]model.DeliveryGroup
	items    map[int64]model.OrderedItem
	variants map[int64]model.PaymentVariant

	// recorded UpdateFields calls, for partial-write assertions
	updates []map[string]any
	// forced error for the next UpdateFields call
	updateErr error
}

func newMemStore() *memStore {
	return &memStore{
		orders:   map[int64]model.Order{},
		groups:   map[int64]model.DeliveryGroup{},
		items:    map[int64]model.OrderedItem{},
		variants: map[int64]model.PaymentVariant{},
	}
}

func (s *memStore) id() int64 {
	s.nextID++
	return s.nextID
}

type memTxManager struct{ store *memStore }

func (m *memTxManager) WithinTx(_ context.Context, fn func(r repo.TxRepos) error) error {
	return fn(&memRepos{store: m.store})
}

type memRepos struct{ store *memStore }

func (r *memRepos) Orders() repo.OrderRepository                   { return &memOrderRepo{store: r.store} }
func (r *memRepos) Groups() repo.DeliveryGroupRepository           { return &memGroupRepo{store: r.store} }
func (r *memRepos) Items() repo.OrderedItemRepository              { return &memItemRepo{store: r.store} }
func (r *memRepos) PaymentVariants() repo.PaymentVariantRepository { return &memVariantRepo{store: r.store} }

type memOrderRepo struct{ store *memStore }

func (r *memOrderRepo) Create(_ context.Context, order *model.Order) error {
	for _, o := range r.store.orders {
		if o.Token == order.Token {
			return repo.ErrDuplicateToken
		}
	}
	order.ID = r.store.id()
	r.store.orders[order.ID] = *order
	return nil
}

func (r *memOrderRepo) FindByID(_ context.Context, orderID int64) (model.Order, error) {
	o, ok := r.store.orders[orderID]
	if !ok {
		return model.Order{}, repo.ErrNotFound
	}
	return o, nil
}

func (r *memOrderRepo) FindByToken(_ context.Context, token string) (model.Order, error) {
	for _, o := range r.store.orders {
		if o.Token == token {
			return o, nil
		}
	}
	return model.Order{}, repo.ErrNotFound
}

func (r *memOrderRepo) TokenExists(_ context.Context, token string) (bool, error) {
	for _, o := range r.store.orders {
		if o.Token == token {
			return true, nil
		}
	}
	return false, nil
}

func (r *memOrderRepo) ListByUserID(_ context.Context, userID int64) ([]model.Order, error) {
	var out []model.Order
	for _, o := range r.store.orders {
		if o.UserID != nil && *o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *memOrderRepo) UpdateFields(_ context.Context, orderID int64, fields map[string]any) error {
	if r.store.updateErr != nil {
		err := r.store.updateErr
		r.store.updateErr = nil
		return err
	}
	o, ok := r.store.orders[orderID]
	if !ok {
		return repo.ErrNotFound
	}
	for k, v := range fields {
		switch k {
		case "status":
			o.Status = v.(model.OrderStatus)
		case "last_status_change":
			o.LastStatusChange = v.(time.Time)
		case "payment_type":
			o.PaymentType = v.(string)
		}
	}
	r.store.orders[orderID] = o
	r.store.updates = append(r.store.updates, fields)
	return nil
}

func (r *memOrderRepo) DeleteCheckoutByCart(_ context.Context, cartID int64, excludeOrderID int64) error {
	for id, o := range r.store.orders {
		if o.CartID == cartID && o.Status == model.OrderStatusCheckout && id != excludeOrderID {
			delete(r.store.orders, id)
		}
	}
	return nil
}

type memGroupRepo struct{ store *memStore }

func (r *memGroupRepo) Create(_ context.Context, group *model.DeliveryGroup) error {
	group.ID = r.store.id()
	r.store.groups[group.ID] = *group
	return nil
}

func (r *memGroupRepo) ListByOrderID(_ context.Context, orderID int64) ([]model.DeliveryGroup, error) {
	var out []model.DeliveryGroup
	for _, g := range r.store.groups {
		if g.OrderID == orderID {
			out = append(out, g)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memGroupRepo) DeleteByOrderID(_ context.Context, orderID int64) error {
	for id, g := range r.store.groups {
		if g.OrderID == orderID {
			delete(r.store.groups, id)
		}
	}
	return nil
}

type memItemRepo struct{ store *memStore }

func (r *memItemRepo) CreateBulk(_ context.Context, deliveryGroupID int64, items []model.OrderedItem) error {
	for i := range items {
		items[i].ID = r.store.id()
		items[i].DeliveryGroupID = deliveryGroupID
		r.store.items[items[i].ID] = items[i]
	}
	return nil
}

func (r *memItemRepo) ListByGroupID(_ context.Context, deliveryGroupID int64) ([]model.OrderedItem, error) {
	var out []model.OrderedItem
	for _, it := range r.store.items {
		if it.DeliveryGroupID == deliveryGroupID {
			out = append(out, it)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memItemRepo) DeleteByOrderID(_ context.Context, orderID int64) error {
	for gid, g := range r.store.groups {
		if g.OrderID != orderID {
			continue
		}
		for id, it := range r.store.items {
			if it.DeliveryGroupID == gid {
				delete(r.store.items, id)
			}
		}
	}
	return nil
}

type memVariantRepo struct{ store *memStore }

func (r *memVariantRepo) Create(_ context.Context, variant *model.PaymentVariant) error {
	variant.ID = r.store.id()
	r.store.variants[variant.ID] = *variant
	return nil
}

func (r *memVariantRepo) ListByOrderID(_ context.Context, orderID int64) ([]model.PaymentVariant, error) {
	var out []model.PaymentVariant
	for _, v := range r.store.variants {
		if v.OrderID == orderID {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memVariantRepo) DeleteByOrderID(_ context.Context, orderID int64) error {
	for id, v := range r.store.variants {
		if v.OrderID == orderID {
			delete(r.store.variants, id)
		}
	}
	return nil
}

// =====================
// cart / catalog fakes
// =====================

type fakeSubtype struct{ name string }

func (s fakeSubtype) DisplayName() string { return s.name }

type fakeVariant struct {
	id   int64
	name string
}

func (v fakeVariant) ID() int64                 { return v.id }
func (v fakeVariant) Subtype() checkout.Subtype { return fakeSubtype{name: v.name} }

type fakeLine struct {
	variant fakeVariant
	qty     decimal.Decimal
	price   pricing.Price
}

func (l fakeLine) Quantity() decimal.Decimal { return l.qty }
func (l fakeLine) UnitPrice() pricing.Price  { return l.price }
func (l fakeLine) Variant() checkout.Variant { return l.variant }

type fakeCart struct {
	id       int64
	owner    *int64
	currency string
	lines    []checkout.Line
}

func (c fakeCart) ID() int64              { return c.id }
func (c fakeCart) Owner() *int64          { return c.owner }
func (c fakeCart) Currency() string       { return c.currency }
func (c fakeCart) IsEmpty() bool          { return len(c.lines) == 0 }
func (c fakeCart) Lines() []checkout.Line { return c.lines }

func line(variantID int64, name string, qty, net, gross string) fakeLine {
	return fakeLine{
		variant: fakeVariant{id: variantID, name: name},
		qty:     decimal.RequireFromString(qty),
		price: pricing.New(
			decimal.RequireFromString(net),
			decimal.RequireFromString(gross),
			"EUR",
		),
	}
}

// =====================
// clock / token fakes
// =====================

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

// countingTokens returns the same token every time, counting the calls.
type countingTokens struct {
	token string
	calls int
}

func (t *countingTokens) Token() string {
	t.calls++
	return t.token
}
