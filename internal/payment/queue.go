package payment

import (
	"context"
	"fmt"

	"github.com/styleseat/satchless/internal/domain/model"
)

// Queue aggregates providers into one Provider. EnumTypes concatenates the
// members' offerings; the typed operations are routed to whichever member
// enumerates the requested type.
type Queue []Provider

func (q Queue) EnumTypes(ctx context.Context, order *model.Order, customer *Customer) ([]ProviderType, error) {
	var all []ProviderType
	for _, p := range q {
		types, err := p.EnumTypes(ctx, order, customer)
		if err != nil {
			return nil, err
		}
		all = append(all, types...)
	}
	return all, nil
}

func (q Queue) GetConfigurationForm(ctx context.Context, order *model.Order, data map[string]string, typ string) (Form, error) {
	p, err := q.providerFor(ctx, order, typ)
	if err != nil {
		return nil, err
	}
	return p.GetConfigurationForm(ctx, order, data, typ)
}

func (q Queue) CreateVariant(ctx context.Context, order *model.Order, form Form, typ string) (*model.PaymentVariant, error) {
	p, err := q.providerFor(ctx, order, typ)
	if err != nil {
		return nil, err
	}
	return p.CreateVariant(ctx, order, form, typ)
}

func (q Queue) Confirm(ctx context.Context, order *model.Order, typ string, variant *model.PaymentVariant) error {
	// typ defaults to the type recorded on the order at variant creation.
	if typ == "" && order != nil {
		typ = order.PaymentType
	}
	p, err := q.providerFor(ctx, order, typ)
	if err != nil {
		return err
	}
	return p.Confirm(ctx, order, typ, variant)
}

func (q Queue) providerFor(ctx context.Context, order *model.Order, typ string) (Provider, error) {
	for _, p := range q {
		types, err := p.EnumTypes(ctx, order, nil)
		if err != nil {
			return nil, err
		}
		for _, pt := range types {
			if pt.Type.Typ == typ {
				return pt.Provider, nil
			}
		}
	}
	return nil, fmt.Errorf("payment: no provider for type %q", typ)
}
