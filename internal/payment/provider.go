// Package payment defines the pluggable payment-provider contract:
// enumerating payment types, collecting configuration, creating a payment
// variant and confirming payment.
package payment

import (
	"context"
	"errors"

	"github.com/styleseat/satchless/internal/domain/model"
)

// ErrNotImplemented is returned by contract methods a concrete provider
// does not support. It is deliberately distinct from Failure: it marks a
// wiring mistake, not a processor rejection.
var ErrNotImplemented = errors.New("payment: not implemented")

// Failure is the sole expected error for processor-level rejection from
// Confirm and CreateVariant. Message is human-readable and safe to show
// to the end user. Callers move the order to payment-failed themselves;
// the contract never transitions status.
type Failure struct {
	Message string
}

func (f *Failure) Error() string { return f.Message }

// NewFailure wraps a processor rejection message.
func NewFailure(message string) *Failure {
	return &Failure{Message: message}
}

// Customer identifies the paying user for type restriction.
type Customer struct {
	ID    int64
	Email string
}

// Type is one payment method a provider offers.
type Type struct {
	Typ  string
	Name string
}

// ProviderType pairs a type with the provider that handles it.
type ProviderType struct {
	Provider Provider
	Type     Type
}

// Form carries any extra configuration a payment type needs before a
// variant can be created.
type Form interface {
	// Validate reports whether the collected data is acceptable for the
	// payment type.
	Validate() error
}

// Provider is implemented by external payment integrations. Confirm may
// block on a gateway call; callers own retry and timeout policy, the
// contract defines none.
type Provider interface {
	// EnumTypes lists the payment types this provider offers. With order
	// or customer given the result is restricted to types valid for that
	// combination.
	EnumTypes(ctx context.Context, order *model.Order, customer *Customer) ([]ProviderType, error)

	// GetConfigurationForm returns the form collecting extra payment
	// data, or nil when the type needs none.
	GetConfigurationForm(ctx context.Context, order *model.Order, data map[string]string, typ string) (Form, error)

	// CreateVariant builds a PaymentVariant for the order from a valid
	// form. Fails with *Failure when the configuration is rejected.
	CreateVariant(ctx context.Context, order *model.Order, form Form, typ string) (*model.PaymentVariant, error)

	// Confirm performs the capture step. Any processor-level rejection
	// surfaces as *Failure and nothing else.
	Confirm(ctx context.Context, order *model.Order, typ string, variant *model.PaymentVariant) error
}

// Choice is a (type id, display name) pair for presentation.
type Choice struct {
	Typ  string
	Name string
}

// Choices projects EnumTypes into presentation pairs.
func Choices(ctx context.Context, p Provider, order *model.Order, customer *Customer) ([]Choice, error) {
	types, err := p.EnumTypes(ctx, order, customer)
	if err != nil {
		return nil, err
	}
	choices := make([]Choice, 0, len(types))
	for _, pt := range types {
		choices = append(choices, Choice{Typ: pt.Type.Typ, Name: pt.Type.Name})
	}
	return choices, nil
}

// UnimplementedProvider returns ErrNotImplemented from every contract
// method. Embed it so partial providers fail loudly on the methods they
// skip instead of satisfying the interface silently.
type UnimplementedProvider struct{}

func (UnimplementedProvider) EnumTypes(ctx context.Context, order *model.Order, customer *Customer) ([]ProviderType, error) {
	return nil, ErrNotImplemented
}

func (UnimplementedProvider) GetConfigurationForm(ctx context.Context, order *model.Order, data map[string]string, typ string) (Form, error) {
	return nil, nil
}

func (UnimplementedProvider) CreateVariant(ctx context.Context, order *model.Order, form Form, typ string) (*model.PaymentVariant, error) {
	return nil, ErrNotImplemented
}

func (UnimplementedProvider) Confirm(ctx context.Context, order *model.Order, typ string, variant *model.PaymentVariant) error {
	return ErrNotImplemented
}
