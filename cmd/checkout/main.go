// Command checkout wires the order core against Postgres and drives one
// sample cart through construction, payment and status transitions.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"

	"github.com/styleseat/satchless/internal/checkout"
	"github.com/styleseat/satchless/internal/config"
	"github.com/styleseat/satchless/internal/domain/model"
	"github.com/styleseat/satchless/internal/domain/pricing"
	"github.com/styleseat/satchless/internal/event"
	"github.com/styleseat/satchless/internal/infra/db"
	infraEvent "github.com/styleseat/satchless/internal/infra/event"
	infraRepo "github.com/styleseat/satchless/internal/infra/repository"
	"github.com/styleseat/satchless/internal/payment"
	"github.com/styleseat/satchless/internal/usecase"
)

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// demo cart -----------------------------------------------------------

type demoSubtype struct{ name string }

func (s demoSubtype) DisplayName() string { return s.name }

type demoVariant struct {
	id   int64
	name string
}

func (v demoVariant) ID() int64                 { return v.id }
func (v demoVariant) Subtype() checkout.Subtype { return demoSubtype{name: v.name} }

type demoLine struct {
	variant  demoVariant
	quantity decimal.Decimal
	price    pricing.Price
}

func (l demoLine) Quantity() decimal.Decimal { return l.quantity }
func (l demoLine) UnitPrice() pricing.Price  { return l.price }
func (l demoLine) Variant() checkout.Variant { return l.variant }

type demoCart struct {
	id       int64
	owner    *int64
	currency string
	lines    []checkout.Line
}

func (c demoCart) ID() int64              { return c.id }
func (c demoCart) Owner() *int64          { return c.owner }
func (c demoCart) Currency() string       { return c.currency }
func (c demoCart) IsEmpty() bool          { return len(c.lines) == 0 }
func (c demoCart) Lines() []checkout.Line { return c.lines }

// cash-on-delivery provider -------------------------------------------

type codProvider struct {
	payment.UnimplementedProvider
}

func (p codProvider) EnumTypes(_ context.Context, _ *model.Order, _ *payment.Customer) ([]payment.ProviderType, error) {
	return []payment.ProviderType{
		{Provider: p, Type: payment.Type{Typ: "cod", Name: "cash on delivery"}},
	}, nil
}

func (p codProvider) CreateVariant(_ context.Context, order *model.Order, _ payment.Form, typ string) (*model.PaymentVariant, error) {
	if typ != "cod" {
		return nil, payment.NewFailure("unsupported payment type")
	}
	return &model.PaymentVariant{
		OrderID: order.ID,
		Name:    "cash on delivery",
		Price:   decimal.Zero,
	}, nil
}

func (p codProvider) Confirm(_ context.Context, _ *model.Order, _ string, _ *model.PaymentVariant) error {
	// nothing to capture up front for cash on delivery
	return nil
}

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Error("load .env", "err", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Error("load config", "err", err)
		os.Exit(1)
	}

	gormDB, err := db.Connect()
	if err != nil {
		log.Error("connect database", "err", err)
		os.Exit(1)
	}
	if err := gormDB.AutoMigrate(
		&model.Order{},
		&model.DeliveryGroup{},
		&model.OrderedItem{},
		&model.PaymentVariant{},
	); err != nil {
		log.Error("migrate", "err", err)
		os.Exit(1)
	}

	dispatcher := event.NewDispatcher()
	dispatcher.Register(event.SinkFunc(func(_ context.Context, c event.StatusChange) {
		log.Info("order status changed",
			"order_id", c.Order.ID,
			"token", c.Order.Token,
			"old_status", string(c.OldStatus),
			"new_status", string(c.Order.Status),
		)
	}))
	if len(cfg.KafkaBrokers) > 0 {
		sink := infraEvent.NewKafkaSink(cfg.KafkaBrokers, cfg.StatusTopic, log)
		defer sink.Close()
		dispatcher.Register(sink)
	}
	if cfg.MetricsAddr != "" {
		dispatcher.Register(infraEvent.NewMetricsSink())
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			if err := http.ListenAndServe(cfg.MetricsAddr, mux); err != nil {
				log.Error("metrics endpoint", "err", err)
			}
		}()
	}

	tx := infraRepo.NewTxManagerGorm(gormDB)
	clock := realClock{}
	partitioner := checkout.Queue{checkout.SinglePartition{DeliveryType: "courier"}}

	checkoutUC := usecase.NewCheckoutUsecase(tx, partitioner, usecase.RandomTokenSource{}, clock)
	orderUC := usecase.NewOrderUsecase(tx, dispatcher, clock)
	paymentUC := usecase.NewPaymentUsecase(tx, payment.Queue{codProvider{}})

	ctx := context.Background()
	owner := int64(1)
	cart := demoCart{
		id:       1,
		owner:    &owner,
		currency: "EUR",
		lines: []checkout.Line{
			demoLine{
				variant:  demoVariant{id: 101, name: "plain t-shirt, size M"},
				quantity: decimal.NewFromInt(3),
				price:    pricing.New(decimal.RequireFromString("10.00"), decimal.RequireFromString("12.30"), "EUR"),
			},
			demoLine{
				variant:  demoVariant{id: 102, name: "sticker pack"},
				quantity: decimal.NewFromInt(1),
				price:    pricing.New(decimal.RequireFromString("5.00"), decimal.RequireFromString("6.15"), "EUR"),
			},
		},
	}

	order, err := checkoutUC.GetFromCart(ctx, cart, nil)
	if err != nil {
		log.Error("build order", "err", err)
		os.Exit(1)
	}
	total, err := order.Total()
	if err != nil {
		log.Error("total", "err", err)
		os.Exit(1)
	}
	log.Info("order built", "token", order.Token, "groups", len(order.Groups), "total", total.String())

	if _, err := paymentUC.CreateVariant(ctx, order, nil, "cod"); err != nil {
		log.Error("create payment variant", "err", err)
		os.Exit(1)
	}
	if err := orderUC.SetStatus(ctx, order, model.OrderStatusPaymentPending, nil); err != nil {
		log.Error("set status", "err", err)
		os.Exit(1)
	}

	if err := paymentUC.Confirm(ctx, order); err != nil {
		var failure *payment.Failure
		if errors.As(err, &failure) {
			log.Warn("payment rejected", "message", failure.Message)
			if err := orderUC.SetStatus(ctx, order, model.OrderStatusPaymentFailed, nil); err != nil {
				log.Error("set status", "err", err)
			}
			os.Exit(1)
		}
		log.Error("confirm payment", "err", err)
		os.Exit(1)
	}
	if err := orderUC.SetStatus(ctx, order, model.OrderStatusPaymentComplete, nil); err != nil {
		log.Error("set status", "err", err)
		os.Exit(1)
	}

	log.Info("checkout complete", "token", order.Token, "status", string(order.Status))
}
