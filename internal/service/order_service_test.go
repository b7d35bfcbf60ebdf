package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rocpay1889/baba-shoping/internal/domain"
	"github.com/rocpay1889/baba-shoping/internal/events"
	"github.com/rocpay1889/baba-shoping/internal/lifecycle"
	"github.com/rocpay1889/baba-shoping/internal/metrics"
	"github.com/rocpay1889/baba-shoping/internal/repository"
)

type fixture struct {
	now      time.Time
	kv       *repository.MemoryStore
	events   *events.Recorder
	cart     *CartService
	orders   *OrderService
	payments *PaymentService
	tracking *TrackingService
}

func (f *fixture) advance(d time.Duration) { f.now = f.now.Add(d) }

func setup(t *testing.T) *fixture {
	t.Helper()
	catalog, err := repository.DefaultCatalog()
	if err != nil {
		t.Fatal(err)
	}
	f := &fixture{
		now:    time.Date(2025, 9, 28, 10, 0, 0, 0, time.UTC),
		kv:     repository.NewMemoryStore(),
		events: &events.Recorder{},
	}
	env := Env{Now: func() time.Time { return f.now }, Events: f.events, Metrics: metrics.New()}
	tx := repository.NewMemoryTx(f.kv)
	f.cart = NewCartService(catalog)
	f.orders = NewOrderService(f.kv, tx, env)
	f.payments = NewPaymentService(f.kv, tx, f.orders, f.cart, env)
	f.tracking = NewTrackingService(f.orders, f.payments, env)
	return f
}

func validForm() domain.CheckoutForm {
	return domain.CheckoutForm{
		Name:    "Asha Rao",
		Email:   "asha@example.com",
		Phone:   "+91 98765 43210",
		Address: "12 MG Road",
		City:    "Mumbai",
		State:   "Maharashtra",
		Pincode: "400001",
	}
}

func TestCreateFromCheckout(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	item, err := f.cart.AddBundle(ctx, 2, domain.SizeSelection{Dress: "L"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	o, err := f.orders.CreateFromCheckout(ctx, validForm(), item)
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	if !strings.HasPrefix(o.OrderID, "BABA") || o.OrderID != NewOrderID(f.now) {
		t.Fatalf("unexpected order id %q", o.OrderID)
	}
	if o.Combo.Bundle.ID != 2 || o.Combo.Size.Dress != "L" || o.Combo.Size.Shoes != domain.DefaultShoeSize {
		t.Fatalf("snapshot not stored: %+v", o.Combo)
	}
	if !o.CreatedAt.Equal(f.now) {
		t.Fatalf("created at %v", o.CreatedAt)
	}

	stored, err := f.orders.Read(ctx)
	if err != nil || stored.OrderID != o.OrderID || stored.City != "Mumbai" {
		t.Fatalf("read back: %+v %v", stored, err)
	}
	if got := f.events.Subjects(); len(got) != 1 || got[0] != events.SubjectOrderCreated {
		t.Fatalf("events: %v", got)
	}
}

func TestCreateFromCheckout_Overwrites(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	item, _ := f.cart.AddBundle(ctx, 1, domain.SizeSelection{})
	first, _ := f.orders.CreateFromCheckout(ctx, validForm(), item)
	f.advance(time.Second)
	second, err := f.orders.CreateFromCheckout(ctx, validForm(), item)
	if err != nil {
		t.Fatal(err)
	}
	if first.OrderID == second.OrderID {
		t.Fatalf("expected fresh order id")
	}
	stored, _ := f.orders.Read(ctx)
	if stored.OrderID != second.OrderID {
		t.Fatalf("expected latest checkout to win")
	}
}

func TestCreateFromCheckout_EmptyCart(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	_, err := f.orders.CreateFromCheckout(ctx, validForm(), f.cart.Current())
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected validation error, got %v", err)
	}
	var ve *ValidationError
	if !errors.As(err, &ve) || ve.Field != "cart" {
		t.Fatalf("expected cart field, got %v", err)
	}
	if _, err := f.orders.Read(ctx); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("nothing should be stored")
	}
}

func TestCreateFromCheckout_MissingField(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	item, _ := f.cart.AddBundle(ctx, 3, domain.SizeSelection{})

	cases := map[string]func(*domain.CheckoutForm){
		"name":    func(c *domain.CheckoutForm) { c.Name = "" },
		"email":   func(c *domain.CheckoutForm) { c.Email = "  " },
		"phone":   func(c *domain.CheckoutForm) { c.Phone = "" },
		"address": func(c *domain.CheckoutForm) { c.Address = "" },
		"city":    func(c *domain.CheckoutForm) { c.City = "" },
		"state":   func(c *domain.CheckoutForm) { c.State = "" },
		"pincode": func(c *domain.CheckoutForm) { c.Pincode = "\t" },
	}
	for field, mutate := range cases {
		form := validForm()
		mutate(&form)
		_, err := f.orders.CreateFromCheckout(ctx, form, item)
		var ve *ValidationError
		if !errors.As(err, &ve) || ve.Field != field {
			t.Fatalf("%s: expected validation error, got %v", field, err)
		}
	}
	if _, err := f.orders.Read(ctx); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("failed checkout must not persist")
	}
}

func TestCart_ReplaceNotAccumulate(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	if _, err := f.cart.AddBundle(ctx, 1, domain.SizeSelection{}); err != nil {
		t.Fatal(err)
	}
	if _, err := f.cart.AddBundle(ctx, 3, domain.SizeSelection{Shoes: "9"}); err != nil {
		t.Fatal(err)
	}
	o, err := f.orders.CreateFromCheckout(ctx, validForm(), f.cart.Current())
	if err != nil {
		t.Fatal(err)
	}
	if o.Combo.Bundle.ID != 3 || o.Combo.Size.Shoes != "9" {
		t.Fatalf("expected only the second bundle, got %+v", o.Combo)
	}
}

func TestCart_InvalidSizeAndClear(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	if _, err := f.cart.AddBundle(ctx, 1, domain.SizeSelection{Dress: "XXL"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid size, got %v", err)
	}
	if _, err := f.cart.AddBundle(ctx, 42, domain.SizeSelection{}); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if !f.cart.IsEmpty() {
		t.Fatalf("failed adds must not fill the cart")
	}
	f.cart.SetSelection(domain.CartItem{Bundle: domain.ProductBundle{ID: 7}})
	f.cart.Clear()
	f.cart.Clear()
	if f.cart.Current() != nil {
		t.Fatalf("expected empty cart")
	}
}

func TestOrderClear_KeepsSnapshot(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	item, _ := f.cart.AddBundle(ctx, 1, domain.SizeSelection{})
	o, _ := f.orders.CreateFromCheckout(ctx, validForm(), item)

	if err := f.orders.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, err := f.orders.Read(ctx); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("active order should be gone")
	}
	last, err := f.orders.Latest(ctx)
	if err != nil || last.OrderID != o.OrderID {
		t.Fatalf("snapshot lost: %+v %v", last, err)
	}
	// idempotent
	if err := f.orders.Clear(ctx); err != nil {
		t.Fatalf("second clear: %v", err)
	}
}

func TestTracking_NoOrder(t *testing.T) {
	f := setup(t)
	if _, err := f.tracking.OrderStatus(context.Background(), false); !errors.Is(err, lifecycle.ErrNoOrder) {
		t.Fatalf("expected no order, got %v", err)
	}
}

func TestTracking_AdvancesWithClock(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	item, _ := f.cart.AddBundle(ctx, 1, domain.SizeSelection{})
	if _, err := f.orders.CreateFromCheckout(ctx, validForm(), item); err != nil {
		t.Fatal(err)
	}

	steps := []struct {
		after time.Duration
		stage domain.Stage
	}{
		{time.Hour, domain.StageConfirmed},
		{5 * time.Hour, domain.StageProcessing},
		{24 * time.Hour, domain.StageShipped},
		{24 * time.Hour, domain.StageOutForDelivery},
	}
	for _, s := range steps {
		f.advance(s.after)
		v, err := f.tracking.OrderStatus(ctx, true)
		if err != nil {
			t.Fatalf("status: %v", err)
		}
		if v.Tracking.Stage != s.stage {
			t.Fatalf("at %v: expected %s, got %s", f.now, s.stage, v.Tracking.Stage)
		}
		if !v.ShowTracking {
			t.Fatalf("show tracking flag dropped")
		}
	}
}
