package service

import (
	"context"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/rocpay1889/baba-shoping/internal/domain"
	"github.com/rocpay1889/baba-shoping/internal/events"
	"github.com/rocpay1889/baba-shoping/internal/repository"
)

// PaymentService имитация оплаты по UPI: сохраняет квитанцию, ничего не списывает
type PaymentService struct {
	kv     repository.KeyValueStore
	tx     repository.TxManager
	orders *OrderService
	cart   *CartService
	env    Env
}

func NewPaymentService(kv repository.KeyValueStore, tx repository.TxManager, orders *OrderService, cart *CartService, env Env) *PaymentService {
	return &PaymentService{kv: kv, tx: tx, orders: orders, cart: cart, env: env.withDefaults()}
}

// Confirm сохраняет квитанцию. Скриншот никуда не загружается, хранится только имя файла.
func (s *PaymentService) Confirm(ctx context.Context, screenshot string) (*domain.PaymentConfirmation, error) {
	now := s.env.Now()
	p := domain.PaymentConfirmation{
		OrderID:    NewPaymentID(now),
		Screenshot: screenshotName(screenshot),
		Timestamp:  now.UTC(),
	}
	if err := repository.PutJSON(ctx, s.kv, repository.KeyPayment, p); err != nil {
		return nil, fmt.Errorf("save payment: %w", err)
	}
	return &p, nil
}

func (s *PaymentService) Read(ctx context.Context) (*domain.PaymentConfirmation, error) {
	var p domain.PaymentConfirmation
	if err := repository.GetJSON(ctx, s.kv, repository.KeyPayment, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Complete кнопка "Complete Payment": квитанция и снятие активного заказа атомарно, затем очистка корзины
func (s *PaymentService) Complete(ctx context.Context, screenshot string) (*domain.PaymentConfirmation, error) {
	var orderID string
	var confirmed *domain.PaymentConfirmation
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if o, err := s.orders.Read(ctx); err == nil {
			orderID = o.OrderID
		}
		p, err := s.Confirm(ctx, screenshot)
		if err != nil {
			return err
		}
		confirmed = p
		return s.orders.Clear(ctx)
	})
	if err != nil {
		return nil, err
	}
	s.cart.Clear()

	s.env.Log.Info("payment confirmed",
		zap.String("payment_id", confirmed.OrderID),
		zap.String("order_id", orderID),
		zap.Bool("screenshot", confirmed.Screenshot != ""))
	s.env.Metrics.PaymentConfirmed()
	s.env.publish(ctx, events.SubjectPaymentConfirmed, events.PaymentConfirmed{
		PaymentID: confirmed.OrderID,
		OrderID:   orderID,
		At:        confirmed.Timestamp,
	})
	return confirmed, nil
}

func screenshotName(ref string) string {
	if ref == "" {
		return ""
	}
	// keep only the base name; paths never leave the client
	return filepath.Base(filepath.Clean(ref))
}
