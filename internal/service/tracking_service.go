package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/rocpay1889/baba-shoping/internal/domain"
	"github.com/rocpay1889/baba-shoping/internal/lifecycle"
	"github.com/rocpay1889/baba-shoping/internal/repository"
)

// TrackingService собирает страницу статуса заказа; пересчитывается при каждом запросе
type TrackingService struct {
	orders   *OrderService
	payments *PaymentService
	engine   *lifecycle.Engine
	env      Env
}

func NewTrackingService(orders *OrderService, payments *PaymentService, env Env) *TrackingService {
	env = env.withDefaults()
	return &TrackingService{
		orders:   orders,
		payments: payments,
		engine:   lifecycle.NewEngine(env.Now),
		env:      env,
	}
}

// OrderStatus возвращает lifecycle.ErrNoOrder, если заказа нет
func (s *TrackingService) OrderStatus(ctx context.Context, showTracking bool) (*domain.OrderStatusView, error) {
	order, err := s.orders.Latest(ctx)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	payment, err := s.payments.Read(ctx)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	v, err := s.engine.Track(order, payment)
	if err != nil {
		return nil, err
	}
	v.ShowTracking = showTracking
	s.env.Metrics.TrackingViewed(string(v.Tracking.Stage))
	s.env.Log.Debug("order status derived",
		zap.String("order_id", v.Order.OrderID),
		zap.String("stage", string(v.Tracking.Stage)),
		zap.Int("progress", v.Tracking.Progress))
	return v, nil
}
