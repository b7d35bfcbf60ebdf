// Package lifecycle derives the shipping state of an order from the time
// elapsed since it was placed. Nothing here is stored: every call recomputes
// from the order timestamp and the current clock.
package lifecycle

import (
	"errors"
	"time"

	"github.com/rocpay1889/baba-shoping/internal/domain"
)

// ErrNoOrder is returned when the order-status view has no order to show.
var ErrNoOrder = errors.New("no order")

type stageRule struct {
	below  time.Duration // exclusive upper bound; zero means unbounded
	status domain.TrackingStatus
}

// Evaluated in order, first match wins.
var stageRules = []stageRule{
	{below: 2 * time.Hour, status: domain.TrackingStatus{
		Stage:             domain.StageConfirmed,
		Title:             "Order Confirmed",
		Description:       "Your order has been confirmed and is being processed.",
		Progress:          25,
		EstimatedDelivery: "Within 5-7 days",
	}},
	{below: 24 * time.Hour, status: domain.TrackingStatus{
		Stage:             domain.StageProcessing,
		Title:             "Processing",
		Description:       "Your order is being prepared for shipment.",
		Progress:          50,
		EstimatedDelivery: "Within 4-6 days",
	}},
	{below: 48 * time.Hour, status: domain.TrackingStatus{
		Stage:             domain.StageShipped,
		Title:             "Shipped",
		Description:       "Your order has been shipped and is on the way.",
		Progress:          75,
		EstimatedDelivery: "Within 2-4 days",
	}},
	{status: domain.TrackingStatus{
		Stage:             domain.StageOutForDelivery,
		Title:             "Out for Delivery",
		Description:       "Your order is out for delivery today.",
		Progress:          90,
		EstimatedDelivery: "Today or Tomorrow",
	}},
}

// Elapsed returns |now - createdAt|, so a clock that runs behind the order
// timestamp still lands in a valid bucket.
func Elapsed(createdAt, now time.Time) time.Duration {
	d := now.Sub(createdAt)
	if d < 0 {
		d = -d
	}
	return d
}

// DeriveTrackingStatus classifies the order age into a stage.
func DeriveTrackingStatus(createdAt, now time.Time) domain.TrackingStatus {
	return StatusFor(Elapsed(createdAt, now))
}

// StatusFor maps an elapsed duration onto [0,2h) [2h,24h) [24h,48h) [48h,∞).
func StatusFor(elapsed time.Duration) domain.TrackingStatus {
	for _, r := range stageRules {
		if r.below == 0 || elapsed < r.below {
			return r.status
		}
	}
	// unreachable: the last rule is unbounded
	return stageRules[len(stageRules)-1].status
}

var journey = []struct {
	step      domain.Step
	name      string
	threshold int // progress needed; 0 = complete once the order exists
}{
	{domain.StepPlaced, "Order Placed", 0},
	{domain.StepConfirmed, "Confirmed", 0},
	{domain.StepProcessing, "Processing", 50},
	{domain.StepShipped, "Shipped", 75},
	{domain.StepDelivered, "Delivered", 90},
}

// DeriveSteps builds the fixed 5-step order journey for a progress value.
func DeriveSteps(progress int) []domain.OrderStep {
	steps := make([]domain.OrderStep, 0, len(journey))
	for i, j := range journey {
		steps = append(steps, domain.OrderStep{
			Number:    i + 1,
			Step:      j.step,
			Name:      j.name,
			Completed: progress >= j.threshold,
		})
	}
	return steps
}

// Engine assembles the order-status view using an injected clock.
type Engine struct {
	now func() time.Time
}

func NewEngine(now func() time.Time) *Engine {
	if now == nil {
		now = time.Now
	}
	return &Engine{now: now}
}

// Track returns ErrNoOrder when order is nil. payment may be nil.
func (e *Engine) Track(order *domain.OrderRecord, payment *domain.PaymentConfirmation) (*domain.OrderStatusView, error) {
	if order == nil {
		return nil, ErrNoOrder
	}
	return Derive(*order, payment, e.now()), nil
}

// Derive is the pure form of Track.
func Derive(order domain.OrderRecord, payment *domain.PaymentConfirmation, now time.Time) *domain.OrderStatusView {
	status := DeriveTrackingStatus(order.CreatedAt, now)
	v := &domain.OrderStatusView{
		Order:    order,
		Tracking: status,
		Steps:    DeriveSteps(status.Progress),
	}
	if payment != nil {
		p := *payment
		v.Payment = &p
	}
	return v
}
