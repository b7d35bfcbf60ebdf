package service

import (
	"context"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/rocpay1889/baba-shoping/internal/events"
	"github.com/rocpay1889/baba-shoping/internal/metrics"
)

// Env общие зависимости сервисов; нулевое значение рабочее
type Env struct {
	Now     func() time.Time
	Log     *zap.Logger
	Events  events.Publisher
	Metrics *metrics.Metrics
}

func (e Env) withDefaults() Env {
	if e.Now == nil {
		e.Now = time.Now
	}
	if e.Log == nil {
		e.Log = zap.NewNop()
	}
	if e.Events == nil {
		e.Events = events.Nop{}
	}
	return e
}

func (e Env) publish(ctx context.Context, subject string, payload any) {
	if err := e.Events.Publish(ctx, subject, payload); err != nil {
		e.Log.Warn("event publish failed", zap.String("subject", subject), zap.Error(err))
	}
}

const orderIDPrefix = "BABA"

// NewOrderID формат BABA<epoch-millis>
func NewOrderID(t time.Time) string {
	return orderIDPrefix + strconv.FormatInt(t.UnixMilli(), 10)
}

// NewPaymentID формат BABA<последние 8 цифр epoch-millis>
func NewPaymentID(t time.Time) string {
	ms := strconv.FormatInt(t.UnixMilli(), 10)
	if len(ms) > 8 {
		ms = ms[len(ms)-8:]
	}
	return orderIDPrefix + ms
}
