package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/rocpay1889/baba-shoping/internal/domain"
	"github.com/rocpay1889/baba-shoping/internal/events"
	"github.com/rocpay1889/baba-shoping/internal/repository"
)

// ValidationError поле формы не прошло проверку; errors.Is(err, ErrInvalidInput) == true
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid input: %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report json names, not Go field names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func validationFrom(err error) error {
	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		fe := ves[0]
		msg := "is required"
		if fe.Tag() != "required" {
			msg = "failed " + fe.Tag() + " check"
		}
		return &ValidationError{Field: fe.Field(), Message: msg}
	}
	return err
}

// OrderService хранилище заказа: один активный заказ, новый оформленный перезаписывает старый
type OrderService struct {
	kv  repository.KeyValueStore
	tx  repository.TxManager
	env Env
}

func NewOrderService(kv repository.KeyValueStore, tx repository.TxManager, env Env) *OrderService {
	return &OrderService{kv: kv, tx: tx, env: env.withDefaults()}
}

func normalizeForm(f domain.CheckoutForm) domain.CheckoutForm {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	f.Phone = strings.TrimSpace(f.Phone)
	f.Address = strings.TrimSpace(f.Address)
	f.City = strings.TrimSpace(f.City)
	f.State = strings.TrimSpace(f.State)
	f.Pincode = strings.TrimSpace(f.Pincode)
	return f
}

// CreateFromCheckout проверяет форму и корзину, затем сохраняет заказ.
// При ошибке валидации состояние не меняется.
func (s *OrderService) CreateFromCheckout(ctx context.Context, form domain.CheckoutForm, cart *domain.CartItem) (*domain.OrderRecord, error) {
	if cart == nil {
		s.env.Metrics.CheckoutRejected("cart")
		return nil, &ValidationError{Field: "cart", Message: "cart is empty"}
	}
	form = normalizeForm(form)
	if err := validate.Struct(form); err != nil {
		verr := validationFrom(err)
		var ve *ValidationError
		if errors.As(verr, &ve) {
			s.env.Metrics.CheckoutRejected(ve.Field)
		}
		return nil, verr
	}

	now := s.env.Now()
	rec := domain.OrderRecord{
		OrderID:      NewOrderID(now),
		CheckoutForm: form,
		Combo:        *cart,
		CreatedAt:    now.UTC(),
	}
	if err := repository.PutJSON(ctx, s.kv, repository.KeyOrder, rec); err != nil {
		return nil, fmt.Errorf("save order: %w", err)
	}

	s.env.Log.Info("order created",
		zap.String("order_id", rec.OrderID),
		zap.Int64("bundle_id", rec.Combo.Bundle.ID),
		zap.Int64("price", rec.Combo.Bundle.Price))
	s.env.Metrics.OrderCreated()
	s.env.publish(ctx, events.SubjectOrderCreated, events.OrderCreated{
		OrderID:  rec.OrderID,
		BundleID: rec.Combo.Bundle.ID,
		Price:    rec.Combo.Bundle.Price,
		At:       rec.CreatedAt,
	})
	return &rec, nil
}

// Read активный заказ или repository.ErrNotFound
func (s *OrderService) Read(ctx context.Context) (*domain.OrderRecord, error) {
	var rec domain.OrderRecord
	if err := repository.GetJSON(ctx, s.kv, repository.KeyOrder, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Latest активный заказ, иначе последний снимок после оплаты
func (s *OrderService) Latest(ctx context.Context) (*domain.OrderRecord, error) {
	rec, err := s.Read(ctx)
	if err == nil || !errors.Is(err, repository.ErrNotFound) {
		return rec, err
	}
	var last domain.OrderRecord
	if err := repository.GetJSON(ctx, s.kv, repository.KeyLastOrder, &last); err != nil {
		return nil, err
	}
	return &last, nil
}

// Clear убирает активный заказ, сохраняя снимок для страницы статуса
func (s *OrderService) Clear(ctx context.Context) error {
	return s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		raw, err := s.kv.Get(ctx, repository.KeyOrder)
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := s.kv.Set(ctx, repository.KeyLastOrder, raw); err != nil {
			return err
		}
		return s.kv.Delete(ctx, repository.KeyOrder)
	})
}
