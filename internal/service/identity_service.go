package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rocpay1889/baba-shoping/internal/domain"
	"github.com/rocpay1889/baba-shoping/internal/repository"
)

// ErrUnauthenticated нет вошедшего пользователя
var ErrUnauthenticated = errors.New("not logged in")

// IdentityProvider подменяемый поставщик учётных записей
type IdentityProvider interface {
	Login(ctx context.Context, email, password string) (*domain.Identity, error)
	Signup(ctx context.Context, email, password, name string) (*domain.Identity, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*domain.Identity, error)
}

// MockIdentityProvider принимает любые непустые данные и хранит профиль под KeyUser
type MockIdentityProvider struct {
	kv       repository.KeyValueStore
	now      func() time.Time
	newToken func() string
}

var _ IdentityProvider = (*MockIdentityProvider)(nil)

func NewMockIdentityProvider(kv repository.KeyValueStore, now func() time.Time) *MockIdentityProvider {
	if now == nil {
		now = time.Now
	}
	return &MockIdentityProvider{kv: kv, now: now, newToken: uuid.NewString}
}

func (p *MockIdentityProvider) Login(ctx context.Context, email, password string) (*domain.Identity, error) {
	if email == "" || password == "" {
		return nil, ErrInvalidInput
	}
	name, _, _ := strings.Cut(email, "@")
	return p.store(ctx, email, name)
}

func (p *MockIdentityProvider) Signup(ctx context.Context, email, password, name string) (*domain.Identity, error) {
	if email == "" || password == "" || name == "" {
		return nil, ErrInvalidInput
	}
	return p.store(ctx, email, name)
}

func (p *MockIdentityProvider) store(ctx context.Context, email, name string) (*domain.Identity, error) {
	id := domain.Identity{
		ID:    p.now().UnixMilli(),
		Email: email,
		Name:  name,
		Token: p.newToken(),
	}
	if err := repository.PutJSON(ctx, p.kv, repository.KeyUser, id); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return &id, nil
}

func (p *MockIdentityProvider) Logout(ctx context.Context) error {
	return p.kv.Delete(ctx, repository.KeyUser)
}

func (p *MockIdentityProvider) CurrentUser(ctx context.Context) (*domain.Identity, error) {
	var id domain.Identity
	err := repository.GetJSON(ctx, p.kv, repository.KeyUser, &id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUnauthenticated
	}
	if err != nil {
		return nil, err
	}
	return &id, nil
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Captcha  string `json:"captcha"`
}

type SignupRequest struct {
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	Captcha         string `json:"captcha"`
}

var (
	indianMobile = regexp.MustCompile(`^[6-9]\d{9}$`)
	nonDigit     = regexp.MustCompile(`\D`)
)

const minPasswordLen = 6

// IdentityService вход, регистрация и выход поверх IdentityProvider
type IdentityService struct {
	provider IdentityProvider
	captcha  *Captcha
	env      Env
}

func NewIdentityService(provider IdentityProvider, captcha *Captcha, env Env) *IdentityService {
	return &IdentityService{provider: provider, captcha: captcha, env: env.withDefaults()}
}

func (s *IdentityService) Captcha() string { return s.captcha.Challenge() }

func (s *IdentityService) RefreshCaptcha() string { return s.captcha.Refresh() }

func (s *IdentityService) CaptchaEnabled() bool { return s.captcha.Enabled() }

func (s *IdentityService) Login(ctx context.Context, req LoginRequest) (*domain.Identity, error) {
	if req.Email == "" || req.Password == "" || (s.captcha.Enabled() && req.Captcha == "") {
		return nil, &ValidationError{Field: "form", Message: "Please fill in all fields"}
	}
	if err := s.verifyCaptcha(req.Captcha); err != nil {
		return nil, err
	}
	id, err := s.provider.Login(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}
	s.env.Log.Info("user logged in", zap.String("email", id.Email))
	return id, nil
}

// Signup проверки в том же порядке, что и форма регистрации; CAPTCHA последней
func (s *IdentityService) Signup(ctx context.Context, req SignupRequest) (*domain.Identity, error) {
	if req.FirstName == "" || req.LastName == "" || req.Phone == "" || req.Email == "" ||
		req.Password == "" || req.ConfirmPassword == "" || (s.captcha.Enabled() && req.Captcha == "") {
		return nil, &ValidationError{Field: "form", Message: "Please fill in all fields"}
	}
	if err := validate.Var(req.Email, "email"); err != nil {
		return nil, &ValidationError{Field: "email", Message: "Please enter a valid email address"}
	}
	if !indianMobile.MatchString(nonDigit.ReplaceAllString(req.Phone, "")) {
		return nil, &ValidationError{Field: "phone", Message: "Please enter a valid 10-digit Indian phone number"}
	}
	if len(req.Password) < minPasswordLen {
		return nil, &ValidationError{Field: "password", Message: "Password must be at least 6 characters long"}
	}
	if req.Password != req.ConfirmPassword {
		return nil, &ValidationError{Field: "confirm_password", Message: "Passwords do not match"}
	}
	if err := s.verifyCaptcha(req.Captcha); err != nil {
		return nil, err
	}
	id, err := s.provider.Signup(ctx, req.Email, req.Password, req.FirstName+" "+req.LastName)
	if err != nil {
		return nil, err
	}
	s.env.Log.Info("user signed up", zap.String("email", id.Email))
	return id, nil
}

func (s *IdentityService) verifyCaptcha(input string) error {
	err := s.captcha.Verify(input)
	if err != nil {
		s.env.Metrics.CaptchaFailed()
	}
	return err
}

func (s *IdentityService) Logout(ctx context.Context) error {
	return s.provider.Logout(ctx)
}

func (s *IdentityService) CurrentUser(ctx context.Context) (*domain.Identity, error) {
	return s.provider.CurrentUser(ctx)
}
