package service

import (
	"errors"
	"math/rand/v2"
	"strings"
	"sync"
)

// ErrCaptchaMismatch введённый текст не совпал с вызовом
var ErrCaptchaMismatch = errors.New("invalid captcha")

// CaptchaMismatchError несёт уже перегенерированный вызов
type CaptchaMismatchError struct {
	Challenge string
}

func (e *CaptchaMismatchError) Error() string { return "Invalid CAPTCHA. Please try again." }

func (e *CaptchaMismatchError) Unwrap() error { return ErrCaptchaMismatch }

// no look-alike characters (0/O, 1/I/l)
const captchaAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghjkmnpqrstuvwxyz23456789"

const captchaLength = 6

// Captcha текстовая проверка на стороне клиента. Ответ виден в состоянии
// сессии, так что от ботов она не защищает.
type Captcha struct {
	mu      sync.Mutex
	enabled bool
	current string
	intn    func(n int) int
}

func NewCaptcha(enabled bool) *Captcha {
	return &Captcha{enabled: enabled, intn: rand.IntN}
}

func (c *Captcha) Enabled() bool { return c.enabled }

// Challenge текущий вызов; создаётся при первом обращении
func (c *Captcha) Challenge() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == "" {
		c.current = c.generate()
	}
	return c.current
}

func (c *Captcha) Refresh() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = c.generate()
	return c.current
}

// Verify сравнивает с учётом регистра. Вызов одноразовый: после любой
// проверки генерируется новый.
func (c *Captcha) Verify(input string) error {
	if !c.enabled {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	ok := c.current != "" && input == c.current
	c.current = c.generate()
	if !ok {
		return &CaptchaMismatchError{Challenge: c.current}
	}
	return nil
}

func (c *Captcha) generate() string {
	var b strings.Builder
	b.Grow(captchaLength)
	for range captchaLength {
		b.WriteByte(captchaAlphabet[c.intn(len(captchaAlphabet))])
	}
	return b.String()
}
