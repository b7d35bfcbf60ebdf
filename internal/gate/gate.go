// Package gate decides whether a storefront route may be entered. It is a
// pure precondition check: the caller performs the redirect.
package gate

import (
	"context"

	"github.com/rocpay1889/baba-shoping/internal/domain"
)

type Route string

const (
	RouteHome        Route = "/"
	RouteLogin       Route = "/login"
	RouteSignup      Route = "/signup"
	RouteCart        Route = "/cart"
	RouteCheckout    Route = "/checkout"
	RoutePayment     Route = "/payment"
	RouteOrderStatus Route = "/order-status"
)

type Decision struct {
	Allowed  bool
	Redirect Route
}

func allow() Decision { return Decision{Allowed: true} }

func redirect(to Route) Decision { return Decision{Redirect: to} }

type IdentityReader interface {
	CurrentUser(ctx context.Context) (*domain.Identity, error)
}

type CartReader interface {
	Current() *domain.CartItem
}

// Guard one precondition of a route.
type Guard interface {
	Check(ctx context.Context) Decision
}

type GuardFunc func(ctx context.Context) Decision

func (f GuardFunc) Check(ctx context.Context) Decision { return f(ctx) }

// RequireIdentity sends anonymous visitors to the login page.
func RequireIdentity(ids IdentityReader) Guard {
	return GuardFunc(func(ctx context.Context) Decision {
		if id, err := ids.CurrentUser(ctx); err != nil || id == nil {
			return redirect(RouteLogin)
		}
		return allow()
	})
}

// RequireCart sends visitors with an empty cart back to the cart page.
func RequireCart(cart CartReader) Guard {
	return GuardFunc(func(context.Context) Decision {
		if cart.Current() == nil {
			return redirect(RouteCart)
		}
		return allow()
	})
}

type Gate struct {
	rules map[Route][]Guard
}

// New wires the storefront rules: checkout and payment need a user and a
// cart, order-status needs a user.
func New(ids IdentityReader, cart CartReader) *Gate {
	user := RequireIdentity(ids)
	filled := RequireCart(cart)
	return &Gate{rules: map[Route][]Guard{
		RouteCheckout:    {user, filled},
		RoutePayment:     {user, filled},
		RouteOrderStatus: {user},
	}}
}

// Check runs the route's guards in order; the first refusal wins.
// Unrestricted routes are always allowed.
func (g *Gate) Check(ctx context.Context, route Route) Decision {
	for _, guard := range g.rules[route] {
		if d := guard.Check(ctx); !d.Allowed {
			return d
		}
	}
	return allow()
}
