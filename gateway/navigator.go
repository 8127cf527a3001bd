package gateway

import (
	"context"
	"time"
)

// Route names a place the presentation layer can send the user to.
type Route string

const (
	RouteLogin  Route = "login"
	RouteHome   Route = "home"
	RouteOrders Route = "orders"
)

// Redirect asks the presentation layer to move to Route, optionally after Delay.
type Redirect struct {
	Route Route
	Delay time.Duration
}

// Navigator receives navigation requests; it never blocks the caller.
type Navigator interface {
	Navigate(ctx context.Context, redirect Redirect)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(ctx context.Context, redirect Redirect)

func (f NavigatorFunc) Navigate(ctx context.Context, redirect Redirect) {
	f(ctx, redirect)
}

type nopNavigator struct{}

func (nopNavigator) Navigate(context.Context, Redirect) {}
