package cli

import (
	"context"
	"fmt"
	"github.com/viant/storefront/gateway"
	"io"
)

// terminalNavigator turns navigation requests into hints; delays are ignored.
type terminalNavigator struct {
	writer io.Writer
}

func (n *terminalNavigator) Navigate(_ context.Context, redirect gateway.Redirect) {
	switch redirect.Route {
	case gateway.RouteLogin:
		fmt.Fprintln(n.writer, "login required: run `storefront login`")
	case gateway.RouteOrders:
		fmt.Fprintln(n.writer, "see your orders: run `storefront orders`")
	case gateway.RouteHome:
		fmt.Fprintln(n.writer, "browse products: run `storefront products`")
	}
}
