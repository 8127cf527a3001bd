package cli

import (
	"fmt"
	"github.com/viant/storefront"
)

type CheckoutCommand struct {
	Address string `short:"a" long:"address" description:"shipping address"`
	app     *App
}

func (c *CheckoutCommand) Execute(_ []string) error {
	client, err := c.app.Client()
	if err != nil {
		return err
	}
	receipt, err := client.Checkout(c.app.ctx, c.Address)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(c.app.stdout, "Order %s placed, paid %s\n", receipt.Order.ID, storefront.FormatCents(receipt.Payment.Amount))
	return err
}

type OrdersCommand struct {
	app *App
}

func (c *OrdersCommand) Execute(_ []string) error {
	client, err := c.app.Client()
	if err != nil {
		return err
	}
	orders, err := client.Orders(c.app.ctx)
	if err != nil {
		return err
	}
	return renderOrders(c.app.stdout, orders, false)
}
