package cli

import "fmt"

// CartCommand shows the cart when no subcommand is given.
type CartCommand struct {
	Add    CartAddCommand    `command:"add" description:"add a product"`
	Update CartUpdateCommand `command:"update" description:"change a quantity"`
	Remove CartRemoveCommand `command:"remove" description:"remove a product"`
	app    *App
}

func (c *CartCommand) Execute(_ []string) error {
	client, err := c.app.Client()
	if err != nil {
		return err
	}
	view, err := client.Cart(c.app.ctx)
	if err != nil {
		return err
	}
	return renderCart(c.app.stdout, view)
}

type cartLineArgs struct {
	ProductID string `positional-arg-name:"product-id" required:"true"`
}

type CartAddCommand struct {
	Quantity int          `short:"n" long:"quantity" description:"units to add" default:"1"`
	Args     cartLineArgs `positional-args:"true"`
	app      *App
}

func (c *CartAddCommand) Execute(_ []string) error {
	client, err := c.app.Client()
	if err != nil {
		return err
	}
	if err = client.AddToCart(c.app.ctx, c.Args.ProductID, c.Quantity); err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.app.stdout, "Added to cart")
	return err
}

type CartUpdateCommand struct {
	Quantity int          `short:"n" long:"quantity" description:"new quantity" required:"true"`
	Args     cartLineArgs `positional-args:"true"`
	app      *App
}

func (c *CartUpdateCommand) Execute(_ []string) error {
	client, err := c.app.Client()
	if err != nil {
		return err
	}
	view, err := client.UpdateCart(c.app.ctx, c.Args.ProductID, c.Quantity)
	if err != nil {
		return err
	}
	return renderCart(c.app.stdout, view)
}

type CartRemoveCommand struct {
	Args cartLineArgs `positional-args:"true"`
	app  *App
}

func (c *CartRemoveCommand) Execute(_ []string) error {
	client, err := c.app.Client()
	if err != nil {
		return err
	}
	view, err := client.RemoveFromCart(c.app.ctx, c.Args.ProductID)
	if err != nil {
		return err
	}
	return renderCart(c.app.stdout, view)
}
