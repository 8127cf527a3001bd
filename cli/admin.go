package cli

import (
	"fmt"
	"github.com/viant/storefront/service/product"
)

type AdminCommand struct {
	Products      AdminProductsCommand      `command:"products" description:"list products"`
	AddProduct    AdminAddProductCommand    `command:"add-product" description:"create a product"`
	DeleteProduct AdminDeleteProductCommand `command:"delete-product" description:"delete a product"`
	Users         AdminUsersCommand         `command:"users" description:"list users"`
	DeleteUser    AdminDeleteUserCommand    `command:"delete-user" description:"delete a user"`
	Orders        AdminOrdersCommand        `command:"orders" description:"list all orders"`
	OrderStatus   AdminOrderStatusCommand   `command:"order-status" description:"change an order status"`
}

type idArgs struct {
	ID string `positional-arg-name:"id" required:"true"`
}

type AdminProductsCommand struct {
	app *App
}

func (c *AdminProductsCommand) Execute(_ []string) error {
	client, err := c.app.Client()
	if err != nil {
		return err
	}
	list, err := client.AdminProducts(c.app.ctx)
	if err != nil {
		return err
	}
	return renderProducts(c.app.stdout, list.Products)
}

type AdminAddProductCommand struct {
	Title    string `long:"title" description:"product title" required:"true"`
	Category string `long:"category" description:"product category" required:"true"`
	Price    int64  `long:"price" description:"price in cents" required:"true"`
	Stock    int    `long:"stock" description:"units in stock" required:"true"`
	Images   string `long:"images" description:"comma separated image URLs"`
	app      *App
}

func (c *AdminAddProductCommand) Execute(_ []string) error {
	client, err := c.app.Client()
	if err != nil {
		return err
	}
	created, err := client.AddProduct(c.app.ctx, &product.New{
		Title:      c.Title,
		Category:   c.Category,
		PriceCents: c.Price,
		Stock:      c.Stock,
		Images:     product.ParseImages(c.Images),
	})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(c.app.stdout, "Product %s created\n", created.ID)
	return err
}

type AdminDeleteProductCommand struct {
	Args idArgs `positional-args:"true"`
	app  *App
}

func (c *AdminDeleteProductCommand) Execute(_ []string) error {
	client, err := c.app.Client()
	if err != nil {
		return err
	}
	if err = client.DeleteProduct(c.app.ctx, c.Args.ID); err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.app.stdout, "Product deleted")
	return err
}

type AdminUsersCommand struct {
	app *App
}

func (c *AdminUsersCommand) Execute(_ []string) error {
	client, err := c.app.Client()
	if err != nil {
		return err
	}
	users, err := client.AdminUsers(c.app.ctx)
	if err != nil {
		return err
	}
	return renderUsers(c.app.stdout, users)
}

type AdminDeleteUserCommand struct {
	Args idArgs `positional-args:"true"`
	app  *App
}

func (c *AdminDeleteUserCommand) Execute(_ []string) error {
	client, err := c.app.Client()
	if err != nil {
		return err
	}
	if err = client.DeleteUser(c.app.ctx, c.Args.ID); err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.app.stdout, "User deleted")
	return err
}

type AdminOrdersCommand struct {
	app *App
}

func (c *AdminOrdersCommand) Execute(_ []string) error {
	client, err := c.app.Client()
	if err != nil {
		return err
	}
	orders, err := client.AdminOrders(c.app.ctx)
	if err != nil {
		return err
	}
	return renderOrders(c.app.stdout, orders, true)
}

type AdminOrderStatusCommand struct {
	Args struct {
		ID     string `positional-arg-name:"id" required:"true"`
		Status string `positional-arg-name:"status" required:"true"`
	} `positional-args:"true"`
	app *App
}

func (c *AdminOrderStatusCommand) Execute(_ []string) error {
	client, err := c.app.Client()
	if err != nil {
		return err
	}
	if err = client.UpdateOrderStatus(c.app.ctx, c.Args.ID, c.Args.Status); err != nil {
		return err
	}
	_, err = fmt.Fprintf(c.app.stdout, "Order %s is %s\n", c.Args.ID, c.Args.Status)
	return err
}
