package cli

import (
	"github.com/viant/storefront"
)

// Options are the global flags and subcommands.
type Options struct {
	storefront.Options
	BaseURL string `short:"u" long:"url" description:"base URL serving all four services"`
	Verbose bool   `short:"v" long:"verbose" description:"log requests"`

	Login    LoginCommand    `command:"login" description:"log in"`
	Register RegisterCommand `command:"register" description:"create an account"`
	Logout   LogoutCommand   `command:"logout" description:"log out"`
	Whoami   WhoamiCommand   `command:"whoami" description:"show the current session"`
	Products ProductsCommand `command:"products" description:"list products"`
	Product  ProductCommand  `command:"product" description:"show a product"`
	Cart     CartCommand     `command:"cart" description:"show or change the cart" subcommands-optional:"true"`
	Checkout CheckoutCommand `command:"checkout" description:"order and pay the cart"`
	Orders   OrdersCommand   `command:"orders" description:"list my orders"`
	Admin    AdminCommand    `command:"admin" description:"administration"`
	Mock     MockCommand     `command:"mock" description:"serve an in-memory storefront backend"`
}

// bind hands the shared application to every command.
func (o *Options) bind(app *App) {
	o.Login.app = app
	o.Register.app = app
	o.Logout.app = app
	o.Whoami.app = app
	o.Products.app = app
	o.Product.app = app
	o.Cart.app = app
	o.Cart.Add.app = app
	o.Cart.Update.app = app
	o.Cart.Remove.app = app
	o.Checkout.app = app
	o.Orders.app = app
	o.Admin.Products.app = app
	o.Admin.AddProduct.app = app
	o.Admin.DeleteProduct.app = app
	o.Admin.Users.app = app
	o.Admin.DeleteUser.app = app
	o.Admin.Orders.app = app
	o.Admin.OrderStatus.app = app
	o.Mock.app = app
}
