package cli

type ProductsCommand struct {
	Search   string `short:"q" long:"search" description:"title search"`
	Category string `long:"category" description:"category filter"`
	app      *App
}

func (c *ProductsCommand) Execute(_ []string) error {
	client, err := c.app.Client()
	if err != nil {
		return err
	}
	list, err := client.Products(c.app.ctx, c.Search, c.Category)
	if err != nil {
		return err
	}
	return renderProducts(c.app.stdout, list.Products)
}

type ProductCommand struct {
	Args struct {
		ID string `positional-arg-name:"id" required:"true"`
	} `positional-args:"true"`
	app *App
}

func (c *ProductCommand) Execute(_ []string) error {
	client, err := c.app.Client()
	if err != nil {
		return err
	}
	p, err := client.Product(c.app.ctx, c.Args.ID)
	if err != nil {
		return err
	}
	return renderProduct(c.app.stdout, p)
}
