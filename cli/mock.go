package cli

import (
	"context"
	"errors"
	"fmt"
	"github.com/viant/storefront/mock"
	"github.com/viant/storefront/service/product"
	"net/http"
	"time"
)

var demoProducts = []*product.Product{
	{Title: "Ceramic Mug", Category: "kitchen", PriceCents: 1250, Stock: 40, Images: []string{}},
	{Title: "Desk Lamp", Category: "home", PriceCents: 4999, Stock: 8, Images: []string{}},
	{Title: "Notebook", Category: "office", PriceCents: 599, Stock: 120, Images: []string{}},
	{Title: "Wool Blanket", Category: "home", PriceCents: 8900, Stock: 0, Images: []string{}},
}

type MockCommand struct {
	Listen string `short:"l" long:"listen" description:"listen address" default:"localhost:8080"`
	Secret string `long:"secret" description:"token signing secret"`
	app    *App
}

func (c *MockCommand) Execute(_ []string) error {
	options := []mock.Option{mock.WithProducts(demoProducts...), mock.WithRequestLogging()}
	if c.Secret != "" {
		options = append(options, mock.WithSecret(c.Secret))
	}
	e := mock.New(options...).Handler()
	go func() {
		<-c.app.ctx.Done()
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = e.Shutdown(ctx)
	}()
	fmt.Fprintf(c.app.stderr, "serving storefront on http://%s (admin: %s / %s)\n", c.Listen, mock.DefaultAdminEmail, mock.DefaultAdminPassword)
	if err := e.Start(c.Listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
