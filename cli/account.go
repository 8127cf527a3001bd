package cli

import (
	"fmt"
	"github.com/viant/storefront/service/auth"
)

type LoginCommand struct {
	Email    string `short:"e" long:"email" description:"account email" required:"true"`
	Password string `short:"P" long:"password" description:"account password" required:"true"`
	app      *App
}

func (c *LoginCommand) Execute(_ []string) error {
	client, err := c.app.Client()
	if err != nil {
		return err
	}
	user, err := client.Login(c.app.ctx, c.Email, c.Password)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(c.app.stdout, "Welcome, %s\n", user.Name)
	return err
}

type RegisterCommand struct {
	Name            string `short:"n" long:"name" description:"display name" required:"true"`
	Email           string `short:"e" long:"email" description:"account email" required:"true"`
	Password        string `short:"P" long:"password" description:"password" required:"true"`
	ConfirmPassword string `long:"confirm" description:"password confirmation" required:"true"`
	app             *App
}

func (c *RegisterCommand) Execute(_ []string) error {
	client, err := c.app.Client()
	if err != nil {
		return err
	}
	user, err := client.Register(c.app.ctx, &auth.Registration{
		Name:            c.Name,
		Email:           c.Email,
		Password:        c.Password,
		ConfirmPassword: c.ConfirmPassword,
	})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(c.app.stdout, "Account created, welcome %s\n", user.Name)
	return err
}

type LogoutCommand struct {
	app *App
}

func (c *LogoutCommand) Execute(_ []string) error {
	client, err := c.app.Client()
	if err != nil {
		return err
	}
	if err = client.Logout(c.app.ctx); err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.app.stdout, "Logged out")
	return err
}

type WhoamiCommand struct {
	app *App
}

func (c *WhoamiCommand) Execute(_ []string) error {
	client, err := c.app.Client()
	if err != nil {
		return err
	}
	return renderIdentity(c.app.stdout, client.Whoami(c.app.ctx), client.Navigation(c.app.ctx))
}
