package cli

import (
	"context"
	"github.com/viant/storefront"
	"io"
	"log/slog"
)

// App carries what commands share: output streams, logger and a lazily
// created storefront client.
type App struct {
	ctx     context.Context
	options *Options
	stdout  io.Writer
	stderr  io.Writer
	logger  *slog.Logger
	client  *storefront.Client
}

func newApp(ctx context.Context, options *Options, stdout, stderr io.Writer) *App {
	return &App{ctx: ctx, options: options, stdout: stdout, stderr: stderr}
}

func (a *App) init() {
	level := slog.LevelWarn
	if a.options.Verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))
}

// Client returns the storefront client, creating it on first use.
func (a *App) Client() (*storefront.Client, error) {
	if a.client != nil {
		return a.client, nil
	}
	options := &a.options.Options
	if a.options.BaseURL != "" {
		options.UseBaseURL(a.options.BaseURL)
	}
	if err := options.Init(a.ctx); err != nil {
		return nil, err
	}
	client, err := storefront.New(a.ctx, options,
		storefront.WithNavigator(&terminalNavigator{writer: a.stderr}),
		storefront.WithLogger(a.logger),
	)
	if err != nil {
		return nil, err
	}
	a.client = client
	return client, nil
}

func (a *App) Close() error {
	if a.client == nil {
		return nil
	}
	return a.client.Close()
}
