package main

import (
	"context"
	_ "github.com/viant/scy/kms/blowfish"
	"github.com/viant/storefront/cli"
	"log"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	if err := cli.Run(ctx, os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}
