package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	rootcmd "github.com/go-ports/rampage/cmd/rampage/root"
	"github.com/go-ports/rampage/cmd/rampage/shared"
)

func main() {
	if err := run(); err != nil {
		// Reported errors were already shown through the host.
		if !errors.Is(err, shared.ErrReported) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	return rootcmd.New().ExecuteContext(ctx)
}
