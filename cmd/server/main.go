// Command server serves the tenant lookup JSON API.
//
// Configuration is read from CONFIG_PATH (default ./config.yaml) and the
// environment; run with -help to list the variables.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/tenantlookup/internal/app"
	"github.com/heartmarshall/tenantlookup/internal/config"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s\n\n%s", os.Args[0], config.Usage())
	}
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		stop()
		log.Fatalf("server: %v", err)
	}
}
