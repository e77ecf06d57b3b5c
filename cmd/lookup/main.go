// Command lookup is the interactive terminal client. Queries are typed at
// the prompt; :help lists the commands. Input may also be piped in, one
// query per line.
//
// Flags:
//
//	--config       path to the YAML config file (default: CONFIG_PATH or ./config.yaml)
//	--mode         initial search mode: general, name or address
//	--clear-cache  drop the persisted dataset before loading
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/tenantlookup/internal/app"
)

func main() {
	configFlag := flag.String("config", "", "path to the YAML config file")
	modeFlag := flag.String("mode", "general", "initial search mode: general, name or address")
	clearFlag := flag.Bool("clear-cache", false, "drop the persisted dataset before loading")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := app.RunClient(ctx, app.ClientOptions{
		ConfigPath: *configFlag,
		Mode:       *modeFlag,
		ClearCache: *clearFlag,
	})
	if err != nil && ctx.Err() == nil {
		stop()
		log.Fatalf("lookup: %v", err)
	}
}
