// Command mynetwrk runs the MyNetwrk API server and its maintenance tasks.
//
// Usage:
//
//	mynetwrk serve [--migrate]
//	mynetwrk migrate up|down|status
//	mynetwrk seed [--phase timezones,interaction-types] [--dry-run]
//	mynetwrk cleanup-tokens
//
// Configuration is read from --config (or CONFIG_PATH) and the environment.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
